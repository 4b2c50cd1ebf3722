// Package decode implements the two global propagation decoders (spec
// component C8) that consume a left-right complex plus a pair of local
// codes: the edge-propagation decoder (row/column-local correction
// rippling across A-edges and B-edges) and the vertex-propagation decoder
// (full local-view tensor decoding at each vertex).
//
// Grounded on global_decoders/decode_by_edges.py and
// global_decoders/decode_by_vertices.py, with the REDESIGN FLAG fix
// applied to the vertex decoder: the suspect-vertex set is freshly
// reseeded every iteration rather than reused across iterations.
package decode

import (
	"hash/fnv"

	"github.com/latticecodes/c3ltc/field"
	"github.com/latticecodes/c3ltc/internal/xlog"
	"github.com/latticecodes/c3ltc/lrcomplex"
	"github.com/latticecodes/c3ltc/smallcode"
	"github.com/latticecodes/c3ltc/tensor"
)

func contentHash(w field.Vector) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, x := range w {
		for k := 0; k < 8; k++ {
			buf[k] = byte(x >> (8 * k))
		}
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}

func minMax(a, b int) lrcomplex.Edge {
	if a < b {
		return lrcomplex.Edge{Lo: a, Hi: b}
	}
	return lrcomplex.Edge{Lo: b, Hi: a}
}

// squareEdges returns the two A-edges and two B-edges incident to square
// id s, derived from square_to_vertices[s] = (v, av, avb, vb) per
// spec.md §4.8.
func squareEdges(c *lrcomplex.Complex, s int) (aEdges, bEdges [2]lrcomplex.Edge) {
	vs := c.SquareToVertices[s]
	v, av, avb, vb := vs[0], vs[1], vs[2], vs[3]
	aEdges = [2]lrcomplex.Edge{minMax(v, av), minMax(avb, vb)}
	bEdges = [2]lrcomplex.Edge{minMax(av, avb), minMax(v, vb)}
	return
}

// DecodeAlongEdges runs the edge-propagation decoder of spec.md §4.8 on
// noisy word w (length |squares|) and returns the corrected word.
func DecodeAlongEdges(c *lrcomplex.Complex, codeA, codeB smallcode.Code, w field.Vector, p int64) field.Vector {
	defer xlog.Stage("decode.DecodeAlongEdges")()

	word := w.Clone()
	suspectA := make(map[lrcomplex.Edge]bool, len(c.EdgesA))
	suspectB := make(map[lrcomplex.Edge]bool, len(c.EdgesB))
	for e := range c.EdgesA {
		suspectA[e] = true
	}
	for e := range c.EdgesB {
		suspectB[e] = true
	}

	pastHashes := make(map[uint64]bool)
	iter := 0
	for len(suspectA) > 0 || len(suspectB) > 0 {
		h := contentHash(word)
		if pastHashes[h] {
			break
		}
		pastHashes[h] = true
		iter++
		xlog.Iteration("edges", iter, len(suspectA)+len(suspectB))

		newSuspectA := make(map[lrcomplex.Edge]bool)
		newSuspectB := make(map[lrcomplex.Edge]bool)

		for e := range suspectA {
			k := c.EdgesA[e]
			ids := c.VertexToSquares[e.Lo][k]
			local := field.NewVector(len(ids))
			for j, id := range ids {
				local[j] = word[id]
			}
			corrected, err := codeB.Decode(local)
			if err != nil {
				newSuspectA[e] = true
				continue
			}
			for j, id := range ids {
				if corrected[j] == word[id] {
					continue
				}
				aEdges, bEdges := squareEdges(c, id)
				newSuspectB[bEdges[0]] = true
				newSuspectB[bEdges[1]] = true
				if aEdges[0] == e {
					newSuspectA[aEdges[1]] = true
				} else {
					newSuspectA[aEdges[0]] = true
				}
				word[id] = corrected[j]
			}
		}

		for e := range suspectB {
			k := c.EdgesB[e]
			nA := len(c.A)
			ids := make([]int, nA)
			local := field.NewVector(nA)
			for i := 0; i < nA; i++ {
				ids[i] = c.VertexToSquares[e.Lo][i][k]
				local[i] = word[ids[i]]
			}
			corrected, err := codeA.Decode(local)
			if err != nil {
				newSuspectB[e] = true
				continue
			}
			for i, id := range ids {
				if corrected[i] == word[id] {
					continue
				}
				aEdges, bEdges := squareEdges(c, id)
				newSuspectA[aEdges[0]] = true
				newSuspectA[aEdges[1]] = true
				if bEdges[0] == e {
					newSuspectB[bEdges[1]] = true
				} else {
					newSuspectB[bEdges[0]] = true
				}
				word[id] = corrected[i]
			}
		}

		suspectA, suspectB = newSuspectA, newSuspectB
	}

	return word.ModAll(p)
}

// DecodeAlongVertices runs the vertex-propagation decoder of spec.md §4.8:
// at each suspect vertex, the |A|x|B| local view is tensor-decoded and any
// changed square propagates suspicion to its other three incident
// vertices.
func DecodeAlongVertices(c *lrcomplex.Complex, codeA, codeB smallcode.Code, w field.Vector, p int64) field.Vector {
	defer xlog.Stage("decode.DecodeAlongVertices")()

	word := w.Clone()
	n := c.Group.Size()
	suspect := make(map[int]bool, n)
	for v := 0; v < n; v++ {
		suspect[v] = true
	}

	pastHashes := make(map[uint64]bool)
	iter := 0
	for len(suspect) > 0 {
		h := contentHash(word)
		if pastHashes[h] {
			break
		}
		pastHashes[h] = true
		iter++
		xlog.Iteration("vertices", iter, len(suspect))

		newSuspect := make(map[int]bool)

		for v := range suspect {
			nA, nB := len(c.A), len(c.B)
			view := field.NewMatrix(nA, nB)
			for i := 0; i < nA; i++ {
				for j := 0; j < nB; j++ {
					view[i][j] = word[c.VertexToSquares[v][i][j]]
				}
			}

			decoded := tensor.Decode(view, codeA, codeB, p)

			for i := 0; i < nA; i++ {
				for j := 0; j < nB; j++ {
					s := c.VertexToSquares[v][i][j]
					if decoded[i][j] == word[s] {
						continue
					}
					word[s] = decoded[i][j]
					for _, other := range c.SquareToVertices[s] {
						if other != v {
							newSuspect[other] = true
						}
					}
				}
			}
		}

		suspect = newSuspect
	}

	return word.ModAll(p)
}
