// Package embed emits the sparse (row, col, value) triples of the global
// parity-check matrix M by reading local parity constraints of C_A and C_B
// around every left/right edge of a left-right complex — spec component
// C5. This is the bridge between the combinatorial complex (package
// lrcomplex) and the row-reduction oracle (package rowreduce).
//
// Grounded on fast_linear_algebra/embed_squares.py.
package embed

import "github.com/latticecodes/c3ltc/field"

// Triple is one nonzero entry of a sparse matrix.
type Triple struct {
	Row, Col int
	Value    int64
}

// EdgeMap is one canonical (lo,hi) edge of a left-right complex together
// with its generator index; callers build these from lrcomplex.Complex's
// EdgesA/EdgesB maps and pass the vertex-to-squares table separately.
type EdgeMap struct {
	Lo, Hi int
	Gen    int
}

// Squares emits the global parity triples described in spec.md §4.5:
// for every A-edge, the local C_B parity constraint on the |B|-row of
// squares at that edge's low endpoint; for every B-edge, the local C_A
// parity constraint on the |A|-column of squares at that edge's low
// endpoint. Returns the triples and the total row count
// (len(edgesA)*rB + len(edgesB)*rA).
func Squares(
	edgesA, edgesB []EdgeMap,
	vertexToSquares [][][]int,
	hA, hB field.Matrix,
) ([]Triple, int) {
	rA, rB := hA.Rows(), hB.Rows()
	nA, nB := hA.Cols(), hB.Cols()

	var triples []Triple
	rowCounter := 0

	for _, e := range edgesA {
		k := e.Gen
		for i := 0; i < rB; i++ {
			for j := 0; j < nB; j++ {
				v := hB[i][j]
				if v == 0 {
					continue
				}
				triples = append(triples, Triple{
					Row:   rowCounter + i,
					Col:   vertexToSquares[e.Lo][k][j],
					Value: v,
				})
			}
		}
		rowCounter += rB
	}

	for _, e := range edgesB {
		k := e.Gen
		for i := 0; i < rA; i++ {
			for j := 0; j < nA; j++ {
				v := hA[i][j]
				if v == 0 {
					continue
				}
				triples = append(triples, Triple{
					Row:   rowCounter + i,
					Col:   vertexToSquares[e.Lo][j][k],
					Value: v,
				})
			}
		}
		rowCounter += rA
	}

	return triples, rowCounter
}

// Edges emits the simpler expander-code embedding of spec.md §4.9: for
// each vertex v and each parity row i of the single small code's H, emit
// (rowCounter+i, vertexToEdges[v][j], H[i][j]) for every generator j.
func Edges(vertexToEdges [][]int, h field.Matrix) ([]Triple, int) {
	rows, cols := h.Rows(), h.Cols()
	var triples []Triple
	rowCounter := 0

	for v := range vertexToEdges {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				val := h[i][j]
				if val == 0 {
					continue
				}
				triples = append(triples, Triple{
					Row:   rowCounter + i,
					Col:   vertexToEdges[v][j],
					Value: val,
				})
			}
		}
		rowCounter += rows
	}

	return triples, rowCounter
}
