// Package lrcomplex builds the left-right Cayley complex of a finite group
// G under two inverse-closed generator sets A (left) and B (right) — spec
// component C4, the combinatorial heart of the c3LTC construction.
//
// A square is the 4-cycle (g, ag, agb, gb) for a in A, b in B; squares are
// identified under the Klein-four action described in spec.md §3, with the
// canonical representative chosen as the orbit member whose middle vertex
// has minimal index. A degenerate (TNC-violating) square first probes an
// alternate triple and reuses its id when that triple already has one.
//
// Grounded on graph_codes/graphs/lr_cayley.py and lr_cayley_utils.py.
package lrcomplex

import (
	"errors"
	"fmt"

	"github.com/latticecodes/c3ltc/group"
	"github.com/latticecodes/c3ltc/internal/specmath"
	"github.com/latticecodes/c3ltc/internal/xlog"
)

// ErrDegenerate signals a square count above |A|*|B|*|G|/4 or an A-/B-edge
// count other than |G|*|A|/2, |G|*|B|/2. A square count below the exact
// value is not an error: New returns the complex with TNCHolds == false.
var ErrDegenerate = errors.New("lrcomplex: invariant violated")

// Edge is a canonical (lo<hi) endpoint pair for an A-edge or B-edge.
type Edge struct{ Lo, Hi int }

// Complex holds the frozen maps of the left-right Cayley complex, as
// described in spec.md §3's "Derived maps".
type Complex struct {
	Group *group.Group
	A, B  []group.Element

	// VertexToSquares[v] is an |A|x|B| matrix of square ids.
	VertexToSquares [][][]int
	// SquareToVertices[s] = (v, av, avb, vb).
	SquareToVertices [][4]int
	// VertexToNeighborsLeft[v][i] = A[i]*v.
	VertexToNeighborsLeft [][]int
	// VertexToNeighborsRight[v][j] = v*B[j].
	VertexToNeighborsRight [][]int

	// EdgesA maps a canonical (lo,hi) A-edge to the A-generator index k with
	// A[k]*lo == hi.
	EdgesA map[Edge]int
	// EdgesB maps a canonical (lo,hi) B-edge to the B-generator index k with
	// lo*B[k] == hi.
	EdgesB map[Edge]int

	NumSquares int
	TNCHolds   bool

	eigsA, eigsB     []float64
	lambda2A, lambda2B float64
}

type squareKey struct{ ai, v, bj int }

// New builds the left-right complex of g under (A, B).
//
// Complexity: O(|G|*|A|*|B|).
func New(g *group.Group, A, B []group.Element) (*Complex, error) {
	defer xlog.Stage("lrcomplex.New")()

	n := g.Size()
	na, nb := len(A), len(B)

	vertexToSquares := make([][][]int, n)
	vertexToNeighborsLeft := make([][]int, n)
	vertexToNeighborsRight := make([][]int, n)
	for v := 0; v < n; v++ {
		vertexToSquares[v] = make([][]int, na)
		for i := range vertexToSquares[v] {
			vertexToSquares[v][i] = make([]int, nb)
		}
		vertexToNeighborsLeft[v] = make([]int, na)
		vertexToNeighborsRight[v] = make([]int, nb)
	}

	squares := make(map[squareKey]int)
	var squareToVertices [][4]int
	edgesA := make(map[Edge]int)
	edgesB := make(map[Edge]int)

	for v, gElem := range g.Elements {
		for i, a := range A {
			av := g.MustIndexOf(a.Mul(gElem))
			vertexToNeighborsLeft[v][i] = av
			if v < av {
				edgesA[Edge{v, av}] = i
			}
		}
		for j, b := range B {
			vb := g.MustIndexOf(gElem.Mul(b))
			vertexToNeighborsRight[v][j] = vb
			if v < vb {
				edgesB[Edge{v, vb}] = j
			}
		}
	}

	for v, gElem := range g.Elements {
		for i, a := range A {
			for j, b := range B {
				repA, repG, repB := canonicalSquareRep(g, a, gElem, b)
				repAi := indexOfGen(A, repA)
				repBj := indexOfGen(B, repB)
				repV := g.MustIndexOf(repG)

				av := g.MustIndexOf(repA.Mul(repG))
				avb := g.MustIndexOf(repA.Mul(repG).Mul(repB))
				vb := g.MustIndexOf(repG.Mul(repB))

				key := squareKey{repAi, repV, repBj}
				id, ok := squares[key]
				if !ok && repV == avb {
					// TNC-violating degenerate square: the 4-cycle closes
					// early. Probe the alternate triple per §3's fallback
					// before allocating a fresh id.
					altA := repG.Mul(repB).Mul(repG.Inverse())
					altB := repG.Inverse().Mul(repA).Mul(repG)
					altKey := squareKey{indexOfGen(A, altA), repV, indexOfGen(B, altB)}
					if altID, altOK := squares[altKey]; altOK {
						id, ok = altID, true
					}
				}
				if !ok {
					id = len(squareToVertices)
					squares[key] = id
					squareToVertices = append(squareToVertices, [4]int{repV, av, avb, vb})
				}
				vertexToSquares[v][i][j] = id
			}
		}
	}

	c := &Complex{
		Group: g, A: A, B: B,
		VertexToSquares:        vertexToSquares,
		SquareToVertices:       squareToVertices,
		VertexToNeighborsLeft:  vertexToNeighborsLeft,
		VertexToNeighborsRight: vertexToNeighborsRight,
		EdgesA:                 edgesA,
		EdgesB:                 edgesB,
		NumSquares:             len(squareToVertices),
	}

	exact := na * nb * n / 4
	c.TNCHolds = c.NumSquares == exact
	if c.NumSquares > exact {
		return nil, fmt.Errorf("lrcomplex: got %d squares, want at most %d: %w", c.NumSquares, exact, ErrDegenerate)
	}
	if len(edgesA) != n*na/2 {
		return nil, fmt.Errorf("lrcomplex: got %d A-edges, want %d: %w", len(edgesA), n*na/2, ErrDegenerate)
	}
	if len(edgesB) != n*nb/2 {
		return nil, fmt.Errorf("lrcomplex: got %d B-edges, want %d: %w", len(edgesB), n*nb/2, ErrDegenerate)
	}

	c.eigsA = specmath.NormalizedAdjacencyEigenvalues(vertexToNeighborsLeft)
	c.eigsB = specmath.NormalizedAdjacencyEigenvalues(vertexToNeighborsRight)
	c.lambda2A = specmath.Expansion(c.eigsA)
	c.lambda2B = specmath.Expansion(c.eigsB)

	return c, nil
}

// canonicalSquareRep returns the Klein-four orbit member (a*, g*, b*) whose
// middle vertex g* has minimal index among the four vertices of the 4-cycle
// (g, ag, agb, gb) — spec.md §3/§4.4's canonical representative.
func canonicalSquareRep(g *group.Group, a group.Element, gElem group.Element, b group.Element) (group.Element, group.Element, group.Element) {
	aInv := a.Inverse()
	bInv := b.Inverse()
	ag := a.Mul(gElem)
	agb := a.Mul(gElem).Mul(b)
	gb := gElem.Mul(b)

	vG := g.MustIndexOf(gElem)
	vAg := g.MustIndexOf(ag)
	vAgb := g.MustIndexOf(agb)
	vGb := g.MustIndexOf(gb)

	min := vG
	if vAg < min {
		min = vAg
	}
	if vAgb < min {
		min = vAgb
	}
	if vGb < min {
		min = vGb
	}

	switch min {
	case vG:
		return a, gElem, b
	case vAg:
		return aInv, ag, b
	case vAgb:
		return aInv, agb, bInv
	default: // vGb
		return a, gb, bInv
	}
}

// indexOfGen looks up a group element's position in a generator list by
// value equality (small lists: |A|, |B| are typically single digits to a
// few dozen, so linear scan is cheap relative to the |G| factor elsewhere).
func indexOfGen(gens []group.Element, e group.Element) int {
	for i, s := range gens {
		if s.Equal(e) {
			return i
		}
	}
	return -1
}
