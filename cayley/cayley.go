// Package cayley builds the Cayley graph of a finite group under a single
// inverse-closed generator set (spec component C3): canonical edge ids,
// per-vertex neighbor arrays, and the spectral expansion λ2 of the
// normalized adjacency matrix. It is also the construction underlying the
// simpler expander code of spec component C9.
//
// Grounded on graph_codes/graphs/cayley.py and cayley_utils.py.
package cayley

import (
	"errors"
	"fmt"

	"github.com/latticecodes/c3ltc/group"
	"github.com/latticecodes/c3ltc/internal/specmath"
)

// ErrDegenerate signals an edge-count invariant violation, indicating a bug
// in the caller's generator set (e.g. not inverse-closed).
var ErrDegenerate = errors.New("cayley: edge count invariant violated")

// Edge is an undirected edge, keyed by its two endpoint vertex indices with
// lo < hi — the canonical orientation used throughout this module.
type Edge struct{ Lo, Hi int }

// Graph is the Cayley graph of Group under Gens: vertex set = group element
// indices, and for each vertex v and generator index k an edge to
// Gens[k]*v.
type Graph struct {
	Group *group.Group
	Gens  []group.Element

	// VertexToEdges[v][k] is the canonical edge id reached from v via Gens[k].
	VertexToEdges [][]int
	// VertexToNeighbors[v][k] = index of Gens[k]*v.
	VertexToNeighbors [][]int
	// EdgeEndpoints[id] is the canonical (lo,hi) pair for edge id.
	EdgeEndpoints []Edge

	NumEdges int
	lambda2  float64
	eigs     []float64
}

// New builds the Cayley graph of g under generator list gens. Gens must be
// inverse-closed and paired (§3's Generator set invariants); this is the
// caller's responsibility (see group.SampleGenerators).
//
// Complexity: O(|G|*|gens|).
func New(g *group.Group, gens []group.Element) (*Graph, error) {
	n := g.Size()
	k := len(gens)

	vertexToEdges := make([][]int, n)
	vertexToNeighbors := make([][]int, n)
	for v := range vertexToEdges {
		vertexToEdges[v] = make([]int, k)
		vertexToNeighbors[v] = make([]int, k)
	}

	edgeOf := make(map[[2]int]int)
	var endpoints []Edge

	for v, elem := range g.Elements {
		for gi, s := range gens {
			neighborElem := s.Mul(elem)
			av := g.MustIndexOf(neighborElem)
			vertexToNeighbors[v][gi] = av

			repGen, repVertex := canonicalEdgeRep(gens, gi, v, av)
			key := [2]int{repGen, repVertex}
			id, ok := edgeOf[key]
			if !ok {
				id = len(endpoints)
				edgeOf[key] = id
				lo, hi := v, av
				if lo > hi {
					lo, hi = hi, lo
				}
				endpoints = append(endpoints, Edge{Lo: lo, Hi: hi})
			}
			vertexToEdges[v][gi] = id
		}
	}

	if len(endpoints) != n*k/2 {
		return nil, fmt.Errorf("cayley: got %d distinct edges, want %d: %w", len(endpoints), n*k/2, ErrDegenerate)
	}

	gr := &Graph{
		Group:             g,
		Gens:              gens,
		VertexToEdges:     vertexToEdges,
		VertexToNeighbors: vertexToNeighbors,
		EdgeEndpoints:     endpoints,
		NumEdges:          len(endpoints),
	}
	gr.eigs = specmath.NormalizedAdjacencyEigenvalues(vertexToNeighbors)
	gr.lambda2 = specmath.Expansion(gr.eigs)
	return gr, nil
}

// canonicalEdgeRep picks the (generator, vertex) pair with the smaller
// vertex index between (gi, v) and (inverse-of-gi, av) — the canonical
// representative of spec §3's edge identification.
func canonicalEdgeRep(gens []group.Element, gi, v, av int) (int, int) {
	if v < av {
		return gi, v
	}
	invIdx := indexOfInverse(gens, gi)
	return invIdx, av
}

// indexOfInverse returns the index in gens of the inverse of gens[i], using
// the paired layout invariant (§3): order-2 generators are self-inverse;
// otherwise consecutive pairs (2k,2k+1) are mutually inverse.
func indexOfInverse(gens []group.Element, i int) int {
	if gens[i].IsOrderTwoNonIdentity() {
		return i
	}
	if i%2 == 1 {
		return i - 1
	}
	return i + 1
}

// Lambda2 returns the second-largest-magnitude eigenvalue of the normalized
// adjacency matrix (spectral expansion), with the bipartite -1 eigenvalue
// folded in per §4.3.
func (gr *Graph) Lambda2() float64 { return gr.lambda2 }

// Eigenvalues returns the sorted normalized eigenvalues of the adjacency
// matrix built from VertexToNeighbors.
func (gr *Graph) Eigenvalues() []float64 { return gr.eigs }

// IsBipartite reports whether -1 is (numerically) an eigenvalue, i.e. the
// graph is bipartite.
func (gr *Graph) IsBipartite() bool {
	return specmath.IsClose(gr.eigs[0], -1)
}
