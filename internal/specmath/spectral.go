// Package specmath computes the spectral-expansion diagnostics shared by
// package cayley and package lrcomplex (spec §4.3's λ2, §4.4's λ2_A/λ2_B):
// build a 0/1 adjacency matrix from a neighbor-list and extract its sorted,
// normalized eigenvalues.
//
// Grounded on graph_codes/graphs/graph_utils.py's Graphs.get_eigenvalues /
// get_expansion, reimplemented against gonum/mat's symmetric eigensolver
// (mat.EigenSym) in place of a hand-rolled Jacobi sweep.
package specmath

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const closeTol = 1e-5

// IsClose reports whether a and b agree within the tolerance the original
// construction used (numpy.isclose defaults: rtol=1e-5, atol=1e-8).
func IsClose(a, b float64) bool {
	return math.Abs(a-b) <= 1e-8+closeTol*math.Abs(b)
}

// NormalizedAdjacencyEigenvalues builds the 0/1 adjacency matrix of the
// neighbor-list graph (neighbors[v] lists v's neighbor indices, with
// multiplicity collapsed to a single 1 entry as in
// neighbours_list_to_adj_matrix) and returns its eigenvalues, normalized by
// the largest and sorted ascending.
func NormalizedAdjacencyEigenvalues(neighbors [][]int) []float64 {
	n := len(neighbors)
	adj := mat.NewSymDense(n, nil)
	for v, nbrs := range neighbors {
		for _, u := range nbrs {
			if u >= v {
				adj.SetSym(v, u, 1)
			} else {
				adj.SetSym(u, v, 1)
			}
		}
	}

	var eig mat.EigenSym
	ok := eig.Factorize(adj, false)
	if !ok {
		// Degenerate-but-valid input (e.g. n<=1): fall back to the trivial
		// spectrum rather than propagating a solver failure the caller has
		// no recovery path for.
		out := make([]float64, n)
		if n > 0 {
			out[n-1] = 1
		}
		return out
	}
	vals := append([]float64(nil), eig.Values(nil)...)
	sort.Float64s(vals)

	largest := vals[len(vals)-1]
	if largest == 0 {
		return vals
	}
	for i := range vals {
		vals[i] /= largest
	}
	return vals
}

// Expansion returns the spectral expansion λ2: the largest magnitude among
// the eigenvalues other than the Perron eigenvalue 1. The smallest
// eigenvalue is included, so a bipartite graph (smallest eigenvalue -1)
// reports λ2 = 1.
func Expansion(sorted []float64) float64 {
	n := len(sorted)
	if n < 2 {
		return 0
	}
	gap := math.Max(math.Abs(sorted[n-2]), math.Abs(sorted[1]))
	gap = math.Max(gap, math.Abs(sorted[0]))
	return gap
}
