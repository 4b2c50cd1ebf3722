package lrcomplex

import "github.com/latticecodes/c3ltc/internal/specmath"

// EigenvaluesA returns the sorted normalized eigenvalues of the A-neighbor
// adjacency matrix.
func (c *Complex) EigenvaluesA() []float64 { return c.eigsA }

// EigenvaluesB returns the sorted normalized eigenvalues of the B-neighbor
// adjacency matrix.
func (c *Complex) EigenvaluesB() []float64 { return c.eigsB }

// Lambda2 returns max(lambda2_A, lambda2_B), the overall spectral expansion
// of the complex (spec §4.4's "lambda2" used in LeftRightCayleyGraph.name).
func (c *Complex) Lambda2() float64 {
	if c.lambda2A > c.lambda2B {
		return c.lambda2A
	}
	return c.lambda2B
}

// IsBipartiteA reports whether the A-neighbor graph is bipartite.
func (c *Complex) IsBipartiteA() bool { return specmath.IsClose(c.eigsA[0], -1) }

// IsBipartiteB reports whether the B-neighbor graph is bipartite.
func (c *Complex) IsBipartiteB() bool { return specmath.IsClose(c.eigsB[0], -1) }
