package lrcomplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecodes/c3ltc/group"
	"github.com/latticecodes/c3ltc/lrcomplex"
)

// buildF2CubeComplex reproduces spec.md §8 scenario 1: G = F_2^3, two
// order-two generators on each side, chosen disjoint so TNC holds (F_2^3 is
// abelian, so a*g == g*b reduces to a == b; disjoint A/B rules that out).
func buildF2CubeComplex(t *testing.T) (*group.Group, []group.Element, []group.Element) {
	t.Helper()
	g := group.NewFqm(2, 3)

	a0 := group.NewFqmElement(2, []int64{1, 0, 0})
	a1 := group.NewFqmElement(2, []int64{0, 1, 0})
	b0 := group.NewFqmElement(2, []int64{0, 0, 1})
	b1 := group.NewFqmElement(2, []int64{1, 1, 0})

	A := []group.Element{a0, a1}
	B := []group.Element{b0, b1}
	return g, A, B
}

func TestComplexSquareCountUnderTNC(t *testing.T) {
	g, A, B := buildF2CubeComplex(t)
	require.True(t, group.HasTNC(g, A, B))

	c, err := lrcomplex.New(g, A, B)
	require.NoError(t, err)
	assert.True(t, c.TNCHolds)
	assert.Equal(t, len(A)*len(B)*g.Size()/4, c.NumSquares)
}

func TestComplexEdgeCounts(t *testing.T) {
	g, A, B := buildF2CubeComplex(t)
	c, err := lrcomplex.New(g, A, B)
	require.NoError(t, err)

	assert.Equal(t, g.Size()*len(A)/2, len(c.EdgesA))
	assert.Equal(t, g.Size()*len(B)/2, len(c.EdgesB))
}

func TestComplexVertexToSquaresShape(t *testing.T) {
	g, A, B := buildF2CubeComplex(t)
	c, err := lrcomplex.New(g, A, B)
	require.NoError(t, err)

	for v := 0; v < g.Size(); v++ {
		require.Len(t, c.VertexToSquares[v], len(A))
		for i := range A {
			require.Len(t, c.VertexToSquares[v][i], len(B))
			for j := range B {
				id := c.VertexToSquares[v][i][j]
				require.GreaterOrEqual(t, id, 0)
				require.Less(t, id, c.NumSquares)
			}
		}
	}
}

func TestComplexSpectralAccessors(t *testing.T) {
	g, A, B := buildF2CubeComplex(t)
	c, err := lrcomplex.New(g, A, B)
	require.NoError(t, err)

	assert.LessOrEqual(t, c.Lambda2(), 1.0+1e-6)
	assert.Len(t, c.EigenvaluesA(), g.Size())
	assert.Len(t, c.EigenvaluesB(), g.Size())
}

func TestComplexDegenerateGeneratorsDetected(t *testing.T) {
	g := group.NewFqm(2, 2)
	// A == B is the extreme non-TNC case: a*g == g*a always (abelian). The
	// squares with a == b close up (a*g*b == g), so their Klein-four orbits
	// have two members instead of four: i == j gives 2 squares each and
	// i != j gives 1 each, 6 in all, above the |A||B||G|/4 = 4 bound, and
	// New reports ErrDegenerate.
	a0 := group.NewFqmElement(2, []int64{1, 0})
	a1 := group.NewFqmElement(2, []int64{0, 1})
	A := []group.Element{a0, a1}
	B := []group.Element{a0, a1}

	require.False(t, group.HasTNC(g, A, B))
	c, err := lrcomplex.New(g, A, B)
	assert.ErrorIs(t, err, lrcomplex.ErrDegenerate)
	assert.Nil(t, c)
	assert.ErrorContains(t, err, "got 6 squares, want at most 4")
}
