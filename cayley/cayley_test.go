package cayley_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecodes/c3ltc/cayley"
	"github.com/latticecodes/c3ltc/group"
)

func TestEdgeCountInvariant(t *testing.T) {
	g := group.NewFqm(2, 3)
	gens, err := group.SampleGenerators(g, 0, 2)
	require.NoError(t, err)

	gr, err := cayley.New(g, gens)
	require.NoError(t, err)
	assert.Equal(t, g.Size()*len(gens)/2, gr.NumEdges)
}

func TestEveryVertexHasOneEdgePerGenerator(t *testing.T) {
	g := group.NewFqm(2, 3)
	gens, err := group.SampleGenerators(g, 0, 2)
	require.NoError(t, err)

	gr, err := cayley.New(g, gens)
	require.NoError(t, err)
	for v := 0; v < g.Size(); v++ {
		assert.Len(t, gr.VertexToEdges[v], len(gens))
		for k := range gens {
			id := gr.VertexToEdges[v][k]
			e := gr.EdgeEndpoints[id]
			assert.True(t, e.Lo == v || e.Hi == v)
		}
	}
}

func TestLambda2IsWithinSpectralBounds(t *testing.T) {
	g := group.NewFqm(2, 4)
	gens, err := group.SampleGenerators(g, 0, 4)
	require.NoError(t, err)

	gr, err := cayley.New(g, gens)
	require.NoError(t, err)
	assert.LessOrEqual(t, gr.Lambda2(), 1.0+1e-6)
	assert.GreaterOrEqual(t, gr.Lambda2(), 0.0)
}
