package group_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecodes/c3ltc/group"
)

func TestFqmEnumerationAndIndex(t *testing.T) {
	g := group.NewFqm(2, 3)
	require.Equal(t, 8, g.Size())

	for i, e := range g.Elements {
		idx, err := g.IndexOf(e)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}

func TestFqmIdentityAndInverse(t *testing.T) {
	g := group.NewFqm(3, 2)
	id := g.Elements[0]
	assert.True(t, id.IsIdentity())

	for _, e := range g.Elements {
		inv := e.Inverse()
		assert.True(t, e.Mul(inv).IsIdentity())
	}
}

func TestFqmOrderTwoOverF2(t *testing.T) {
	g := group.NewFqm(2, 2)
	for _, e := range g.Elements {
		if !e.IsIdentity() {
			assert.True(t, e.IsOrderTwoNonIdentity())
		}
	}
}

func TestPSLIdentifiesNegation(t *testing.T) {
	g := group.NewPSL2(5)
	assert.Equal(t, 60, g.Size(), "PSL(2,5) has q(q^2-1)/gcd(2,q-1) = 60 elements")

	el := group.NewPSLElement(5, 1, 1, 1, 2) // det = 1*2 - 1*1 = 1
	neg := group.NewPSLElement(5, 4, 4, 4, 3) // -el mod 5
	assert.Equal(t, el.Hash(), neg.Hash())
	assert.True(t, el.Equal(neg))
}

func TestPSLMulInverseIdentity(t *testing.T) {
	g := group.NewPSL2(5)
	for _, e := range g.Elements {
		assert.True(t, e.Mul(e.Inverse()).IsIdentity())
	}
}

func TestSampleGeneratorsPairing(t *testing.T) {
	g := group.NewFqm(5, 2)
	gens, err := group.SampleGenerators(g, 4, 0, group.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	require.Len(t, gens, 4)
	for i := 0; i < len(gens); i += 2 {
		assert.True(t, gens[i].Mul(gens[i+1]).IsIdentity(), "gens[%d] and its pair must be inverses", i)
	}
}

func TestSampleGeneratorsRejectsOddCount(t *testing.T) {
	g := group.NewFqm(5, 1)
	_, err := group.SampleGenerators(g, 3, 0)
	assert.ErrorIs(t, err, group.ErrInvalidParameters)
}

func TestSampleWithTNC(t *testing.T) {
	g := group.NewFqm(3, 3)
	A, B, err := group.SampleWithTNC(g, 2, 0, group.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.True(t, group.HasTNC(g, A, B))
}
