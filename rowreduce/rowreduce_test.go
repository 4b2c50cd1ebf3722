package rowreduce_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecodes/c3ltc/embed"
	"github.com/latticecodes/c3ltc/field"
	"github.com/latticecodes/c3ltc/rowreduce"
)

func TestReduceProducesOrthogonalGeneratorAndParity(t *testing.T) {
	// A single parity constraint x0+x1+x2 == 0 mod 2 over 3 columns: the
	// single-parity-check (even-weight) code, of dimension 2.
	triples := []embed.Triple{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 1, Value: 1},
		{Row: 0, Col: 2, Value: 1},
	}
	res, err := rowreduce.Reduce(triples, 1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, len(res.Generator))

	for _, g := range res.Generator {
		assert.True(t, res.Parity.MulVec(g, 2).IsZero(2))
	}
}

func TestReduceRejectsOutOfBoundsTriple(t *testing.T) {
	triples := []embed.Triple{{Row: 5, Col: 0, Value: 1}}
	_, err := rowreduce.Reduce(triples, 1, 3, 2)
	assert.ErrorIs(t, err, rowreduce.ErrRowReduceFailed)
}

func TestSparseFormatRoundTrip(t *testing.T) {
	triples := []embed.Triple{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 2, Value: 1},
		{Row: 1, Col: 1, Value: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, rowreduce.WriteSparse(&buf, triples, 2, 3))

	m, err := rowreduce.ReadDense(&buf, 2)
	require.NoError(t, err)
	assert.Equal(t, field.Matrix{{1, 0, 1}, {0, 1, 0}}, m)
}
