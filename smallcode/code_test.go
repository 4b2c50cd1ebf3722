package smallcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecodes/c3ltc/field"
	"github.com/latticecodes/c3ltc/smallcode"
)

func TestReedSolomonEncodeProducesCodeword(t *testing.T) {
	code, err := smallcode.NewReedSolomon(6, 4, 7)
	require.NoError(t, err)

	msg := field.Vector{1, 2, 3, 4}
	w := code.Encode(msg)
	assert.True(t, code.Syndrome(w).IsZero(7))
}

func TestReedSolomonDecodesSingleError(t *testing.T) {
	code, err := smallcode.NewReedSolomon(6, 4, 7)
	require.NoError(t, err)

	msg := field.Vector{1, 0, 5, 2}
	w := code.Encode(msg)
	noisy := w.Clone()
	noisy[2] = field.Mod(noisy[2]+3, 7)

	decoded, err := code.Decode(noisy)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(w, 7))
}

func TestReedSolomonRejectsKGreaterThanN(t *testing.T) {
	_, err := smallcode.NewReedSolomon(4, 6, 7)
	assert.ErrorIs(t, err, smallcode.ErrInvalidParameters)
}

func TestRandomLinearCodeEncodeDecodeRoundTrip(t *testing.T) {
	code, err := smallcode.NewRandomLinearCode(7, 3, 2, 3)
	require.NoError(t, err)

	msg := field.Vector{1, 1, 0}
	w := code.Encode(msg)
	require.True(t, code.Syndrome(w).IsZero(2))

	noisy := w.Clone()
	noisy[0] = field.Mod(noisy[0]+1, 2)
	decoded, err := code.Decode(noisy)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(w, 2))
}

func TestRandomLinearCodeMeetsRequestedDistance(t *testing.T) {
	code, err := smallcode.NewRandomLinearCode(7, 3, 2, 3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, smallcode.MinimumDistance(code.Generator(), 2), 3)
}

func TestMinimumDistanceOfRepetitionCode(t *testing.T) {
	g := field.Matrix{{1, 1, 1}}
	assert.Equal(t, 3, smallcode.MinimumDistance(g, 2))
}

func TestRepetitionCodeMatchesScenario1(t *testing.T) {
	// [3,1,3] repetition code over F_2: G = [1 1 1], H rows check that bit 1
	// and bit 2 each equal bit 0.
	g := field.Matrix{{1, 1, 1}}
	h := field.Matrix{{1, 1, 0}, {1, 0, 1}}
	code := smallcode.New(g, h, 2, 3)
	code.BuildSyndromeTable()

	w := code.Encode(field.Vector{1})
	assert.Equal(t, field.Vector{1, 1, 1}, w)

	noisy := field.Vector{1, 0, 1}
	decoded, err := code.Decode(noisy)
	require.NoError(t, err)
	assert.Equal(t, w, decoded)
}
