package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecodes/c3ltc/field"
)

func TestModNegative(t *testing.T) {
	assert.Equal(t, int64(4), field.Mod(-3, 7))
	assert.Equal(t, int64(0), field.Mod(-7, 7))
	assert.Equal(t, int64(1), field.Mod(8, 7))
}

func TestVectorSubAndWeight(t *testing.T) {
	a := field.Vector{1, 2, 3}
	b := field.Vector{1, 0, 5}
	diff := a.Sub(b, 7)
	require.Equal(t, field.Vector{0, 2, 5}, diff)
	assert.Equal(t, 2, diff.HammingWeight(7))
}

func TestMatrixMulVec(t *testing.T) {
	m := field.Matrix{{1, 1, 0}, {0, 1, 1}}
	v := field.Vector{1, 2, 3}
	got := m.MulVec(v, 5)
	assert.Equal(t, field.Vector{3, 0}, got)

	back := m.MulVecTranspose(field.Vector{1, 1}, 5)
	assert.Equal(t, field.Vector{1, 2, 1}, back)
}

func TestInverseIsMultiplicativeInverse(t *testing.T) {
	const p = int64(7)
	for x := int64(1); x < p; x++ {
		inv := field.Inverse(x, p)
		assert.Equal(t, int64(1), field.Mod(x*inv, p), "x=%d", x)
	}
}

func TestInverseOfZeroPanics(t *testing.T) {
	assert.Panics(t, func() { field.Inverse(0, 7) })
}
