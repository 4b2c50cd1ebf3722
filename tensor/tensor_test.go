package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecodes/c3ltc/field"
	"github.com/latticecodes/c3ltc/smallcode"
	"github.com/latticecodes/c3ltc/tensor"
)

func repetitionCode(t *testing.T) *smallcode.LinearCode {
	t.Helper()
	g := field.Matrix{{1, 1, 1}}
	h := field.Matrix{{1, 1, 0}, {1, 0, 1}}
	code := smallcode.New(g, h, 2, 3)
	code.BuildSyndromeTable()
	return code
}

func TestIsInTensorCodeForCleanMatrix(t *testing.T) {
	code := repetitionCode(t)
	m := field.Matrix{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	assert.True(t, tensor.IsInTensorCode(m, code, code, 2))
}

func TestDecodeCorrectsSingleError(t *testing.T) {
	code := repetitionCode(t)
	clean := field.Matrix{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	noisy := clean.Clone()
	noisy[1][2] = 0

	decoded := tensor.Decode(noisy, code, code, 2)
	for i, row := range decoded {
		assert.True(t, row.Equal(clean[i], 2))
	}
}

func TestDecodeIsIdempotentOnCleanInput(t *testing.T) {
	code := repetitionCode(t)
	clean := field.Matrix{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}

	once := tensor.Decode(clean.Clone(), code, code, 2)
	twice := tensor.Decode(once.Clone(), code, code, 2)
	require.Equal(t, len(once), len(twice))
	for i := range once {
		assert.True(t, once[i].Equal(twice[i], 2))
	}
}
