package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecodes/c3ltc/decode"
	"github.com/latticecodes/c3ltc/field"
	"github.com/latticecodes/c3ltc/group"
	"github.com/latticecodes/c3ltc/lrcomplex"
	"github.com/latticecodes/c3ltc/smallcode"
)

func buildCubeComplex(t *testing.T) *lrcomplex.Complex {
	t.Helper()
	g := group.NewFqm(2, 3)
	A := []group.Element{
		group.NewFqmElement(2, []int64{1, 0, 0}),
		group.NewFqmElement(2, []int64{0, 1, 0}),
		group.NewFqmElement(2, []int64{0, 0, 1}),
	}
	B := []group.Element{
		group.NewFqmElement(2, []int64{1, 1, 0}),
		group.NewFqmElement(2, []int64{1, 0, 1}),
		group.NewFqmElement(2, []int64{0, 1, 1}),
	}
	c, err := lrcomplex.New(g, A, B)
	require.NoError(t, err)
	require.True(t, c.TNCHolds)
	return c
}

func repetitionCode(t *testing.T) *smallcode.LinearCode {
	t.Helper()
	g := field.Matrix{{1, 1, 1}}
	h := field.Matrix{{1, 1, 0}, {1, 0, 1}}
	code := smallcode.New(g, h, 2, 3)
	code.BuildSyndromeTable()
	return code
}

func TestDecodeAlongEdgesRecoversSingleError(t *testing.T) {
	c := buildCubeComplex(t)
	code := repetitionCode(t)

	clean := field.NewVector(c.NumSquares)
	noisy := clean.Clone()
	noisy[0] = 1

	recovered := decode.DecodeAlongEdges(c, code, code, noisy, 2)
	assert.True(t, recovered.Equal(clean, 2))
}

func TestDecodeAlongVerticesRecoversSingleError(t *testing.T) {
	c := buildCubeComplex(t)
	code := repetitionCode(t)

	clean := field.NewVector(c.NumSquares)
	noisy := clean.Clone()
	noisy[3] = 1

	recovered := decode.DecodeAlongVertices(c, code, code, noisy, 2)
	assert.True(t, recovered.Equal(clean, 2))
}

func TestDecodeAlongEdgesIsIdempotentOnCleanWord(t *testing.T) {
	c := buildCubeComplex(t)
	code := repetitionCode(t)

	clean := field.NewVector(c.NumSquares)
	once := decode.DecodeAlongEdges(c, code, code, clean, 2)
	twice := decode.DecodeAlongEdges(c, code, code, once, 2)
	assert.True(t, once.Equal(twice, 2))
}
