package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecodes/c3ltc/field"
)

func TestRowReduceStripsZeroRows(t *testing.T) {
	m := field.Matrix{{1, 1, 1}, {2, 2, 2}, {1, 0, 1}}
	rref := field.RowReduce(m, 3)
	assert.Len(t, rref, 2)
}

func TestNullSpaceIsOrthogonalToSource(t *testing.T) {
	m := field.Matrix{{1, 1, 1}}
	ns := field.NullSpace(m, 2)
	require.Len(t, ns, 2)
	for _, v := range ns {
		assert.True(t, m.MulVec(v, 2).IsZero(2))
	}
}

func TestNullSpaceOfFullRankIsTrivial(t *testing.T) {
	m := field.Matrix{{1, 0}, {0, 1}}
	ns := field.NullSpace(m, 3)
	assert.Empty(t, ns)
}
