package embed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticecodes/c3ltc/embed"
	"github.com/latticecodes/c3ltc/field"
)

func TestSquaresRowCount(t *testing.T) {
	hA := field.Matrix{{1, 1}}
	hB := field.Matrix{{1, 1}}

	edgesA := []embed.EdgeMap{{Lo: 0, Hi: 1, Gen: 0}}
	edgesB := []embed.EdgeMap{{Lo: 0, Hi: 2, Gen: 0}}

	vertexToSquares := [][][]int{
		{{0, 1}, {2, 3}},
		{{0, 1}, {2, 3}},
		{{0, 1}, {2, 3}},
	}

	triples, rows := embed.Squares(edgesA, edgesB, vertexToSquares, hA, hB)
	assert.Equal(t, len(edgesA)*hB.Rows()+len(edgesB)*hA.Rows(), rows)
	assert.NotEmpty(t, triples)
	for _, tr := range triples {
		assert.Less(t, tr.Row, rows)
		assert.NotZero(t, tr.Value)
	}
}

func TestEdgesRowCount(t *testing.T) {
	h := field.Matrix{{1, 1, 0}, {0, 1, 1}}
	vertexToEdges := [][]int{{0, 1, 2}, {0, 3, 4}}

	triples, rows := embed.Edges(vertexToEdges, h)
	assert.Equal(t, len(vertexToEdges)*h.Rows(), rows)
	assert.NotEmpty(t, triples)
}
