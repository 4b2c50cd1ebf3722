package code

import (
	"github.com/latticecodes/c3ltc/cayley"
	"github.com/latticecodes/c3ltc/embed"
	"github.com/latticecodes/c3ltc/field"
	"github.com/latticecodes/c3ltc/group"
	"github.com/latticecodes/c3ltc/internal/xlog"
	"github.com/latticecodes/c3ltc/rowreduce"
	"github.com/latticecodes/c3ltc/smallcode"
)

// ExpanderCode is the simpler edge-only sibling of C3LTC (spec component
// C9): a single small code embedded around the edges of one Cayley graph,
// with no decoder of its own — spec.md explicitly scopes a
// belief-propagation or edge-local decoder for it out.
type ExpanderCode struct {
	Group *group.Group
	Graph *cayley.Graph
	Code  smallcode.Code
	Prime int64

	Generator field.Matrix
	Parity    field.Matrix
}

// NewExpanderCode builds the Cayley graph of g under gens, embeds Code's
// parity constraint at every vertex (on the |gens| edges incident to it),
// and row-reduces the result.
func NewExpanderCode(g *group.Group, gens []group.Element, c smallcode.Code) (*ExpanderCode, error) {
	defer xlog.Stage("code.NewExpanderCode")()

	if c.N() != len(gens) {
		return nil, ErrInvalidParameters
	}

	gr, err := cayley.New(g, gens)
	if err != nil {
		return nil, err
	}

	triples, rows := embed.Edges(gr.VertexToEdges, c.Parity())
	res, err := rowreduce.Reduce(triples, rows, gr.NumEdges, c.Prime())
	if err != nil {
		return nil, err
	}

	return &ExpanderCode{
		Group: g, Graph: gr, Code: c, Prime: c.Prime(),
		Generator: res.Generator, Parity: res.Parity,
	}, nil
}

// N returns the code length (number of Cayley-graph edges).
func (e *ExpanderCode) N() int { return e.Graph.NumEdges }

// K returns the code dimension.
func (e *ExpanderCode) K() int { return e.Generator.Rows() }

// IsWordInCode reports whether H*w == 0 mod p.
func (e *ExpanderCode) IsWordInCode(w field.Vector) bool {
	return e.Parity.MulVec(w, e.Prime).IsZero(e.Prime)
}
