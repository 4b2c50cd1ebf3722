// Package code wires together the complex/graph builders, the square-code
// embedding, the row-reduction oracle, and the decoders into the two
// top-level constructions spec.md describes: C3LTC (the cubical locally
// testable square code) and ExpanderCode (its simpler edge-only sibling,
// spec component C9).
//
// Grounded on lr_cayley_complex.py's LeftRightCayleyComplex (wiring the
// whole pipeline end to end) and graph_codes/expander_code.py.
package code

import (
	"errors"
	"fmt"

	"github.com/latticecodes/c3ltc/decode"
	"github.com/latticecodes/c3ltc/embed"
	"github.com/latticecodes/c3ltc/field"
	"github.com/latticecodes/c3ltc/group"
	"github.com/latticecodes/c3ltc/internal/xlog"
	"github.com/latticecodes/c3ltc/lrcomplex"
	"github.com/latticecodes/c3ltc/rowreduce"
	"github.com/latticecodes/c3ltc/smallcode"
)

// ErrInvalidParameters signals a mismatched field characteristic between
// C_A and C_B, or a generator-set length that does not match its small
// code's length.
var ErrInvalidParameters = errors.New("code: invalid parameters")

// C3LTC is the cubical, locally testable square code built on the squares
// of a left-right Cayley complex.
type C3LTC struct {
	Group        *group.Group
	Complex      *lrcomplex.Complex
	CodeA, CodeB smallcode.Code
	Prime        int64

	Generator field.Matrix
	Parity    field.Matrix
}

// NewC3LTC builds the complex, embeds the local parity constraints around
// every edge, invokes the row-reduction oracle, and returns the resulting
// code.
func NewC3LTC(g *group.Group, A, B []group.Element, codeA, codeB smallcode.Code) (*C3LTC, error) {
	defer xlog.Stage("code.NewC3LTC")()

	if codeA.Prime() != codeB.Prime() {
		return nil, fmt.Errorf("code: C_A prime %d != C_B prime %d: %w", codeA.Prime(), codeB.Prime(), ErrInvalidParameters)
	}
	if codeA.N() != len(A) {
		return nil, fmt.Errorf("code: |A|=%d does not match C_A length %d: %w", len(A), codeA.N(), ErrInvalidParameters)
	}
	if codeB.N() != len(B) {
		return nil, fmt.Errorf("code: |B|=%d does not match C_B length %d: %w", len(B), codeB.N(), ErrInvalidParameters)
	}

	cx, err := lrcomplex.New(g, A, B)
	if err != nil {
		return nil, err
	}

	edgesA := make([]embed.EdgeMap, 0, len(cx.EdgesA))
	for e, k := range cx.EdgesA {
		edgesA = append(edgesA, embed.EdgeMap{Lo: e.Lo, Hi: e.Hi, Gen: k})
	}
	edgesB := make([]embed.EdgeMap, 0, len(cx.EdgesB))
	for e, k := range cx.EdgesB {
		edgesB = append(edgesB, embed.EdgeMap{Lo: e.Lo, Hi: e.Hi, Gen: k})
	}

	triples, rows := embed.Squares(edgesA, edgesB, cx.VertexToSquares, codeA.Parity(), codeB.Parity())
	res, err := rowreduce.Reduce(triples, rows, cx.NumSquares, codeA.Prime())
	if err != nil {
		return nil, err
	}

	return &C3LTC{
		Group: g, Complex: cx, CodeA: codeA, CodeB: codeB, Prime: codeA.Prime(),
		Generator: res.Generator, Parity: res.Parity,
	}, nil
}

// N returns the code length (number of squares).
func (c *C3LTC) N() int { return c.Complex.NumSquares }

// K returns the code dimension (generator rank).
func (c *C3LTC) K() int { return c.Generator.Rows() }

// Encode returns msg*G mod p.
func (c *C3LTC) Encode(msg field.Vector) field.Vector {
	out := field.NewVector(c.N())
	for j := 0; j < c.N(); j++ {
		var sum int64
		for i := 0; i < c.K(); i++ {
			sum += msg[i] * c.Generator[i][j]
		}
		out[j] = field.Mod(sum, c.Prime)
	}
	return out
}

// IsWordInCode reports whether H*w == 0 mod p.
func (c *C3LTC) IsWordInCode(w field.Vector) bool {
	return c.Parity.MulVec(w, c.Prime).IsZero(c.Prime)
}

// DecodeEdges runs the edge-propagation decoder on w.
func (c *C3LTC) DecodeEdges(w field.Vector) field.Vector {
	return decode.DecodeAlongEdges(c.Complex, c.CodeA, c.CodeB, w, c.Prime)
}

// DecodeVertices runs the vertex-propagation decoder on w.
func (c *C3LTC) DecodeVertices(w field.Vector) field.Vector {
	return decode.DecodeAlongVertices(c.Complex, c.CodeA, c.CodeB, w, c.Prime)
}

// Rate returns K/N.
func (c *C3LTC) Rate() float64 {
	return float64(c.K()) / float64(c.N())
}
