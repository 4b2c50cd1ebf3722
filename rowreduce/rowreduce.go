// Package rowreduce implements the row-reduction oracle boundary (spec
// component C6): given the sparse (row, col, value) triples emitted by
// package embed, produce a dense generator matrix G (nullspace basis) and
// parity matrix H (row-span basis) over F_p.
//
// The spec treats this as an external collaborator — "Input: sparse M...
// Output: a dense basis of the nullspace... and a dense basis of the
// row-span... Treat as a black box." This package is that box's in-process
// implementation: it densifies the triples and calls the same
// field.RowReduce / field.NullSpace machinery package smallcode uses for
// local codes, rather than shelling out to an external process. Callers
// that do need an out-of-process oracle can instead round-trip through
// WriteSparse/ReadDense against the text wire format of spec.md §6.
//
// Grounded on fast_linear_algebra/row_reduce.py.
package rowreduce

import (
	"errors"
	"fmt"

	"github.com/latticecodes/c3ltc/embed"
	"github.com/latticecodes/c3ltc/field"
)

// ErrRowReduceFailed is returned when the oracle cannot produce a
// consistent (G, H) pair, e.g. an empty or rank-degenerate input.
var ErrRowReduceFailed = errors.New("rowreduce: oracle failed")

// Result holds the dense generator and parity matrices the oracle returns.
type Result struct {
	Generator field.Matrix
	Parity    field.Matrix
}

// Reduce densifies the sparse triples into an R x N matrix over F_p, then
// computes H as its row-reduced row span and G as H's nullspace — so
// H*G^T == 0 holds by construction, matching the oracle-correctness
// invariant of spec.md §8.
func Reduce(triples []embed.Triple, rows, cols int, p int64) (Result, error) {
	if cols == 0 {
		return Result{}, fmt.Errorf("rowreduce: zero columns: %w", ErrRowReduceFailed)
	}

	dense := field.NewMatrix(rows, cols)
	for _, t := range triples {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return Result{}, fmt.Errorf("rowreduce: triple (%d,%d) out of bounds for %dx%d: %w", t.Row, t.Col, rows, cols, ErrRowReduceFailed)
		}
		dense[t.Row][t.Col] = field.Mod(dense[t.Row][t.Col]+t.Value, p)
	}

	h := field.RowReduce(dense, p)
	g := field.NullSpace(h, p)
	if len(g) == 0 {
		return Result{}, fmt.Errorf("rowreduce: nullspace trivial for %dx%d matrix: %w", rows, cols, ErrRowReduceFailed)
	}

	return Result{Generator: g, Parity: h}, nil
}
