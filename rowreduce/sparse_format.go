package rowreduce

import (
	"bufio"
	"fmt"
	"io"

	"github.com/latticecodes/c3ltc/embed"
	"github.com/latticecodes/c3ltc/field"
)

// WriteSparse writes the sparse-matrix file format of spec.md §6: a header
// line "R C M" (rows, cols, nonzero count), one "r c v" triple per line
// with 1-based indices, and a "0 0 0" trailer.
func WriteSparse(w io.Writer, triples []embed.Triple, rows, cols int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", rows, cols, len(triples)); err != nil {
		return err
	}
	for _, t := range triples {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", t.Row+1, t.Col+1, t.Value); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "0 0 0\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadDense parses a sparse-matrix file (header + 1-based triples + 0 0 0
// trailer, as returned by an external oracle) back into a dense matrix mod
// p, the inverse of WriteSparse.
func ReadDense(r io.Reader, p int64) (field.Matrix, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, fmt.Errorf("rowreduce: empty sparse file: %w", ErrRowReduceFailed)
	}
	var rows, cols, nnz int
	if _, err := fmt.Sscanf(sc.Text(), "%d %d %d", &rows, &cols, &nnz); err != nil {
		return nil, fmt.Errorf("rowreduce: bad header %q: %w", sc.Text(), ErrRowReduceFailed)
	}

	m := field.NewMatrix(rows, cols)
	for sc.Scan() {
		var r, c int
		var v int64
		if _, err := fmt.Sscanf(sc.Text(), "%d %d %d", &r, &c, &v); err != nil {
			return nil, fmt.Errorf("rowreduce: bad triple line %q: %w", sc.Text(), ErrRowReduceFailed)
		}
		if r == 0 && c == 0 && v == 0 {
			break
		}
		if r < 1 || r > rows || c < 1 || c > cols {
			return nil, fmt.Errorf("rowreduce: triple (%d,%d) out of 1-based bounds %dx%d: %w", r, c, rows, cols, ErrRowReduceFailed)
		}
		m[r-1][c-1] = field.Mod(m[r-1][c-1]+v, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
