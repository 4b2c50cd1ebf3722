package code

import (
	"bufio"
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/latticecodes/c3ltc/field"
	"github.com/latticecodes/c3ltc/group"
)

// persistedComplex is the binary-serializable subset of lrcomplex.Complex
// persisted alongside the text matrices — the integer maps only, per
// spec.md §6 ("the complex maps serialized in an implementation-chosen
// binary format"). Group elements are persisted separately as their
// printable String() forms in generators_a.txt / generators_b.txt.
type persistedComplex struct {
	VertexToSquares  [][][]int
	SquareToVertices [][4]int
	NumSquares       int
	TNCHolds         bool
}

// Save writes the persisted artifact layout of spec.md §6 into dir,
// creating it if necessary: parity_check.txt, generator_matrix.txt
// (whitespace-separated integers), the A/B generator lists, per-side
// eigenvalues, the complex maps in gob format, and a log.txt line summary.
func (c *C3LTC) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("code: creating %s: %w", dir, err)
	}

	if err := writeMatrixText(filepath.Join(dir, "parity_check.txt"), c.Parity); err != nil {
		return err
	}
	if err := writeMatrixText(filepath.Join(dir, "generator_matrix.txt"), c.Generator); err != nil {
		return err
	}
	if err := writeGeneratorList(filepath.Join(dir, "generators_a.txt"), c.Complex.A); err != nil {
		return err
	}
	if err := writeGeneratorList(filepath.Join(dir, "generators_b.txt"), c.Complex.B); err != nil {
		return err
	}
	if err := writeFloatList(filepath.Join(dir, "eigenvalues_a.txt"), c.Complex.EigenvaluesA()); err != nil {
		return err
	}
	if err := writeFloatList(filepath.Join(dir, "eigenvalues_b.txt"), c.Complex.EigenvaluesB()); err != nil {
		return err
	}

	pc := persistedComplex{
		VertexToSquares:  c.Complex.VertexToSquares,
		SquareToVertices: c.Complex.SquareToVertices,
		NumSquares:       c.Complex.NumSquares,
		TNCHolds:         c.Complex.TNCHolds,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(pc); err != nil {
		return fmt.Errorf("code: gob-encoding complex maps: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "complex.gob"), buf.Bytes(), 0o644); err != nil {
		return err
	}

	return appendLogLine(dir, c)
}

func writeMatrixText(path string, m field.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%d", v)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func writeGeneratorList(path string, gens []group.Element) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, g := range gens {
		fmt.Fprintf(w, "%v\n", g)
	}
	return w.Flush()
}

func writeFloatList(path string, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range values {
		fmt.Fprintf(w, "%g\n", v)
	}
	return w.Flush()
}

func appendLogLine(dir string, c *C3LTC) error {
	f, err := os.OpenFile(filepath.Join(dir, "log.txt"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s\t%d\t%d\t%d\t%g\t%t\n",
		time.Now().Format(time.RFC3339), c.N(), c.K(), c.Prime, c.Complex.Lambda2(), c.Complex.TNCHolds)
	return err
}
