// Command c3ltc is a driver program wiring the library components
// together end to end, the Go analog of example_comparison.py: build a
// group, sample generators, construct an ExpanderCode and a C3LTC, then
// encode a random codeword, inject an error, and decode it back.
//
// There is no supported CLI surface beyond this example — spec.md §6
// leaves exit codes and flags implementation-defined.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/latticecodes/c3ltc/code"
	"github.com/latticecodes/c3ltc/group"
	"github.com/latticecodes/c3ltc/internal/xlog"
	"github.com/latticecodes/c3ltc/smallcode"
)

func main() {
	if err := run(); err != nil {
		xlog.L.Error().Err(err).Msg("c3ltc example failed")
		os.Exit(1)
	}
}

func run() error {
	const primeField = 5
	g := group.NewPSL2(primeField)
	fmt.Printf("group: PSL(2,%d), |G|=%d\n", primeField, g.Size())

	rs, err := smallcode.NewReedSolomon(6, 4, 7)
	if err != nil {
		return fmt.Errorf("building RS(6,4,7): %w", err)
	}

	gensExpander, err := group.SampleGenerators(g, 6, 0)
	if err != nil {
		return fmt.Errorf("sampling expander-code generators: %w", err)
	}
	expander, err := code.NewExpanderCode(g, gensExpander, rs)
	if err != nil {
		return fmt.Errorf("building expander code: %w", err)
	}
	fmt.Printf("expander code: n=%d k=%d lambda2=%.4f\n", expander.N(), expander.K(), expander.Graph.Lambda2())

	A, B, err := group.SampleWithTNC(g, 6, 0)
	if err != nil {
		return fmt.Errorf("sampling TNC generator pair: %w", err)
	}
	c, err := code.NewC3LTC(g, A, B, rs, rs)
	if err != nil {
		return fmt.Errorf("building c3LTC: %w", err)
	}
	fmt.Printf("c3LTC: n=%d k=%d rate=%.4f lambda2=%.4f TNC=%v\n", c.N(), c.K(), c.Rate(), c.Complex.Lambda2(), c.Complex.TNCHolds)

	if c.K() == 0 {
		fmt.Println("degenerate dimension for this sample; skipping decode demo")
		return nil
	}

	rng := rand.New(rand.NewSource(42))
	w := code.RandomCodeword(c, rng)
	e := code.RandomError(c.N(), 1, c.Prime, rng)
	noisy := w.Clone()
	for i, v := range e {
		if v != 0 {
			noisy[i] = (noisy[i] + v) % c.Prime
		}
	}

	decoded := c.DecodeEdges(noisy)
	fmt.Printf("decode by edges recovered codeword: %v\n", decoded.Equal(w, c.Prime))

	decodedV := c.DecodeVertices(noisy)
	fmt.Printf("decode by vertices recovered codeword: %v\n", decodedV.Equal(w, c.Prime))

	return nil
}
