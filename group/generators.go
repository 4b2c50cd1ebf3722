package group

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrNoGenerator is returned when random sampling exhausts its retry budget
// without finding a usable inverse-closed generator set (spec §4.2, §7).
var ErrNoGenerator = errors.New("group: exhausted retry budget sampling generators")

// GeneratorOption configures SampleGenerators / SampleWithTNC.
type GeneratorOption func(*generatorConfig)

type generatorConfig struct {
	rng       *rand.Rand
	retries   int
	tncTrials int
}

func newGeneratorConfig(opts ...GeneratorOption) generatorConfig {
	cfg := generatorConfig{rng: rand.New(rand.NewSource(1)), retries: 10000, tncTrials: 100}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand overrides the random source (default: a fixed seed, for
// deterministic tests; pass rand.New(rand.NewSource(time.Now().UnixNano()))
// for production sampling).
func WithRand(r *rand.Rand) GeneratorOption {
	return func(c *generatorConfig) { c.rng = r }
}

// WithRetryBudget overrides the number of candidate draws attempted before
// giving up with ErrNoGenerator (default 10000, per element needed).
func WithRetryBudget(n int) GeneratorOption {
	return func(c *generatorConfig) { c.retries = n }
}

// WithTNCTrials overrides the number of (A,B) resamplings attempted before
// SampleWithTNC gives up (default 100, matching the original's `trials`).
func WithTNCTrials(n int) GeneratorOption {
	return func(c *generatorConfig) { c.tncTrials = n }
}

// SampleGenerators returns a generator set: nNonOrderTwo non-identity,
// non-order-2 elements (paired as (s, s^-1) at consecutive indices), plus
// nOrderTwo distinct order-2 elements appended at the end. nNonOrderTwo must
// be even. Grounded on graph_codes/groups/generators.py's
// get_random_generators.
func SampleGenerators(g *Group, nNonOrderTwo, nOrderTwo int, opts ...GeneratorOption) ([]Element, error) {
	if nNonOrderTwo%2 != 0 {
		return nil, fmt.Errorf("group: nNonOrderTwo=%d must be even: %w", nNonOrderTwo, ErrInvalidParameters)
	}
	cfg := newGeneratorConfig(opts...)
	gens := make([]Element, 0, nNonOrderTwo+nOrderTwo)
	seen := make(map[uint64]bool)

	for i := 0; i < nNonOrderTwo/2; i++ {
		cand, err := drawCandidate(g, &cfg, seen, func(e Element) bool {
			return !e.IsIdentity() && !e.IsOrderTwoNonIdentity()
		})
		if err != nil {
			return nil, err
		}
		inv := cand.Inverse()
		gens = append(gens, cand, inv)
		seen[cand.Hash()] = true
		seen[inv.Hash()] = true
	}
	for i := 0; i < nOrderTwo; i++ {
		cand, err := drawCandidate(g, &cfg, seen, func(e Element) bool {
			return !e.IsIdentity() && e.IsOrderTwoNonIdentity()
		})
		if err != nil {
			return nil, err
		}
		gens = append(gens, cand)
		seen[cand.Hash()] = true
	}
	return gens, nil
}

func drawCandidate(g *Group, cfg *generatorConfig, seen map[uint64]bool, accept func(Element) bool) (Element, error) {
	for attempt := 0; attempt < cfg.retries; attempt++ {
		cand := g.Elements[cfg.rng.Intn(g.Size())]
		if seen[cand.Hash()] || !accept(cand) {
			continue
		}
		return cand, nil
	}
	return nil, ErrNoGenerator
}

// HasTNC reports whether the Total-No-Conjugacy predicate holds for (A, B):
// no g in G, a in A, b in B satisfy a*g == g*b. Checked by exhaustive scan,
// as in generators.py's get_AB_with_TNC inner loop.
func HasTNC(g *Group, A, B []Element) bool {
	for _, a := range A {
		for _, b := range B {
			for _, elem := range g.Elements {
				if a.Mul(elem).Equal(elem.Mul(b)) {
					return false
				}
			}
		}
	}
	return true
}

// SampleWithTNC resamples A and B (each with nNonOrderTwo/nOrderTwo
// generators) until HasTNC holds, up to the configured TNC trial budget.
func SampleWithTNC(g *Group, nNonOrderTwo, nOrderTwo int, opts ...GeneratorOption) (A, B []Element, err error) {
	cfg := newGeneratorConfig(opts...)
	// Every draw shares cfg's random source, so A, B and each retry get
	// fresh samples instead of restarting from the default seed.
	inner := append(append([]GeneratorOption(nil), opts...), WithRand(cfg.rng))
	for trial := 0; trial < cfg.tncTrials; trial++ {
		A, err = SampleGenerators(g, nNonOrderTwo, nOrderTwo, inner...)
		if err != nil {
			return nil, nil, err
		}
		B, err = SampleGenerators(g, nNonOrderTwo, nOrderTwo, inner...)
		if err != nil {
			return nil, nil, err
		}
		if HasTNC(g, A, B) {
			return A, B, nil
		}
	}
	return nil, nil, fmt.Errorf("group: no TNC-satisfying (A,B) after %d trials: %w", cfg.tncTrials, ErrNoGenerator)
}
