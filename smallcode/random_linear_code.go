package smallcode

import (
	"fmt"
	"math/rand"

	"github.com/latticecodes/c3ltc/field"
)

// RandomLinearCodeOption configures NewRandomLinearCode.
type RandomLinearCodeOption func(*randomLinearCodeConfig)

type randomLinearCodeConfig struct {
	rng     *rand.Rand
	retries int
}

func newRandomLinearCodeConfig(opts ...RandomLinearCodeOption) randomLinearCodeConfig {
	cfg := randomLinearCodeConfig{rng: rand.New(rand.NewSource(1)), retries: 1000}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRandomLinearCodeRand overrides the random source.
func WithRandomLinearCodeRand(r *rand.Rand) RandomLinearCodeOption {
	return func(c *randomLinearCodeConfig) { c.rng = r }
}

// NewRandomLinearCode samples a uniformly random full-rank (n-k)xn parity
// matrix over F_p, retrying on rank deficiency or on the derived code's
// actual minimum distance falling short of the requested distance, and
// derives the generator as the nullspace of the first parity matrix that
// clears both bars — a random [n, k] linear code guaranteed (by exhaustive
// check, not just by construction) to meet its distance parameter, exactly
// as local_codes/rlc.py's RandomLinearCode.get_random_linear_code loops
// `while min_dist < 3 or generator.shape != (k, n)`.
//
// Grounded on local_codes/rlc.py's RandomLinearCode.
func NewRandomLinearCode(n, k int, p int64, distance int, opts ...RandomLinearCodeOption) (*LinearCode, error) {
	if k <= 0 || k > n {
		return nil, fmt.Errorf("smallcode: random linear code n=%d k=%d: %w", n, k, ErrInvalidParameters)
	}
	cfg := newRandomLinearCodeConfig(opts...)
	r := n - k

	for attempt := 0; attempt < cfg.retries; attempt++ {
		h := field.NewMatrix(r, n)
		for i := 0; i < r; i++ {
			for j := 0; j < n; j++ {
				h[i][j] = int64(cfg.rng.Intn(int(p)))
			}
		}
		if len(field.RowReduce(h, p)) != r {
			continue
		}
		code := NewFromParity(h, p, distance)
		if code.G() != k { // sanity: nullspace rank must equal k
			continue
		}
		if MinimumDistance(code.Generator(), p) < distance {
			continue
		}
		code.BuildSyndromeTable()
		code.EnableBruteForceFallback()
		return code, nil
	}
	return nil, fmt.Errorf("smallcode: exhausted %d attempts sampling a parity matrix meeting rank and distance %d: %w", cfg.retries, distance, ErrInvalidParameters)
}

// G reports the generator's row count (k), used internally to validate
// the sampled parity matrix produced a code of the expected dimension.
func (c *LinearCode) G() int { return c.g.Rows() }
