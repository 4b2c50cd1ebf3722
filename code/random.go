package code

import (
	"math/rand"

	"github.com/latticecodes/c3ltc/field"
)

// RandomCodeword draws a uniformly random message and returns its
// encoding, used by test scenarios and the example driver.
func RandomCodeword(c *C3LTC, rng *rand.Rand) field.Vector {
	msg := field.NewVector(c.K())
	for i := range msg {
		msg[i] = int64(rng.Intn(int(c.Prime)))
	}
	return c.Encode(msg)
}

// RandomError returns a length-n vector over F_p with exactly `weight`
// nonzero entries at random positions and random nonzero values —
// spec.md §8 scenario 3/4's random error of a given Hamming weight.
func RandomError(n, weight int, p int64, rng *rand.Rand) field.Vector {
	if weight > n {
		weight = n
	}
	positions := rng.Perm(n)[:weight]
	e := field.NewVector(n)
	for _, pos := range positions {
		e[pos] = int64(1 + rng.Intn(int(p-1)))
	}
	return e
}
