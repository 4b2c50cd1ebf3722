// Package smallcode implements the small linear codes (C_A, C_B) placed
// around every left/right edge of the complex, and the local-block decoder
// interface the tensor and global decoders consume — spec component C1's
// code half (field arithmetic itself lives in package field).
//
// Grounded on local_codes/linear_code.py (generic (G,H) linear code +
// syndrome decoding) and local_codes/reed_solomon.py (Vandermonde
// generator).
package smallcode

import (
	"errors"
	"fmt"

	"github.com/latticecodes/c3ltc/field"
)

// ErrLocalDecoderFailed is returned by Decode when neither the syndrome
// table nor (if enabled) brute force could identify a correction.
var ErrLocalDecoderFailed = errors.New("smallcode: local decoder failed")

// ErrInvalidParameters signals a malformed code descriptor (k > n, k <= 0,
// or a requested distance the code cannot plausibly meet).
var ErrInvalidParameters = errors.New("smallcode: invalid parameters")

// Code is the capability set spec.md §9 calls "polymorphism across small
// codes": encode, decode, and the matrices/metadata the rest of the module
// needs. Both Reed–Solomon and RandomLinearCode satisfy it.
type Code interface {
	N() int
	K() int
	Prime() int64
	Generator() field.Matrix
	Parity() field.Matrix
	Distance() int
	Encode(msg field.Vector) field.Vector
	Decode(word field.Vector) (field.Vector, error)
}

// LinearCode is a concrete (G, H) linear code with an optional precomputed
// syndrome table, shared by the Reed–Solomon and RandomLinearCode variants.
type LinearCode struct {
	n, k     int
	p        int64
	distance int
	g        field.Matrix
	h        field.Matrix

	// syndromes maps a syndrome vector's packed key to the minimum-weight
	// error vector producing it, built by BuildSyndromeTable.
	syndromes map[string]field.Vector
	// bruteForce, when true, falls back to exhaustive minimum-weight error
	// search over all length-n vectors of weight <= floor((distance-1)/2)
	// when the syndrome table lookup misses. The search radius equals the
	// table's, so it only finds a correction the table lacks when the table
	// was never built for this code.
	bruteForce bool
}

// New constructs a LinearCode from an explicit generator and parity matrix.
// It does not validate H*G^T == 0; callers that build G and H independently
// (e.g. via field.NullSpace/RowReduce from the same source matrix) get that
// for free, but NewFromParity is the safer entry point for untrusted H.
func New(g, h field.Matrix, p int64, distance int) *LinearCode {
	return &LinearCode{
		n: g.Cols(), k: g.Rows(), p: p, distance: distance,
		g: g, h: h,
	}
}

// NewFromParity derives the generator matrix as the nullspace of h and
// returns the resulting code — the construction path used by
// RandomLinearCode, where only a full-rank (n-k)xn parity matrix is
// sampled directly.
func NewFromParity(h field.Matrix, p int64, distance int) *LinearCode {
	g := field.NullSpace(h, p)
	return New(g, h, p, distance)
}

func (c *LinearCode) N() int              { return c.n }
func (c *LinearCode) K() int              { return c.k }
func (c *LinearCode) Prime() int64        { return c.p }
func (c *LinearCode) Generator() field.Matrix { return c.g }
func (c *LinearCode) Parity() field.Matrix    { return c.h }
func (c *LinearCode) Distance() int        { return c.distance }

// Encode returns msg*G mod p.
func (c *LinearCode) Encode(msg field.Vector) field.Vector {
	out := field.NewVector(c.n)
	for j := 0; j < c.n; j++ {
		var sum int64
		for i := 0; i < c.k; i++ {
			sum += msg[i] * c.g[i][j]
		}
		out[j] = field.Mod(sum, c.p)
	}
	return out
}

// Syndrome returns H*word mod p.
func (c *LinearCode) Syndrome(word field.Vector) field.Vector {
	return c.h.MulVec(word, c.p)
}

// BuildSyndromeTable precomputes, for every coset of the code (up to
// weight (distance-1)/2, i.e. guaranteed-unique-decoding radius), the
// minimum-weight error vector producing each syndrome. Mirrors
// linear_code.py's `get_syndromes`.
func (c *LinearCode) BuildSyndromeTable() {
	maxWeight := (c.distance - 1) / 2
	table := make(map[string]field.Vector)
	for w := 0; w <= maxWeight; w++ {
		for _, e := range enumerateWeightVectors(c.n, c.p, w) {
			key := syndromeKey(c.h.MulVec(e, c.p))
			if _, ok := table[key]; !ok {
				table[key] = e
			}
		}
	}
	c.syndromes = table
}

// EnableBruteForceFallback turns on exhaustive search when the syndrome
// table (if any) misses — only sensible for very small n, p.
func (c *LinearCode) EnableBruteForceFallback() { c.bruteForce = true }

// Decode corrects word against the nearest codeword using the syndrome
// table when available, falling back to brute force if enabled, and
// returns ErrLocalDecoderFailed otherwise — the "decode(word) -> codeword
// | Fail" capability of spec.md §9.
func (c *LinearCode) Decode(word field.Vector) (field.Vector, error) {
	syn := c.Syndrome(word)
	if syn.IsZero(c.p) {
		return word.ModAll(c.p), nil
	}

	if c.syndromes != nil {
		if e, ok := c.syndromes[syndromeKey(syn)]; ok {
			return word.Sub(e, c.p), nil
		}
	}

	if c.bruteForce {
		if e, ok := c.bruteForceCorrection(word, syn); ok {
			return word.Sub(e, c.p), nil
		}
	}

	return nil, fmt.Errorf("smallcode: syndrome %v unresolved: %w", syn, ErrLocalDecoderFailed)
}

// bruteForceCorrection searches increasing error weights up to
// floor((distance-1)/2) for a vector with the observed syndrome.
func (c *LinearCode) bruteForceCorrection(word, syn field.Vector) (field.Vector, bool) {
	maxWeight := (c.distance - 1) / 2
	for w := 0; w <= maxWeight; w++ {
		for _, e := range enumerateWeightVectors(c.n, c.p, w) {
			if c.h.MulVec(e, c.p).Equal(syn, c.p) {
				return e, true
			}
		}
	}
	return nil, false
}

func syndromeKey(v field.Vector) string {
	return fmt.Sprint([]int64(v))
}
