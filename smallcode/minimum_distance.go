package smallcode

import "github.com/latticecodes/c3ltc/field"

// MinimumDistance returns the Hamming weight of the lightest nonzero
// codeword in the code generated by g, found by exhaustive search over all
// p^k messages. Mirrors local_codes/linear_code_utils.py's get_min_dist
// exactly (brute force over the message space, not the codeword space) —
// feasible at the small (n, k, p) sizes this module's scenarios use.
func MinimumDistance(g field.Matrix, p int64) int {
	n, k := g.Cols(), g.Rows()
	min := n

	msg := field.NewVector(k)
	total := int64(1)
	for i := 0; i < k; i++ {
		total *= p
	}
	for m := int64(1); m < total; m++ {
		rem := m
		for i := 0; i < k; i++ {
			msg[i] = rem % p
			rem /= p
		}
		word := field.NewVector(n)
		for j := 0; j < n; j++ {
			var sum int64
			for i := 0; i < k; i++ {
				sum += msg[i] * g[i][j]
			}
			word[j] = field.Mod(sum, p)
		}
		if w := word.HammingWeight(p); w > 0 && w < min {
			min = w
		}
	}
	return min
}
