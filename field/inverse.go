package field

import "fmt"

// Inverse returns the multiplicative inverse of x modulo the prime p, via
// Fermat's little theorem (x^(p-2) mod p). Panics if x is 0 mod p — callers
// (row reduction, syndrome decoding) must never invert a zero pivot.
func Inverse(x, p int64) int64 {
	x = Mod(x, p)
	if x == 0 {
		panic(fmt.Sprintf("field: inverse of 0 mod %d", p))
	}
	return powMod(x, p-2, p)
}

func powMod(base, exp, p int64) int64 {
	base = Mod(base, p)
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = Mod(result*base, p)
		}
		base = Mod(base*base, p)
		exp >>= 1
	}
	return result
}
