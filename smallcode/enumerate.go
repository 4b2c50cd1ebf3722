package smallcode

import "github.com/latticecodes/c3ltc/field"

// enumerateWeightVectors returns every length-n vector over F_p with
// exactly `weight` nonzero entries, each nonzero entry ranging over
// 1..p-1. Used only for small (n, p, weight) — the syndrome-table build
// radius and, optionally, the brute-force decode fallback.
func enumerateWeightVectors(n int, p int64, weight int) []field.Vector {
	if weight == 0 {
		return []field.Vector{field.NewVector(n)}
	}
	var out []field.Vector
	var positions []int
	var rec func(start int)
	rec = func(start int) {
		if len(positions) == weight {
			out = append(out, assignNonzero(n, p, positions)...)
			return
		}
		for i := start; i < n; i++ {
			positions = append(positions, i)
			rec(i + 1)
			positions = positions[:len(positions)-1]
		}
	}
	rec(0)
	return out
}

// assignNonzero expands one choice of nonzero positions into all
// (p-1)^len(positions) assignments of nonzero values.
func assignNonzero(n int, p int64, positions []int) []field.Vector {
	combos := []field.Vector{field.NewVector(n)}
	for _, pos := range positions {
		var next []field.Vector
		for _, base := range combos {
			for val := int64(1); val < p; val++ {
				v := base.Clone()
				v[pos] = val
				next = append(next, v)
			}
		}
		combos = next
	}
	return combos
}
