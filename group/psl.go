package group

import "fmt"

// PSLElement is an element of PSL(2,q): a 2x2 matrix (a b; c d) over Z_q with
// determinant 1, modulo the identification of a matrix with its negation.
// Grounded on graph_codes/groups/psl_group.py.
type PSLElement struct {
	q          int64
	a, b, c, d int64
}

// NewPSLElement builds a matrix element, reducing entries mod q.
func NewPSLElement(q, a, b, c, d int64) PSLElement {
	return PSLElement{q: q, a: mod(a, q), b: mod(b, q), c: mod(c, q), d: mod(d, q)}
}

func mod(x, q int64) int64 {
	m := x % q
	if m < 0 {
		m += q
	}
	return m
}

func (e PSLElement) Mul(other Element) Element {
	o := other.(PSLElement)
	q := e.q
	return NewPSLElement(q,
		e.a*o.a+e.b*o.c,
		e.a*o.b+e.b*o.d,
		e.c*o.a+e.d*o.c,
		e.c*o.b+e.d*o.d,
	)
}

func (e PSLElement) Inverse() Element {
	return NewPSLElement(e.q, e.d, e.q-e.b, e.q-e.c, e.a)
}

// negate returns -g (the other matrix in e's equivalence class).
func (e PSLElement) negate() PSLElement {
	return NewPSLElement(e.q, e.q-e.a, e.q-e.b, e.q-e.c, e.q-e.d)
}

// canonical returns the lexicographically smaller of e and -e, so that
// Hash and Equal agree on the PSL(2,q) quotient by {I, -I}.
func (e PSLElement) canonical() PSLElement {
	n := e.negate()
	if lessTuple(n, e) {
		return n
	}
	return e
}

func lessTuple(x, y PSLElement) bool {
	if x.a != y.a {
		return x.a < y.a
	}
	if x.b != y.b {
		return x.b < y.b
	}
	if x.c != y.c {
		return x.c < y.c
	}
	return x.d < y.d
}

func (e PSLElement) Hash() uint64 {
	c := e.canonical()
	// pack as base-q digits, matches the packing style of FqmElement.Hash.
	return uint64(((c.a*e.q+c.b)*e.q+c.c)*e.q + c.d)
}

func (e PSLElement) Equal(other Element) bool {
	o, ok := other.(PSLElement)
	if !ok || o.q != e.q {
		return false
	}
	return e.canonical() == o.canonical()
}

func (e PSLElement) IsIdentity() bool {
	c := e.canonical()
	id := NewPSLElement(e.q, 1, 0, 0, 1).canonical()
	return c == id
}

func (e PSLElement) IsOrderTwoNonIdentity() bool {
	sq := e.Mul(e).(PSLElement)
	return sq.IsIdentity() && !e.IsIdentity()
}

func (e PSLElement) String() string {
	return fmt.Sprintf("[%d %d; %d %d]", e.a, e.b, e.c, e.d)
}

// NewPSL2 enumerates PSL(2,q): all (a,b,c,d) in Z_q^4 with determinant 1,
// deduplicated under g ~ -g.
func NewPSL2(q int64) *Group {
	elements := make([]Element, 0)
	seen := make(map[uint64]bool)
	for a := int64(0); a < q; a++ {
		for b := int64(0); b < q; b++ {
			for c := int64(0); c < q; c++ {
				for d := int64(0); d < q; d++ {
					det := mod(a*d-b*c, q)
					if det != 1 {
						continue
					}
					el := NewPSLElement(q, a, b, c, d)
					h := el.Hash()
					if seen[h] {
						continue
					}
					seen[h] = true
					elements = append(elements, el)
				}
			}
		}
	}
	return New(fmt.Sprintf("PSL(2,%d)", q), elements)
}
