package group

import "fmt"

// FqmElement is an element of the additive group F_q^m: an m-tuple over Z_q
// under componentwise addition mod q. Grounded on graph_codes/groups/Fqm.py.
type FqmElement struct {
	q     int64
	value []int64
}

// NewFqmElement builds an element from an m-tuple of residues mod q. value
// is copied and each entry normalized into [0, q).
func NewFqmElement(q int64, value []int64) FqmElement {
	v := make([]int64, len(value))
	for i, x := range value {
		m := x % q
		if m < 0 {
			m += q
		}
		v[i] = m
	}
	return FqmElement{q: q, value: v}
}

func (e FqmElement) Mul(other Element) Element {
	o := other.(FqmElement)
	v := make([]int64, len(e.value))
	for i := range e.value {
		s := e.value[i] + o.value[i]
		s %= e.q
		v[i] = s
	}
	return FqmElement{q: e.q, value: v}
}

func (e FqmElement) Inverse() Element {
	v := make([]int64, len(e.value))
	for i, x := range e.value {
		if x == 0 {
			v[i] = 0
		} else {
			v[i] = e.q - x
		}
	}
	return FqmElement{q: e.q, value: v}
}

func (e FqmElement) IsIdentity() bool {
	for _, x := range e.value {
		if x != 0 {
			return false
		}
	}
	return true
}

func (e FqmElement) IsOrderTwoNonIdentity() bool {
	if e.q == 2 {
		return !e.IsIdentity()
	}
	return !e.IsIdentity() && e.Mul(e).(FqmElement).IsIdentity()
}

// Hash packs the tuple into its base-q integer value, exactly
// graph_codes/groups/Fqm.py's to_int.
func (e FqmElement) Hash() uint64 {
	var y int64
	pow := int64(1)
	for _, x := range e.value {
		y += x * pow
		pow *= e.q
	}
	return uint64(y)
}

func (e FqmElement) Equal(other Element) bool {
	o, ok := other.(FqmElement)
	if !ok || o.q != e.q || len(o.value) != len(e.value) {
		return false
	}
	for i := range e.value {
		if e.value[i] != o.value[i] {
			return false
		}
	}
	return true
}

func (e FqmElement) String() string {
	return fmt.Sprintf("%v", e.value)
}

// NewFqm enumerates the group F_q^m: every m-tuple over {0,...,q-1} under
// additive composition, in odometer order with the first coordinate varying
// fastest, so each element's index equals its Hash.
func NewFqm(q, m int64) *Group {
	n := 1
	for i := int64(0); i < m; i++ {
		n *= int(q)
	}
	elements := make([]Element, 0, n)
	tuple := make([]int64, m)
	for i := 0; i < n; i++ {
		elements = append(elements, NewFqmElement(q, append([]int64(nil), tuple...)))
		// odometer increment, least-significant digit first
		for d := int64(0); d < m; d++ {
			tuple[d]++
			if tuple[d] < q {
				break
			}
			tuple[d] = 0
		}
	}
	return New(fmt.Sprintf("F%d^%d", q, m), elements)
}
