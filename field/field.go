// Package field implements modular arithmetic over a prime field F_p and
// the small dense vector/matrix helpers the rest of this module builds on:
// local codes (package smallcode), the sparse-to-dense row-reduction oracle
// (package rowreduce), and the tensor decoder (package tensor) all exchange
// data as a field.Vector or field.Matrix.
//
// Every value is kept in its canonical representative [0, p): Mod and all
// arithmetic helpers normalize negative results the way Python's modular
// arithmetic does, so ports of the original construction's sign-flipping
// (e.g. additive inverses in F_q^m) carry over without surprises.
package field

import "fmt"

// Vector is a dense vector over F_p; entries are always kept in [0, p).
type Vector []int64

// Matrix is a dense row-major matrix over F_p.
type Matrix [][]int64

// Mod reduces x into the canonical representative [0, p).
func Mod(x, p int64) int64 {
	r := x % p
	if r < 0 {
		r += p
	}
	return r
}

// NewVector returns a zero vector of length n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// NewMatrix returns an r x c zero matrix.
func NewMatrix(r, c int) Matrix {
	m := make(Matrix, r)
	for i := range m {
		m[i] = make(Vector, c)
	}
	return m
}

// Rows reports the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols reports the number of columns, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append(Vector(nil), row...)
	}
	return out
}

// Clone returns a copy of v.
func (v Vector) Clone() Vector {
	return append(Vector(nil), v...)
}

// ModAll reduces every entry of v into [0, p) in place and returns v.
func (v Vector) ModAll(p int64) Vector {
	for i := range v {
		v[i] = Mod(v[i], p)
	}
	return v
}

// ModAll reduces every entry of m into [0, p) in place and returns m.
func (m Matrix) ModAll(p int64) Matrix {
	for _, row := range m {
		row.ModAll(p)
	}
	return m
}

// Equal reports whether v and other are the same length and agree entrywise
// after reduction mod p.
func (v Vector) Equal(other Vector, p int64) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if Mod(v[i], p) != Mod(other[i], p) {
			return false
		}
	}
	return true
}

// Sub returns v - other, reduced mod p. Panics if lengths differ.
func (v Vector) Sub(other Vector, p int64) Vector {
	if len(v) != len(other) {
		panic(fmt.Sprintf("field: vector length mismatch %d != %d", len(v), len(other)))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = Mod(v[i]-other[i], p)
	}
	return out
}

// HammingWeight counts the non-zero entries of v after reduction mod p.
func (v Vector) HammingWeight(p int64) int {
	w := 0
	for _, x := range v {
		if Mod(x, p) != 0 {
			w++
		}
	}
	return w
}

// Column extracts column j of m as a Vector.
func (m Matrix) Column(j int) Vector {
	out := make(Vector, len(m))
	for i, row := range m {
		out[i] = row[j]
	}
	return out
}

// SetColumn overwrites column j of m from col.
func (m Matrix) SetColumn(j int, col Vector) {
	for i := range m {
		m[i][j] = col[i]
	}
}

// MulVec computes m @ v mod p, i.e. a length-rows(m) vector.
func (m Matrix) MulVec(v Vector, p int64) Vector {
	out := make(Vector, len(m))
	for i, row := range m {
		var acc int64
		for j, a := range row {
			acc += a * v[j]
		}
		out[i] = Mod(acc, p)
	}
	return out
}

// MulVecTranspose computes transpose(m) @ v mod p, i.e. a length-cols(m) vector.
func (m Matrix) MulVecTranspose(v Vector, p int64) Vector {
	cols := m.Cols()
	out := make(Vector, cols)
	for j := 0; j < cols; j++ {
		var acc int64
		for i, row := range m {
			acc += row[j] * v[i]
		}
		out[j] = Mod(acc, p)
	}
	return out
}

// IsZero reports whether every entry of v reduces to 0 mod p.
func (v Vector) IsZero(p int64) bool {
	for _, x := range v {
		if Mod(x, p) != 0 {
			return false
		}
	}
	return true
}
