// Package tensor implements the tensor-code decoder (spec component C7):
// an n_A x n_B local view is decoded by alternately correcting its columns
// against C_A and its rows against C_B, converging to a fixed point or
// detecting oscillation via content-hashed history.
//
// Grounded on tensor_decoders/tensor_decoder.py, with the REDESIGN FLAG fix
// applied: the inner loop indexes the decoded column by the row index i,
// not the column-loop variable j.
package tensor

import (
	"hash/fnv"

	"github.com/latticecodes/c3ltc/field"
	"github.com/latticecodes/c3ltc/internal/xlog"
	"github.com/latticecodes/c3ltc/smallcode"
)

// IsInTensorCode reports whether every column of m is in C_A and every row
// is in C_B, i.e. m already belongs to C_A (x) C_B.
func IsInTensorCode(m field.Matrix, codeA, codeB smallcode.Code, p int64) bool {
	hA, hB := codeA.Parity(), codeB.Parity()
	for j := 0; j < m.Cols(); j++ {
		if !hA.MulVec(m.Column(j), p).IsZero(p) {
			return false
		}
	}
	for i := 0; i < m.Rows(); i++ {
		if !hB.MulVec(m[i], p).IsZero(p) {
			return false
		}
	}
	return true
}

// Decode runs the Gallager-style alternating decoder of spec.md §4.7 and
// returns the resulting matrix mod p. It never returns an error: local
// decoder failures simply leave that row/column unchanged, per spec.md
// §7's propagation policy ("no exceptions escape decoders").
func Decode(m field.Matrix, codeA, codeB smallcode.Code, p int64) field.Matrix {
	defer xlog.Stage("tensor.Decode")()

	if IsInTensorCode(m, codeA, codeB, p) {
		return m.Clone().ModAll(p)
	}

	work := m.Clone()
	nA, nB := work.Rows(), work.Cols()

	// Initial row pass: decode_B on every row, leaving failures unchanged.
	for i := 0; i < nA; i++ {
		if corrected, err := codeB.Decode(work[i]); err == nil {
			work[i] = corrected
		}
	}

	suspectRows := make(map[int]bool)
	suspectCols := make(map[int]bool)
	for j := 0; j < nB; j++ {
		suspectCols[j] = true
	}

	seen := make(map[uint64]bool)
	seen[contentHash(work)] = true

	iter := 0
	for (len(suspectRows) > 0 || len(suspectCols) > 0) {
		iter++
		xlog.Iteration("tensor", iter, len(suspectRows)+len(suspectCols))

		newSuspectRows := make(map[int]bool)
		newSuspectCols := make(map[int]bool)

		for j := range suspectCols {
			col := work.Column(j)
			corrected, err := codeA.Decode(col)
			if err != nil {
				continue
			}
			for i := 0; i < nA; i++ {
				if corrected[i] != work[i][j] {
					newSuspectRows[i] = true
				}
				work[i][j] = corrected[i]
			}
		}

		for i := range suspectRows {
			corrected, err := codeB.Decode(work[i])
			if err != nil {
				continue
			}
			for j := 0; j < nB; j++ {
				if corrected[j] != work[i][j] {
					newSuspectCols[j] = true
				}
			}
			work[i] = corrected
		}

		h := contentHash(work)
		if seen[h] {
			break
		}
		seen[h] = true
		suspectRows, suspectCols = newSuspectRows, newSuspectCols
	}

	return work.ModAll(p)
}

func contentHash(m field.Matrix) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	for _, row := range m {
		for _, v := range row {
			for k := 0; k < 8; k++ {
				buf[k] = byte(v >> (8 * k))
			}
			_, _ = h.Write(buf)
		}
	}
	return h.Sum64()
}
