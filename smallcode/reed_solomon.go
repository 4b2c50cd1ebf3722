package smallcode

import (
	"fmt"

	"github.com/latticecodes/c3ltc/field"
)

// NewReedSolomon builds the (n, k) Reed–Solomon code over F_p using the
// evaluation points 0, 1, ..., n-1 mod p. The generator is the Vandermonde
// matrix G[i][j] = eval[j]^i mod p; the parity matrix is its nullspace.
// The nominal distance n-k+1 only holds as a true MDS bound when n <= p
// (distinct evaluation points); the caller is responsible for that choice,
// matching local_codes/rs_code.py's ReedSolomonCode.get_rs_code, which
// makes the same assumption without enforcing it.
func NewReedSolomon(n, k int, p int64) (*LinearCode, error) {
	if k <= 0 || k > n {
		return nil, fmt.Errorf("smallcode: reed-solomon n=%d k=%d: %w", n, k, ErrInvalidParameters)
	}

	g := field.NewMatrix(k, n)
	for j := 0; j < n; j++ {
		point := int64(j)
		power := int64(1)
		for i := 0; i < k; i++ {
			g[i][j] = field.Mod(power, p)
			power = field.Mod(power*point, p)
		}
	}

	h := field.NullSpace(g, p)
	distance := n - k + 1
	code := New(g, h, p, distance)
	code.BuildSyndromeTable()
	return code, nil
}
