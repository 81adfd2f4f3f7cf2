// SPDX-License-Identifier: MIT
// Package sparse — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing aliases over the canonical kernels.
//   - No logic duplication: each facade delegates 1:1 and preserves the
//     validation, determinism and numeric policy of the underlying kernel.

package sparse

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m *Matrix) (*Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: k*m.
func ScaleBy(m *Matrix, k float64) (*Matrix, error) { return Scale(m, k) }

// ZerosLike returns a new empty matrix with the same shape as m.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return New(m.r, m.c)
}

// NewIdentity returns I_n: ones on the diagonal, zeros elsewhere.
// Complexity: O(n) writes.
func NewIdentity(n int) (*Matrix, error) {
	id, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = id.Set(i, i, 1.0) // bounds hold by construction
	}

	return id, nil
}
