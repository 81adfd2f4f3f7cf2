// SPDX-License-Identifier: MIT
// Package sparse: arithmetic operation kernels.
// All kernels perform strict fail-fast validation, never mutate their
// operands, and build a freshly allocated result through Set — the single
// write path — so the tolerance and ordering invariants hold for every
// output. Entries whose computed value rounds below ZeroTolerance are
// dropped by construction; this matters for chained operations and is
// asserted in tests.

package sparse

import "math"

// addSub builds out = a + sign*b for sign ∈ {+1, -1}. Shared implementation
// for Add/Sub: copy the left operand's entries, then fold the right
// operand's entries through Set so cancellation to zero removes entries.
//
// Complexity: proportional to nnz(a) + nnz(b) (with the usual logarithmic
// positioning factors), never to r*c.
func addSub(a, b *Matrix, sign float64, tag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}

	res, err := New(a.r, a.c)
	if err != nil {
		return nil, opErrorf(tag, err)
	}

	// Seed with the left operand. Set cannot fail after shape validation.
	a.Each(func(r, c int, v float64) bool {
		_ = res.Set(r, c, v)
		return true
	})

	// Fold in the right operand entry-wise; sums within tolerance of zero
	// are removed by Set, keeping the result sparse.
	b.Each(func(r, c int, v float64) bool {
		cur := res.lookup(r, c)
		_ = res.Set(r, c, cur+sign*v)
		return true
	})

	return res, nil
}

// Add returns the element-wise sum a + b as a fresh Matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(a) + nnz(b)) entry visits.
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns the element-wise difference a - b as a fresh Matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(a) + nnz(b)) entry visits.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Scale returns k*m as a fresh Matrix. A factor within ZeroTolerance of zero
// yields an empty matrix of the same shape. Products that round below the
// tolerance are dropped — deliberately, so chained results never carry
// near-zero noise.
// Errors: ErrNilMatrix.
// Complexity: O(nnz(m)).
func Scale(m *Matrix, k float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}

	res, err := New(m.r, m.c)
	if err != nil {
		return nil, opErrorf(opScale, err)
	}
	if math.Abs(k) < ZeroTolerance {
		return res, nil // zero factor annihilates every entry
	}

	m.Each(func(r, c int, v float64) bool {
		_ = res.Set(r, c, v*k) // Set drops sub-tolerance products
		return true
	})

	return res, nil
}

// ScaleDiv returns m/k by delegating to Scale(m, 1/k).
// Errors: ErrNilMatrix, ErrDivisionByZero.
// Complexity: O(nnz(m)).
func ScaleDiv(m *Matrix, k float64) (*Matrix, error) {
	if err := ValidateScalarDivisor(k); err != nil {
		return nil, opErrorf(opScaleDiv, err)
	}

	res, err := Scale(m, 1/k)
	if err != nil {
		return nil, opErrorf(opScaleDiv, err)
	}

	return res, nil
}

// Mul returns the matrix product a × b with shape a.Rows × b.Cols.
// Only populated rows of a are visited; for each, every output column is
// accumulated over the row's non-zero cells against b. Sums below the
// tolerance are not stored.
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner dimension).
// Complexity: O(nnz(a-row) × b.Cols) per populated row — deliberately
// right-operand-dense in the column scan, acceptable for the target sizes.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	res, err := New(a.r, b.c)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	var sum, bv float64
	for i := range a.rows {
		for j := 0; j < b.c; j++ {
			sum = 0
			for _, cl := range a.rows[i].cells {
				bv = b.lookup(cl.col, j)
				if bv != 0 { // skip absent entries
					sum += cl.val * bv
				}
			}
			if math.Abs(sum) >= ZeroTolerance {
				_ = res.Set(a.rows[i].index, j, sum)
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ: every entry (r, c, v) becomes (c, r, v) and the
// dimensions swap. Values are unchanged, so no tolerance filtering occurs.
// Errors: ErrNilMatrix.
// Complexity: O(nnz(m)) entry visits (each re-inserted at its sorted position).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	res, err := New(m.c, m.r)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	m.Each(func(r, c int, v float64) bool {
		_ = res.Set(c, r, v)
		return true
	})

	return res, nil
}
