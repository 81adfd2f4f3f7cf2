// SPDX-License-Identifier: MIT
// Package sparse: closed-form determinant and inverse.
// Only the 1×1, 2×2 and 3×3 cases are implemented, as explicit cofactor
// expansions; anything larger reports ErrUnsupportedSize. The square check
// runs first, so a non-square matrix of any size reports ErrNotSquare.

package sparse

import "math"

// det computes the determinant of a validated square matrix via cofactor
// expansion along the first row. Assumes m is non-nil and square.
func det(m *Matrix) (float64, error) {
	switch m.r {
	case 1:
		return m.lookup(0, 0), nil
	case 2:
		return m.lookup(0, 0)*m.lookup(1, 1) - m.lookup(0, 1)*m.lookup(1, 0), nil
	case 3:
		a, b, c := m.lookup(0, 0), m.lookup(0, 1), m.lookup(0, 2)
		d, e, f := m.lookup(1, 0), m.lookup(1, 1), m.lookup(1, 2)
		g, h, i := m.lookup(2, 0), m.lookup(2, 1), m.lookup(2, 2)

		return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g), nil
	default:
		return 0, ErrUnsupportedSize
	}
}

// Det returns the determinant of m.
// Errors: ErrNilMatrix, ErrNotSquare, ErrUnsupportedSize (square size > 3).
// Complexity: O(log) lookups over at most 9 positions.
func Det(m *Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, opErrorf(opDet, err)
	}

	v, err := det(m)
	if err != nil {
		return 0, opErrorf(opDet, err)
	}

	return v, nil
}

// Inverse returns m⁻¹ via the adjugate over the determinant: the reciprocal
// for 1×1 and the explicit cofactor/adjugate formulas for 2×2 and 3×3.
// Result entries below ZeroTolerance are dropped by Set as usual.
// Errors: ErrNilMatrix, ErrNotSquare, ErrUnsupportedSize,
// ErrSingular (|det| < ZeroTolerance).
// Complexity: constant work over at most 9 positions.
func Inverse(m *Matrix) (*Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, opErrorf(opInverse, err)
	}

	dv, err := det(m)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}
	if math.Abs(dv) < ZeroTolerance {
		return nil, opErrorf(opInverse, ErrSingular)
	}

	res, err := New(m.r, m.c)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}

	switch m.r {
	case 1:
		_ = res.Set(0, 0, 1/m.lookup(0, 0))
	case 2:
		_ = res.Set(0, 0, m.lookup(1, 1)/dv)
		_ = res.Set(0, 1, -m.lookup(0, 1)/dv)
		_ = res.Set(1, 0, -m.lookup(1, 0)/dv)
		_ = res.Set(1, 1, m.lookup(0, 0)/dv)
	case 3:
		a, b, c := m.lookup(0, 0), m.lookup(0, 1), m.lookup(0, 2)
		d, e, f := m.lookup(1, 0), m.lookup(1, 1), m.lookup(1, 2)
		g, h, i := m.lookup(2, 0), m.lookup(2, 1), m.lookup(2, 2)

		// Cofactor matrix, expanded explicitly.
		cA := e*i - f*h
		cB := -(d*i - f*g)
		cC := d*h - e*g
		cD := -(b*i - c*h)
		cE := a*i - c*g
		cF := -(a*h - b*g)
		cG := b*f - c*e
		cH := -(a*f - c*d)
		cI := a*e - b*d

		// Adjugate = transposed cofactors, each divided by the determinant.
		_ = res.Set(0, 0, cA/dv)
		_ = res.Set(0, 1, cD/dv)
		_ = res.Set(0, 2, cG/dv)
		_ = res.Set(1, 0, cB/dv)
		_ = res.Set(1, 1, cE/dv)
		_ = res.Set(1, 2, cH/dv)
		_ = res.Set(2, 0, cC/dv)
		_ = res.Set(2, 1, cF/dv)
		_ = res.Set(2, 2, cI/dv)
	}

	return res, nil
}
