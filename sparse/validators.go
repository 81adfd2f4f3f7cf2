// SPDX-License-Identifier: MIT
// Package sparse: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for nil/shape/scalar preconditions.
//   - Keep kernels minimal by delegating guard logic here.
//   - Return plain sentinels (no wrapping) so call sites can wrap uniformly
//     with their operation tag.
//
// All checks are pure, deterministic and allocate nothing.

package sparse

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil (caller must ensure).
// Returns ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil.
// Returns ErrNotSquare. Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m.r != m.c {
		return ErrNotSquare
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
// Errors: ErrNilMatrix, ErrNotSquare. Complexity: O(1).
func ValidateSquareNonNil(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateScalarDivisor rejects divisors within ZeroTolerance of zero.
// Returns ErrDivisionByZero. Complexity: O(1).
func ValidateScalarDivisor(k float64) error {
	if math.Abs(k) < ZeroTolerance {
		return ErrDivisionByZero
	}

	return nil
}
