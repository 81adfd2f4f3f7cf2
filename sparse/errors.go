// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sparse
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package sparse

import "errors"

// Every message is prefixed with "sparse: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap sentinels with an operation tag via
// fmt.Errorf("op: %w", ErrX); callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates a non-positive row or column count at
	// construction. New must validate before allocation.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, count)
	// on At/Set. Public indexers return this, never panic.
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g.
	// Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrDivisionByZero indicates a scalar divisor within ZeroTolerance of 0.
	ErrDivisionByZero = errors.New("sparse: scalar divisor is zero within tolerance")

	// ErrNotSquare signals that Det/Inverse was requested on a non-square matrix.
	ErrNotSquare = errors.New("sparse: matrix is not square")

	// ErrUnsupportedSize signals that Det/Inverse was requested for a square
	// size above 3; only the closed-form 1×1–3×3 cases are implemented.
	ErrUnsupportedSize = errors.New("sparse: determinant and inverse are limited to 3x3")

	// ErrSingular is returned when Inverse is requested while the determinant
	// is within ZeroTolerance of zero.
	ErrSingular = errors.New("sparse: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix operand was passed to a kernel.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
