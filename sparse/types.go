// SPDX-License-Identifier: MIT

// Package sparse: domain types and shared constants.
// This file intentionally contains ONLY domain-facing types and the numeric
// policy constant; errors live in errors.go, validators in validators.go per
// the package conventions.
package sparse

import "fmt"

// ZeroTolerance is the fixed threshold below which a magnitude is treated as
// exactly zero: such values are never stored, and writing one removes any
// existing entry at that position.
const ZeroTolerance = 1e-10

// Entry is one stored non-zero element, as yielded by Entries/Each in
// row-major, column-ascending order. Val always satisfies |Val| ≥ ZeroTolerance.
type Entry struct {
	Row int
	Col int
	Val float64
}

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opScaleDiv  = "ScaleDiv"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opDet       = "Det"
	opInverse   = "Inverse"
)

// opErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is/As. Call only with err != nil.
// Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cell is one stored value inside a row; cells are kept strictly ascending
// by col, and |val| ≥ ZeroTolerance always holds for a stored cell.
type cell struct {
	col int
	val float64
}

// row owns the ordered cells of one populated matrix row. A row exists in
// Matrix.rows only while len(cells) > 0; rows are kept strictly ascending
// by index.
type row struct {
	index int
	cells []cell
}
