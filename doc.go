// Package sparsemat is an in-memory sparse-matrix toolkit for float64
// values: only non-zero entries are stored, ordered by row and column,
// with the standard linear-algebra operations on top.
//
// What is sparsemat?
//
//	A small, deterministic library built around one container:
//		• sparse.Matrix — ordered (row, col) → value storage with fixed bounds
//		• Arithmetic: Add, Sub, Scale, ScaleDiv, Mul, Transpose
//		• Closed-form Det and Inverse for 1×1 through 3×3
//		• Enumeration of non-zero entries in row-major order
//		• Dense and sparse textual views
//
// Why choose sparsemat?
//
//   - Predictable storage invariants — entries below the 1e-10 tolerance are
//     never retained, empty rows are removed immediately
//   - Fail-fast error contract — sentinel errors, no partial mutation
//   - Pure Go core — no cgo, nothing global, single-threaded by design
//
// Everything lives under two packages:
//
//	sparse/       — the container and its operation kernels
//	internal/cli/ — the interactive calculator shell (cmd/sparsemat)
//
// Dive into sparse/doc.go for the storage model and the error taxonomy.
//
//	go get github.com/katalvlaran/sparsemat/sparse
package sparsemat
