// Package sparse implements an ordered sparse-matrix container for
// double-precision values and the linear-algebra operations built on it.
//
// The sparse package provides:
//
//   - Matrix, a two-level ordered structure mapping (row, col) → value with
//     dimensions fixed at construction. Rows are kept strictly ascending by
//     index; within a row, columns are kept strictly ascending. Only entries
//     with |v| ≥ ZeroTolerance are stored, and a row is retained only while
//     it holds at least one entry.
//   - Operation kernels: Add, Sub, Scale, ScaleDiv, Mul, Transpose, plus
//     closed-form Det and Inverse for sizes 1×1 through 3×3.
//   - Row-major enumeration (Each, Entries) and textual views (DenseString,
//     SparseString).
//
// Every operation validates its preconditions before touching any state and
// returns a package sentinel matched via errors.Is; operands are never
// mutated, results are always freshly allocated. The container is
// single-threaded by design: publish a Matrix as an immutable value, or
// guard it externally, if it must cross goroutines.
package sparse
