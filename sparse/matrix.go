// Package sparse: the Matrix container and its single mutation primitive.
// Matrix re-expresses the classic linked-list-of-linked-lists sparse layout
// as two nested ordered slices, looked up with binary search; ordering and
// tolerance invariants are enforced by Set alone, so every other operation
// can rely on them.
package sparse

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Matrix is an ordered sparse container of float64 values with fixed bounds.
// r is the row count, c the column count; rows holds only populated rows,
// strictly ascending by index, each with its cells strictly ascending by
// column. The zero value is not usable; construct via New.
type Matrix struct {
	r, c int
	rows []row
}

// New creates an r×c Matrix that is logically the zero matrix.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Finalize): return the empty container or ErrInvalidDimensions.
// Complexity: O(1); storage grows with the number of non-zero entries only.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{r: rows, c: cols}, nil
}

// Rows returns the fixed number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the fixed number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// checkIndex validates 0 ≤ row < r and 0 ≤ col < c, returning a wrapped
// ErrIndexOutOfBounds naming the method and offending coordinates.
// Complexity: O(1).
func (m *Matrix) checkIndex(method string, rowIdx, colIdx int) error {
	if rowIdx < 0 || rowIdx >= m.r || colIdx < 0 || colIdx >= m.c {
		return fmt.Errorf("Matrix.%s(%d,%d): %w", method, rowIdx, colIdx, ErrIndexOutOfBounds)
	}

	return nil
}

// findRow returns the position of rowIdx in m.rows and whether it is present.
// The position is the sorted insertion point when absent.
// Complexity: O(log rows_used).
func (m *Matrix) findRow(rowIdx int) (int, bool) {
	i := sort.Search(len(m.rows), func(k int) bool { return m.rows[k].index >= rowIdx })

	return i, i < len(m.rows) && m.rows[i].index == rowIdx
}

// findCell returns the position of colIdx in cells and whether it is present.
// Complexity: O(log cols_used_in_row).
func findCell(cells []cell, colIdx int) (int, bool) {
	i := sort.Search(len(cells), func(k int) bool { return cells[k].col >= colIdx })

	return i, i < len(cells) && cells[i].col == colIdx
}

// Set writes v at (row, col), enforcing the storage invariants.
// Stage 1 (Validate): bounds check; fail before any state change.
// Stage 2 (Execute): |v| < ZeroTolerance removes any existing entry (and the
// row, if that was its last cell); otherwise insert-or-overwrite at the
// sorted position, creating the row entry when needed.
// Errors: ErrIndexOutOfBounds.
// Complexity: O(log) search + O(n) slice shift within the affected level.
func (m *Matrix) Set(rowIdx, colIdx int, v float64) error {
	if err := m.checkIndex("Set", rowIdx, colIdx); err != nil {
		return err
	}

	// Below tolerance: a write of zero is a removal.
	if math.Abs(v) < ZeroTolerance {
		m.remove(rowIdx, colIdx)
		return nil
	}

	ri, ok := m.findRow(rowIdx)
	if !ok {
		// Create the row at its sorted position with a single cell.
		m.rows = append(m.rows, row{})
		copy(m.rows[ri+1:], m.rows[ri:])
		m.rows[ri] = row{index: rowIdx, cells: []cell{{col: colIdx, val: v}}}
		return nil
	}

	cells := m.rows[ri].cells
	ci, ok := findCell(cells, colIdx)
	if ok {
		cells[ci].val = v // overwrite in place
		return nil
	}

	// Insert the new cell at its sorted position.
	cells = append(cells, cell{})
	copy(cells[ci+1:], cells[ci:])
	cells[ci] = cell{col: colIdx, val: v}
	m.rows[ri].cells = cells

	return nil
}

// remove deletes the entry at (rowIdx, colIdx) if present; when the deletion
// empties the row, the row entry itself is removed.
func (m *Matrix) remove(rowIdx, colIdx int) {
	ri, ok := m.findRow(rowIdx)
	if !ok {
		return
	}
	cells := m.rows[ri].cells
	ci, ok := findCell(cells, colIdx)
	if !ok {
		return
	}

	cells = append(cells[:ci], cells[ci+1:]...)
	if len(cells) == 0 {
		m.rows = append(m.rows[:ri], m.rows[ri+1:]...)
		return
	}
	m.rows[ri].cells = cells
}

// At retrieves the value at (row, col), returning 0.0 for an absent entry.
// Pure: no mutation, no allocation.
// Errors: ErrIndexOutOfBounds.
// Complexity: O(log rows_used + log cols_used_in_row).
func (m *Matrix) At(rowIdx, colIdx int) (float64, error) {
	if err := m.checkIndex("At", rowIdx, colIdx); err != nil {
		return 0, err
	}

	return m.lookup(rowIdx, colIdx), nil
}

// lookup is the unchecked read path shared by At and the closed-form
// kernels; callers guarantee in-bounds coordinates.
func (m *Matrix) lookup(rowIdx, colIdx int) float64 {
	ri, ok := m.findRow(rowIdx)
	if !ok {
		return 0
	}
	ci, ok := findCell(m.rows[ri].cells, colIdx)
	if !ok {
		return 0
	}

	return m.rows[ri].cells[ci].val
}

// NonZeroCount returns the total number of stored entries.
// Complexity: O(rows_used).
func (m *Matrix) NonZeroCount() int {
	n := 0
	for i := range m.rows {
		n += len(m.rows[i].cells)
	}

	return n
}

// Each visits every stored entry in row-major, column-ascending order,
// stopping early when fn returns false. The traversal is read-only and
// restartable: each call walks the current contents afresh. fn must not
// mutate m.
// Complexity: O(nnz).
func (m *Matrix) Each(fn func(row, col int, v float64) bool) {
	for i := range m.rows {
		for j := range m.rows[i].cells {
			if !fn(m.rows[i].index, m.rows[i].cells[j].col, m.rows[i].cells[j].val) {
				return
			}
		}
	}
}

// Entries returns a snapshot of all stored entries in traversal order.
// Complexity: O(nnz) time and space.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, m.NonZeroCount())
	m.Each(func(r, c int, v float64) bool {
		out = append(out, Entry{Row: r, Col: c, Val: v})
		return true
	})

	return out
}

// Clone returns a deep copy; the result shares no storage with m.
// Complexity: O(rows_used + nnz).
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{r: m.r, c: m.c}
	if len(m.rows) == 0 {
		return cp
	}
	cp.rows = make([]row, len(m.rows))
	for i := range m.rows {
		cells := make([]cell, len(m.rows[i].cells))
		copy(cells, m.rows[i].cells)
		cp.rows[i] = row{index: m.rows[i].index, cells: cells}
	}

	return cp
}

// String implements fmt.Stringer for debugging: one bracketed line per row,
// implicit zeros included.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.lookup(i, j))
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
