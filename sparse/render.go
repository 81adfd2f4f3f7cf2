// Package sparse: textual views.
// These are the calculator's two display formats: the dense grid with
// implicit zeros, and the sparse triple listing. Neither format is part of
// the container's contract — callers needing a different layout should walk
// Each themselves.
package sparse

import (
	"fmt"
	"strings"
)

// DenseString renders the full r×c grid, values fixed to 2 decimal places
// and space-padded to width 8, one trailing space per cell. An entirely
// zero matrix renders as a single "Empty matrix (all zeros)" line.
// Complexity: O(r*c) lookups.
func DenseString(m *Matrix) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix %dx%d:\n", m.r, m.c)

	if len(m.rows) == 0 {
		b.WriteString("Empty matrix (all zeros)\n")
		return b.String()
	}

	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%8.2f ", m.lookup(i, j))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// SparseString renders only the stored entries as tab-separated
// (row, column, value) lines in traversal order, followed by the total
// count.
// Complexity: O(nnz).
func SparseString(m *Matrix) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sparse representation of %dx%d matrix:\n", m.r, m.c)
	b.WriteString("Row\tColumn\tValue\n")

	count := 0
	m.Each(func(r, c int, v float64) bool {
		fmt.Fprintf(&b, "%d\t%d\t%.2f\n", r, c, v)
		count++
		return true
	})
	fmt.Fprintf(&b, "Total non-zero elements: %d\n", count)

	return b.String()
}
