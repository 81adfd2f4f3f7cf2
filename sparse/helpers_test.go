// SPDX-License-Identifier: MIT
// Package sparse_test contains shared test fixtures and helpers.
//
// Purpose:
//   - Small, deterministic builders for matrices under test.
//   - Exact-comparison helpers that report the mismatch location.

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
)

// mustNew allocates an r×c matrix or fails the test.
func mustNew(t *testing.T, r, c int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(r, c)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// fromDense builds a matrix from a 2D literal; zero cells stay unstored.
func fromDense(t *testing.T, vals [][]float64) *sparse.Matrix {
	t.Helper()
	m := mustNew(t, len(vals), len(vals[0]))
	for i := range vals {
		if len(vals[i]) != len(vals[0]) {
			t.Fatalf("fromDense: ragged row %d", i)
		}
		for j, v := range vals[i] {
			if err := m.Set(i, j, v); err != nil {
				t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
			}
		}
	}

	return m
}

// mustAt reads m[i,j] or fails the test.
func mustAt(t *testing.T, m *sparse.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// compareExact asserts strict equality between a 2D literal and the matrix,
// including implicit zeros. Use only for integer-like fixtures.
func compareExact(t *testing.T, want [][]float64, m *sparse.Matrix) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("Rows = %d; want %d", m.Rows(), len(want))
	}
	for i := range want {
		if len(want[i]) != m.Cols() {
			t.Fatalf("Cols = %d; want %d", m.Cols(), len(want[i]))
		}
		for j := range want[i] {
			if v := mustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// entryEqual asserts that two matrices have identical shapes and identical
// stored-entry sequences (same order, positions, values).
func entryEqual(t *testing.T, a, b *sparse.Matrix) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	ae, be := a.Entries(), b.Entries()
	if len(ae) != len(be) {
		t.Fatalf("nnz %d vs %d", len(ae), len(be))
	}
	for k := range ae {
		if ae[k] != be[k] {
			t.Fatalf("entry %d: %+v vs %+v", k, ae[k], be[k])
		}
	}
}

// ---------- bench helpers ----------

// benchFill populates d with a deterministic diagonal-band pattern at
// roughly one stored entry per stride cells.
func benchFill(b *testing.B, m *sparse.Matrix, stride int) {
	b.Helper()
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := i % stride; j < cols; j += stride {
			if err := m.Set(i, j, float64(i*cols+j+1)); err != nil {
				b.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}
