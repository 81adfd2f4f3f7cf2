// Package sparse_test contains unit tests for the Matrix container:
// construction, the Set/At primitives, and the storage invariants
// (tolerance drop, ordered traversal, empty-row cleanup).
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

// TestNewInvalidDimensions ensures New rejects non-positive dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := sparse.New(0, 5) // zero rows
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)

	_, err = sparse.New(5, -1) // negative columns
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}

// TestRowsCols verifies the fixed dimensions and the empty starting state.
func TestRowsCols(t *testing.T) {
	m := mustNew(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 0, m.NonZeroCount()) // logically the zero matrix
}

// TestAtSetOutOfBounds ensures At and Set fail with ErrIndexOutOfBounds on
// invalid coordinates, including a zero-valued Set (bounds are validated
// before any effect).
func TestAtSetOutOfBounds(t *testing.T) {
	m := mustNew(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfBounds)

	require.ErrorIs(t, m.Set(2, 0, 1.23), sparse.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 4.56), sparse.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(5, 5, 0.0), sparse.ErrIndexOutOfBounds) // zero write too
}

// TestSetGet validates Set followed by At, absent-entry reads, and overwrite.
func TestSetGet(t *testing.T) {
	m := mustNew(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, mustAt(t, m, 1, 2))
	require.Equal(t, 0.0, mustAt(t, m, 0, 0)) // absent reads as zero

	require.NoError(t, m.Set(1, 2, -1.5)) // overwrite in place
	require.Equal(t, -1.5, mustAt(t, m, 1, 2))
	require.Equal(t, 1, m.NonZeroCount())
}

// TestZeroWriteDeletes covers the removal path: writing a value within
// tolerance deletes the entry, and deleting a row's last entry removes the
// row. A zero write at an absent position is a no-op.
func TestZeroWriteDeletes(t *testing.T) {
	m := mustNew(t, 3, 3)
	require.NoError(t, m.Set(1, 1, 5.0))
	require.NoError(t, m.Set(1, 2, 6.0))
	require.Equal(t, 2, m.NonZeroCount())

	require.NoError(t, m.Set(1, 1, 0.0))
	require.Equal(t, 0.0, mustAt(t, m, 1, 1))
	require.Equal(t, 1, m.NonZeroCount())

	require.NoError(t, m.Set(1, 2, 0.0)) // empties row 1 entirely
	require.Equal(t, 0, m.NonZeroCount())
	require.Empty(t, m.Entries())

	require.NoError(t, m.Set(0, 0, 0.0)) // absent position: no-op
	require.Equal(t, 0, m.NonZeroCount())
}

// TestSubToleranceWriteIgnored ensures values below ZeroTolerance are never
// stored, on both the insert and the overwrite path.
func TestSubToleranceWriteIgnored(t *testing.T) {
	m := mustNew(t, 2, 2)

	require.NoError(t, m.Set(0, 0, 1e-11)) // below 1e-10
	require.Equal(t, 0, m.NonZeroCount())

	require.NoError(t, m.Set(0, 0, 1.0))
	require.NoError(t, m.Set(0, 0, -5e-11)) // overwrite with near-zero removes
	require.Equal(t, 0, m.NonZeroCount())
}

// TestOrderedTraversal inserts out of order and expects row-major,
// column-ascending enumeration (concrete scenario: (0,0,1),(0,2,3),(2,1,7)).
func TestOrderedTraversal(t *testing.T) {
	m := mustNew(t, 3, 3)
	require.NoError(t, m.Set(2, 1, 7))
	require.NoError(t, m.Set(0, 2, 3))
	require.NoError(t, m.Set(0, 0, 1))

	want := []sparse.Entry{
		{Row: 0, Col: 0, Val: 1},
		{Row: 0, Col: 2, Val: 3},
		{Row: 2, Col: 1, Val: 7},
	}
	require.Equal(t, want, m.Entries())
	require.Equal(t, 3, m.NonZeroCount())
}

// TestRoundTripSparsity checks nonZeroCount == len(entries) and the stored
// magnitude floor after a mixed insert/overwrite/delete sequence.
func TestRoundTripSparsity(t *testing.T) {
	m := mustNew(t, 4, 4)
	require.NoError(t, m.Set(3, 3, 4.0))
	require.NoError(t, m.Set(0, 1, -2.0))
	require.NoError(t, m.Set(2, 0, 0.5))
	require.NoError(t, m.Set(0, 1, 0.0)) // delete
	require.NoError(t, m.Set(2, 2, 9.0))

	entries := m.Entries()
	require.Len(t, entries, m.NonZeroCount())
	for _, e := range entries {
		if e.Val < 0 {
			require.GreaterOrEqual(t, -e.Val, sparse.ZeroTolerance)
		} else {
			require.GreaterOrEqual(t, e.Val, sparse.ZeroTolerance)
		}
	}
}

// TestEachEarlyStopAndRestart verifies the visitor stops when fn returns
// false and that a fresh call restarts from the beginning.
func TestEachEarlyStopAndRestart(t *testing.T) {
	m := fromDense(t, [][]float64{{1, 0}, {0, 2}})

	var first []sparse.Entry
	m.Each(func(r, c int, v float64) bool {
		first = append(first, sparse.Entry{Row: r, Col: c, Val: v})
		return false // stop after the first entry
	})
	require.Equal(t, []sparse.Entry{{Row: 0, Col: 0, Val: 1}}, first)

	var all []sparse.Entry
	m.Each(func(r, c int, v float64) bool {
		all = append(all, sparse.Entry{Row: r, Col: c, Val: v})
		return true
	})
	require.Len(t, all, 2) // restartable: full traversal again
}

// TestCloneIndependence ensures Clone is a deep copy sharing no storage.
func TestCloneIndependence(t *testing.T) {
	m := fromDense(t, [][]float64{{1, 0}, {0, 2}})

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 3.0))
	require.NoError(t, cp.Set(1, 0, 4.0))

	require.Equal(t, 1.0, mustAt(t, m, 0, 0)) // original untouched
	require.Equal(t, 0.0, mustAt(t, m, 1, 0))
	require.Equal(t, 3.0, mustAt(t, cp, 0, 0))
}

// TestStringOutput checks the debugging Stringer format.
func TestStringOutput(t *testing.T) {
	m := fromDense(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
