// Package sparse_test contains golden tests for the two textual views.
// The fixtures live in testdata/golden; refresh with `go test -update`.
package sparse_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// scenarioMatrix builds the 3×3 fixture with entries (0,0)=1, (0,2)=3,
// (2,1)=7 used across the view tests.
func scenarioMatrix(t *testing.T) *sparse.Matrix {
	t.Helper()
	m := mustNew(t, 3, 3)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 2, 3))
	require.NoError(t, m.Set(2, 1, 7))

	return m
}

func TestDenseStringGolden(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "dense_3x3", []byte(sparse.DenseString(scenarioMatrix(t))))
}

func TestDenseStringEmptyGolden(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "dense_empty_2x2", []byte(sparse.DenseString(mustNew(t, 2, 2))))
}

func TestSparseStringGolden(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "sparse_3x3", []byte(sparse.SparseString(scenarioMatrix(t))))
}

// TestSparseStringEmpty: the sparse view of an empty matrix keeps the header
// and reports a zero total. Inline because the property under test is the
// count line, not the layout.
func TestSparseStringEmpty(t *testing.T) {
	out := sparse.SparseString(mustNew(t, 2, 2))
	require.Contains(t, out, "Sparse representation of 2x2 matrix:")
	require.Contains(t, out, "Total non-zero elements: 0\n")
}
