// SPDX-License-Identifier: MIT
// Package cli: scripted verification scenarios.
//
// runSelfTest replays eight fixed calculator scenarios, printing each
// result and checking it against the expected values. The same routine
// backs both the `selftest` subcommand (failure means a non-zero exit)
// and menu option 12 (failure is reported but the session continues).
package cli

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat/sparse"
)

// errSelfTestFailed marks a completed run with at least one failed check.
var errSelfTestFailed = errors.New("self-test failed")

func newSelfTestCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the scripted verification scenarios",
		Long: `Replays the fixed calculator scenarios (addition, subtraction, scalar
multiplication, matrix multiplication, transpose, determinant, inverse and
the sparse view) and verifies every result. Exits non-zero on any mismatch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Debug("running self-test scenarios")
			return runSelfTest(cmd.OutOrStdout())
		},
	}
}

// checker accumulates pass/fail state while scenarios print their output.
type checker struct {
	out    io.Writer
	failed int
}

func (c *checker) expectMatrix(label string, m *sparse.Matrix, want [][]float64) {
	for i := range want {
		for j := range want[i] {
			got, err := m.At(i, j)
			if err != nil || math.Abs(got-want[i][j]) > 1e-9 {
				c.fail("%s: [%d,%d] = %v, want %v", label, i, j, got, want[i][j])
				return
			}
		}
	}
}

func (c *checker) expectFloat(label string, got, want float64) {
	if math.Abs(got-want) > 1e-9 {
		c.fail("%s: got %v, want %v", label, got, want)
	}
}

func (c *checker) expectNoError(label string, err error) bool {
	if err != nil {
		c.fail("%s: %v", label, err)
		return false
	}

	return true
}

func (c *checker) fail(format string, args ...any) {
	c.failed++
	fmt.Fprintf(c.out, "FAIL: "+format+"\n", args...)
}

// mustFixture builds a matrix from a dense literal; the fixtures are small
// and in bounds, so construction cannot fail.
func mustFixture(vals [][]float64) *sparse.Matrix {
	m, err := sparse.New(len(vals), len(vals[0]))
	if err != nil {
		panic(err)
	}
	for i := range vals {
		for j, v := range vals[i] {
			if err := m.Set(i, j, v); err != nil {
				panic(err)
			}
		}
	}

	return m
}

// runSelfTest prints each scenario and its verdict to out. It returns
// errSelfTestFailed if any check failed, nil otherwise.
func runSelfTest(out io.Writer) error {
	c := &checker{out: out}
	fmt.Fprintln(out, "=== RUNNING TESTS ===")

	m1 := mustFixture([][]float64{{1, 2}, {3, 4}})
	m2 := mustFixture([][]float64{{5, 6}, {7, 8}})

	fmt.Fprintln(out, "Test 1: Addition")
	fmt.Fprintln(out, "Matrix 1:")
	fmt.Fprint(out, sparse.DenseString(m1))
	fmt.Fprintln(out, "Matrix 2:")
	fmt.Fprint(out, sparse.DenseString(m2))
	if sum, err := sparse.Add(m1, m2); c.expectNoError("addition", err) {
		fmt.Fprintln(out, "Result of addition:")
		fmt.Fprint(out, sparse.DenseString(sum))
		c.expectMatrix("addition", sum, [][]float64{{6, 8}, {10, 12}})
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Test 2: Subtraction")
	if diff, err := sparse.Sub(m1, m2); c.expectNoError("subtraction", err) {
		fmt.Fprintln(out, "Result of subtraction (M1 - M2):")
		fmt.Fprint(out, sparse.DenseString(diff))
		c.expectMatrix("subtraction", diff, [][]float64{{-4, -4}, {-4, -4}})
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Test 3: Scalar multiplication")
	if scaled, err := sparse.Scale(m1, 2.5); c.expectNoError("scalar multiplication", err) {
		fmt.Fprintln(out, "Result of M1 * 2.5:")
		fmt.Fprint(out, sparse.DenseString(scaled))
		c.expectMatrix("scalar multiplication", scaled, [][]float64{{2.5, 5}, {7.5, 10}})
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Test 4: Matrix multiplication")
	if prod, err := sparse.Mul(m1, m2); c.expectNoError("matrix multiplication", err) {
		fmt.Fprintln(out, "Result of M1 * M2:")
		fmt.Fprint(out, sparse.DenseString(prod))
		c.expectMatrix("matrix multiplication", prod, [][]float64{{19, 22}, {43, 50}})
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Test 5: Transpose")
	if tr, err := sparse.Transpose(m1); c.expectNoError("transpose", err) {
		fmt.Fprintln(out, "Transpose of M1:")
		fmt.Fprint(out, sparse.DenseString(tr))
		c.expectMatrix("transpose", tr, [][]float64{{1, 3}, {2, 4}})
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Test 6: Determinant")
	if d, err := sparse.Det(m1); c.expectNoError("determinant", err) {
		fmt.Fprintf(out, "Determinant of M1: %g\n", d)
		c.expectFloat("determinant", d, -2.0)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Test 7: Inverse")
	if inv, err := sparse.Inverse(m1); c.expectNoError("inverse", err) {
		fmt.Fprintln(out, "Inverse of M1:")
		fmt.Fprint(out, sparse.DenseString(inv))
		if verify, err := sparse.Mul(m1, inv); c.expectNoError("inverse verification", err) {
			fmt.Fprintln(out, "Verification M1 * M1^-1:")
			fmt.Fprint(out, sparse.DenseString(verify))
			c.expectMatrix("inverse verification", verify, [][]float64{{1, 0}, {0, 1}})
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Test 8: Sparse representation")
	m3 := mustFixture([][]float64{{1, 0, 3}, {0, 0, 0}, {0, 7, 0}})
	fmt.Fprintln(out, "Matrix:")
	fmt.Fprint(out, sparse.DenseString(m3))
	fmt.Fprintln(out, "Sparse representation:")
	fmt.Fprint(out, sparse.SparseString(m3))
	if m3.NonZeroCount() != 3 {
		c.fail("sparse representation: nonZeroCount = %d, want 3", m3.NonZeroCount())
	}
	fmt.Fprintln(out)

	if c.failed > 0 {
		fmt.Fprintf(out, "%d check(s) failed\n", c.failed)
		return errSelfTestFailed
	}
	fmt.Fprintln(out, "All checks passed")

	return nil
}
