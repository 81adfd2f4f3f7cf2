// SPDX-License-Identifier: MIT
// Package cli: the interactive menu loop.
//
// The session keeps a growing workspace of matrices addressed by index;
// every operation result is appended as a new matrix, never mutated in
// place. Input is read as whitespace-separated tokens, so the menu works
// the same whether driven by a terminal or a piped script.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/sparsemat/sparse"
)

// session is the state of one interactive run.
type session struct {
	sc   *bufio.Scanner
	out  io.Writer
	log  *zap.Logger
	mats []*sparse.Matrix
}

func newSession(in io.Reader, out io.Writer, log *zap.Logger) *session {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	if log == nil {
		log = zap.NewNop()
	}

	return &session{sc: sc, out: out, log: log}
}

// run drives the menu until the user picks 0 or input ends. Operation
// errors are reported and the loop continues; only I/O failures abort.
func (s *session) run() error {
	for {
		s.printMenu()

		choice, err := s.nextInt()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		s.log.Debug("menu choice", zap.Int("choice", choice))
		if choice == 0 {
			fmt.Fprintln(s.out, "Exiting program.")
			return nil
		}

		if err := s.dispatch(choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

func (s *session) printMenu() {
	fmt.Fprintln(s.out, "\n=== SPARSE MATRIX CALCULATOR ===")
	fmt.Fprintln(s.out, "1. Create a new matrix")
	fmt.Fprintln(s.out, "2. Add two matrices")
	fmt.Fprintln(s.out, "3. Subtract two matrices")
	fmt.Fprintln(s.out, "4. Multiply by scalar")
	fmt.Fprintln(s.out, "5. Multiply two matrices")
	fmt.Fprintln(s.out, "6. Divide by scalar")
	fmt.Fprintln(s.out, "7. Transpose a matrix")
	fmt.Fprintln(s.out, "8. Calculate determinant")
	fmt.Fprintln(s.out, "9. Calculate inverse")
	fmt.Fprintln(s.out, "10. View matrix")
	fmt.Fprintln(s.out, "11. View sparse representation")
	fmt.Fprintln(s.out, "12. Run tests")
	fmt.Fprintln(s.out, "0. Exit")
	fmt.Fprint(s.out, "Enter your choice: ")
}

func (s *session) dispatch(choice int) error {
	switch choice {
	case 1:
		return s.create()
	case 2:
		return s.binary("first", sparse.Add)
	case 3:
		return s.binary("first", sparse.Sub)
	case 4:
		return s.scalar(sparse.Scale)
	case 5:
		return s.binary("first", sparse.Mul)
	case 6:
		return s.scalar(sparse.ScaleDiv)
	case 7:
		return s.unary(sparse.Transpose)
	case 8:
		return s.determinant()
	case 9:
		return s.unary(sparse.Inverse)
	case 10:
		return s.view(sparse.DenseString)
	case 11:
		return s.view(sparse.SparseString)
	case 12:
		if err := runSelfTest(s.out); err != nil && !errors.Is(err, errSelfTestFailed) {
			return err
		}
		return nil
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		return nil
	}
}

// ---------- token input ----------

func (s *session) nextToken() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return s.sc.Text(), nil
}

func (s *session) nextInt() (int, error) {
	tok, err := s.nextToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q", tok)
	}

	return n, nil
}

func (s *session) nextFloat() (float64, error) {
	tok, err := s.nextToken()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", tok)
	}

	return v, nil
}

// ---------- menu actions ----------

// create prompts for dimensions and elements, then stores the matrix.
func (s *session) create() error {
	m, err := s.readMatrix()
	if err != nil {
		return err
	}
	s.mats = append(s.mats, m)
	fmt.Fprintf(s.out, "Matrix %d created successfully.\n", len(s.mats)-1)

	return nil
}

// readMatrix reads dimensions followed by a dense row-by-row element list.
// Set drops near-zero values on its own, so every element goes through it.
func (s *session) readMatrix() (*sparse.Matrix, error) {
	fmt.Fprint(s.out, "Enter number of rows: ")
	rows, err := s.nextInt()
	if err != nil {
		return nil, err
	}
	fmt.Fprint(s.out, "Enter number of columns: ")
	cols, err := s.nextInt()
	if err != nil {
		return nil, err
	}

	m, err := sparse.New(rows, cols)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(s.out, "Enter matrix elements row by row:")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(s.out, "Row %d:\n", i)
		for j := 0; j < cols; j++ {
			fmt.Fprintf(s.out, "Element at position (%d, %d): ", i, j)
			v, err := s.nextFloat()
			if err != nil {
				return nil, err
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// pickIndex prompts for and validates a workspace index.
func (s *session) pickIndex(which string) (int, error) {
	if which == "" {
		fmt.Fprintf(s.out, "Enter index of matrix (0-%d): ", len(s.mats)-1)
	} else {
		fmt.Fprintf(s.out, "Enter index of %s matrix (0-%d): ", which, len(s.mats)-1)
	}
	idx, err := s.nextInt()
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= len(s.mats) {
		return 0, fmt.Errorf("invalid matrix index %d", idx)
	}

	return idx, nil
}

// store appends a result, announces its index and shows it.
func (s *session) store(m *sparse.Matrix) {
	s.mats = append(s.mats, m)
	fmt.Fprintf(s.out, "Result stored as matrix %d\n", len(s.mats)-1)
	fmt.Fprint(s.out, sparse.DenseString(m))
}

// binary runs a two-operand kernel over user-picked indices.
func (s *session) binary(first string, op func(a, b *sparse.Matrix) (*sparse.Matrix, error)) error {
	if len(s.mats) < 2 {
		fmt.Fprintln(s.out, "You need at least two matrices. Create more matrices.")
		return nil
	}

	i, err := s.pickIndex(first)
	if err != nil {
		return err
	}
	j, err := s.pickIndex("second")
	if err != nil {
		return err
	}

	res, err := op(s.mats[i], s.mats[j])
	if err != nil {
		return err
	}
	s.store(res)

	return nil
}

// scalar runs a matrix-by-scalar kernel.
func (s *session) scalar(op func(m *sparse.Matrix, k float64) (*sparse.Matrix, error)) error {
	if len(s.mats) == 0 {
		fmt.Fprintln(s.out, "No matrices available. Create a matrix first.")
		return nil
	}

	idx, err := s.pickIndex("")
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, "Enter scalar value: ")
	k, err := s.nextFloat()
	if err != nil {
		return err
	}

	res, err := op(s.mats[idx], k)
	if err != nil {
		return err
	}
	s.store(res)

	return nil
}

// unary runs a single-operand kernel (transpose, inverse).
func (s *session) unary(op func(m *sparse.Matrix) (*sparse.Matrix, error)) error {
	if len(s.mats) == 0 {
		fmt.Fprintln(s.out, "No matrices available. Create a matrix first.")
		return nil
	}

	idx, err := s.pickIndex("")
	if err != nil {
		return err
	}

	res, err := op(s.mats[idx])
	if err != nil {
		return err
	}
	s.store(res)

	return nil
}

func (s *session) determinant() error {
	if len(s.mats) == 0 {
		fmt.Fprintln(s.out, "No matrices available. Create a matrix first.")
		return nil
	}

	idx, err := s.pickIndex("")
	if err != nil {
		return err
	}

	d, err := sparse.Det(s.mats[idx])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Determinant: %g\n", d)

	return nil
}

func (s *session) view(render func(m *sparse.Matrix) string) error {
	if len(s.mats) == 0 {
		fmt.Fprintln(s.out, "No matrices available. Create a matrix first.")
		return nil
	}

	idx, err := s.pickIndex("")
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, render(s.mats[idx]))

	return nil
}
