// SPDX-License-Identifier: MIT
// Package cli: the spy plot.
//
// `sparsemat spy` reads a matrix as whitespace-separated tokens — two
// dimensions followed by the dense row-major element list — and renders
// the non-zero pattern as a scatter plot, one marker per stored entry.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/sparsemat/sparse"
)

func newSpyCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "spy",
		Short: "Render the non-zero pattern of a matrix as a PNG",
		Long: `Reads a matrix from standard input as whitespace-separated tokens:
the number of rows, the number of columns, then the elements row by row.
Writes a scatter plot of the stored (non-zero) positions.

Example:
  echo "3 3  1 0 3  0 0 0  0 7 0" | sparsemat spy -o pattern.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readTokenMatrix(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := renderSpy(m, output); err != nil {
				return fmt.Errorf("render spy plot: %w", err)
			}
			a.log.Info("spy plot written",
				zap.String("path", output),
				zap.Int("rows", m.Rows()),
				zap.Int("cols", m.Cols()),
				zap.Int("nonzero", m.NonZeroCount()))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d non-zero entries)\n",
				output, m.NonZeroCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "spy.png", "Output image path")

	return cmd
}

// readTokenMatrix parses "rows cols e00 e01 ... " from r.
func readTokenMatrix(r io.Reader) (*sparse.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (float64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("unexpected end of input")
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return 0, fmt.Errorf("expected a number, got %q", sc.Text())
		}

		return v, nil
	}

	rowsF, err := next()
	if err != nil {
		return nil, err
	}
	colsF, err := next()
	if err != nil {
		return nil, err
	}

	m, err := sparse.New(int(rowsF), int(colsF))
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := next()
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

// renderSpy writes the scatter of stored positions to path. Rows grow
// downward on screen, so the Y coordinate is flipped.
func renderSpy(m *sparse.Matrix, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Non-zero pattern of %dx%d matrix (%d stored)",
		m.Rows(), m.Cols(), m.NonZeroCount())
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.X.Min, p.X.Max = -0.5, float64(m.Cols())-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(m.Rows())-0.5

	pts := make(plotter.XYs, 0, m.NonZeroCount())
	m.Each(func(r, c int, v float64) bool {
		pts = append(pts, plotter.XY{
			X: float64(c),
			Y: float64(m.Rows() - 1 - r),
		})
		return true
	})

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(scatter)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}
