// Package equplot renders solver output: a convergence curve over the
// residual history and a bar chart of the final concentrations. It only
// reads session results after Solve has returned; it never feeds anything
// back into the solver.
package equplot

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mtod92/equpy/equilibrium"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var (
	// ErrNoData indicates an empty residual history or concentration vector.
	ErrNoData = errors.New("equplot: nothing to plot")
	// ErrDimensionMismatch indicates species names that do not pair up
	// with the concentration vector.
	ErrDimensionMismatch = errors.New("equplot: names and concentrations must have equal length")
	// ErrNilResult indicates a nil *equilibrium.Result passed to Save.
	ErrNilResult = errors.New("equplot: result is nil")
)

// Convergence builds the residual-vs-iteration curve: a line through
// every recorded residual with markers on the individual steps, iteration
// 0 being the initial seeding step.
func Convergence(residuals []float64) (*plot.Plot, error) {
	if len(residuals) == 0 {
		return nil, ErrNoData
	}

	points := make(plotter.XYs, len(residuals))
	for i, r := range residuals {
		points[i].X = float64(i)
		points[i].Y = r
	}

	p := plot.New()
	p.Title.Text = "Convergence"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Residual"

	line, err := plotter.NewLine(points)
	if err != nil {
		return nil, fmt.Errorf("equplot: %w", err)
	}
	line.LineStyle.Width = vg.Points(2)

	marks, err := plotter.NewScatter(points)
	if err != nil {
		return nil, fmt.Errorf("equplot: %w", err)
	}
	marks.GlyphStyle.Radius = vg.Points(3)

	p.Add(line, marks)

	return p, nil
}

// Concentrations builds the final-concentration bar chart. names label
// the bars in index order; a nil names slice falls back to bare indices
// (systems built without a registry).
func Concentrations(conc []float64, names []string) (*plot.Plot, error) {
	if len(conc) == 0 {
		return nil, ErrNoData
	}
	if names != nil && len(names) != len(conc) {
		return nil, fmt.Errorf("%w: %d names, %d concentrations", ErrDimensionMismatch, len(names), len(conc))
	}
	if names == nil {
		names = make([]string, len(conc))
		for i := range names {
			names[i] = strconv.Itoa(i)
		}
	}

	p := plot.New()
	p.Title.Text = "Equilibrium concentrations"
	p.Y.Label.Text = "Concentration"

	bars, err := plotter.NewBarChart(plotter.Values(conc), vg.Points(25))
	if err != nil {
		return nil, fmt.Errorf("equplot: %w", err)
	}
	bars.Color = plotutil.Color(0)

	p.Add(bars)
	p.NominalX(names...)

	return p, nil
}

// Save renders both views of a solve result to image files; the formats
// follow the file extensions (.png, .svg, .pdf, ...). names may be nil
// for registry-less systems.
func Save(res *equilibrium.Result, names []string, convergencePath, concentrationPath string) error {
	if res == nil {
		return ErrNilResult
	}

	curve, err := Convergence(res.Residuals)
	if err != nil {
		return err
	}
	if err := curve.Save(6*vg.Inch, 4*vg.Inch, convergencePath); err != nil {
		return fmt.Errorf("equplot: %w", err)
	}

	bars, err := Concentrations(res.Concentrations, names)
	if err != nil {
		return err
	}
	if err := bars.Save(6*vg.Inch, 4*vg.Inch, concentrationPath); err != nil {
		return fmt.Errorf("equplot: %w", err)
	}

	return nil
}
