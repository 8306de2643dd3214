package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SavePlot renders the selected trajectory components against time
// into an image file; the format follows the path extension (png, svg,
// pdf).
func SavePlot(path, title string, times []float64, states [][]float64, components []int) error {
	if len(states) == 0 {
		return fmt.Errorf("export: no states to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "x"
	p.Add(plotter.NewGrid())

	args := make([]interface{}, 0, 2*len(components))
	for _, c := range components {
		if c < 0 || c >= len(states[0]) {
			return fmt.Errorf("export: component %d out of range [0, %d)", c, len(states[0]))
		}
		pts := make(plotter.XYs, len(times))
		for i := range times {
			pts[i].X = times[i]
			pts[i].Y = states[i][c]
		}
		args = append(args, fmt.Sprintf("x%d", c), pts)
	}

	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}

	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}
