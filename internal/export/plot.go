// Package export renders comparison results to image files (PNG, SVG,
// PDF by extension) via gonum/plot.
package export

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/report"
)

const exactSamples = 400

func trajectoryXYs(traj ode.Trajectory) plotter.XYs {
	pts := make(plotter.XYs, len(traj.Xs))
	for i := range traj.Xs {
		pts[i].X = traj.Xs[i]
		pts[i].Y = traj.Ys[i]
	}
	return pts
}

func exactXYs(exact func(float64) float64, x0, xEnd float64) plotter.XYs {
	pts := make(plotter.XYs, exactSamples+1)
	for i := range pts {
		x := x0 + (xEnd-x0)*float64(i)/exactSamples
		pts[i].X = x
		pts[i].Y = exact(x)
	}
	return pts
}

// RenderComparison writes a plot of every method's trajectory, plus the
// closed-form solution when available, to path.
func RenderComparison(path string, cmp *report.Comparison, exact func(float64) float64) error {
	if len(cmp.Results) == 0 {
		return fmt.Errorf("nothing to render for %s", cmp.Problem)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (h=%g)", cmp.Problem, cmp.H)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	args := make([]interface{}, 0, 2*len(cmp.Results)+2)
	if exact != nil {
		x0 := cmp.Results[0].Traj.Xs[0]
		args = append(args, "exact", exactXYs(exact, x0, cmp.XEnd))
	}
	for _, res := range cmp.Results {
		label := res.Method
		if !math.IsNaN(res.MaxError) {
			label = fmt.Sprintf("%s (max err %.2e)", res.Method, res.MaxError)
		}
		args = append(args, label, trajectoryXYs(res.Traj))
	}

	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
