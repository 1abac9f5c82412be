// Package report runs the stepping methods against a benchmark problem
// and gathers accuracy numbers: max deviation from the closed form, the
// Runge extrapolation estimate, and observed convergence orders.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/problems"
)

// Methods lists the stepping methods in presentation order.
func Methods() []string {
	return []string{"euler", "rk4", "adams3"}
}

// MethodResult is one method's trajectory plus accuracy and timing.
// MaxError is NaN when the problem has no closed-form solution.
type MethodResult struct {
	Method   string
	Traj     ode.Trajectory
	MaxError float64
	Elapsed  time.Duration
}

// Comparison is a full method comparison on one problem at one step size.
// RungeEstimate is NaN when the fine and coarse RK4 runs cannot align.
type Comparison struct {
	Problem       string
	H             float64
	XEnd          float64
	Results       []MethodResult
	RungeEstimate float64
}

// Run integrates one problem with the named method.
func Run(p problems.Problem, method string, h, xEnd float64) (MethodResult, error) {
	s, err := ode.New(p.F, p.X0, p.Y0, p.DY0, h, xEnd)
	if err != nil {
		return MethodResult{}, err
	}

	start := time.Now()
	traj, err := step(s, method)
	if err != nil {
		return MethodResult{}, err
	}

	return MethodResult{
		Method:   method,
		Traj:     traj,
		MaxError: maxError(traj, p.Exact),
		Elapsed:  time.Since(start),
	}, nil
}

// Compare runs every method on p at step h and attaches the Runge
// estimate from RK4 runs at h and 2h.
func Compare(p problems.Problem, h, xEnd float64) (*Comparison, error) {
	cmp := &Comparison{Problem: p.Name, H: h, XEnd: xEnd, RungeEstimate: math.NaN()}

	for _, method := range Methods() {
		res, err := Run(p, method, h, xEnd)
		if err != nil {
			return nil, err
		}
		cmp.Results = append(cmp.Results, res)
	}

	fine := cmp.Results[1].Traj
	if coarse, err := ode.New(p.F, p.X0, p.Y0, p.DY0, 2*h, xEnd); err == nil {
		if est, err := ode.RungeError(fine.Ys, coarse.RK4().Ys); err == nil {
			cmp.RungeEstimate = est
		}
	}

	return cmp, nil
}

func step(s *ode.Solver, method string) (ode.Trajectory, error) {
	switch method {
	case "euler":
		return s.Euler(), nil
	case "rk4":
		return s.RK4(), nil
	case "adams3":
		return s.Adams3(), nil
	default:
		return ode.Trajectory{}, fmt.Errorf("unknown method: %s (available: %v)", method, Methods())
	}
}

func maxError(traj ode.Trajectory, exact func(float64) float64) float64 {
	if exact == nil {
		return math.NaN()
	}
	maxErr := 0.0
	for i, x := range traj.Xs {
		if d := math.Abs(traj.Ys[i] - exact(x)); d > maxErr {
			maxErr = d
		}
	}
	return maxErr
}
