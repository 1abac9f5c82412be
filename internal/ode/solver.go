package ode

import "fmt"

// Func is the right-hand side of a second-order equation y'' = f(x, y, y').
// It is supplied by the caller and assumed pure; a non-finite result
// propagates into the trajectory unchanged.
type Func func(x, y, dy float64) float64

// state is the reduced first-order pair (y, y').
type state struct {
	y, dy float64
}

// plus returns s advanced by w*k componentwise.
func (s state) plus(k state, w float64) state {
	return state{s.y + w*k.y, s.dy + w*k.dy}
}

// Trajectory is the sampled solution of one stepping run. Xs and Ys have
// equal length n+1 and are freshly allocated per call; the solver keeps
// no alias to them.
type Trajectory struct {
	Xs []float64
	Ys []float64
}

// Solver holds an immutable second-order initial value problem:
// y'' = fn(x, y, y') with y(x0) = y0, y'(x0) = dy0, integrated over
// [x0, xEnd] in steps of h. No method mutates the Solver.
type Solver struct {
	fn   Func
	x0   float64
	y0   float64
	dy0  float64
	h    float64
	xEnd float64
	n    int
}

// New validates the problem definition and returns a Solver.
// The step count is n = floor((xEnd-x0)/h); when h does not divide the
// interval exactly, the sample axis is still spread evenly over
// [x0, xEnd] while the state advance uses h, matching the truncation
// behavior of the classical formulation.
func New(fn Func, x0, y0, dy0, h, xEnd float64) (*Solver, error) {
	if fn == nil {
		return nil, ErrDerivativeFunc
	}
	if h <= 0 {
		return nil, fmt.Errorf("%w: h=%g", ErrStepSize, h)
	}
	if xEnd <= x0 {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInterval, x0, xEnd)
	}
	n := int((xEnd - x0) / h)
	if n < 1 {
		return nil, fmt.Errorf("%w: h=%g over [%g, %g]", ErrIntervalTooShort, h, x0, xEnd)
	}
	return &Solver{fn: fn, x0: x0, y0: y0, dy0: dy0, h: h, xEnd: xEnd, n: n}, nil
}

// Steps returns the step count n; trajectories have n+1 samples.
func (s *Solver) Steps() int { return s.n }

// StepSize returns the fixed step h.
func (s *Solver) StepSize() float64 { return s.h }

// Interval returns the integration interval [x0, xEnd].
func (s *Solver) Interval() (float64, float64) { return s.x0, s.xEnd }

// system is the single source of the first-order reduction: given x and
// (y, y') it returns the derivative pair (y', fn(x, y, y')).
func (s *Solver) system(x float64, st state) state {
	return state{st.dy, s.fn(x, st.y, st.dy)}
}

// abscissas returns the n+1 evenly spaced sample points over [x0, xEnd].
// Spacing is computed from the interval, not accumulated by repeated
// addition, to keep the sample axis free of floating-point drift.
func (s *Solver) abscissas() []float64 {
	xs := make([]float64, s.n+1)
	span := s.xEnd - s.x0
	for i := range xs {
		xs[i] = s.x0 + span*float64(i)/float64(s.n)
	}
	xs[s.n] = s.xEnd
	return xs
}

// Euler integrates with the explicit Euler method. Global error O(h).
func (s *Solver) Euler() Trajectory {
	xs := s.abscissas()
	ys := make([]float64, s.n+1)

	st := state{s.y0, s.dy0}
	ys[0] = st.y
	for i := 0; i < s.n; i++ {
		st = st.plus(s.system(xs[i], st), s.h)
		ys[i+1] = st.y
	}

	return Trajectory{Xs: xs, Ys: ys}
}

// rk4Step advances one classical Runge-Kutta step from (x, st). It is the
// shared kernel of RK4 and the Adams3 bootstrap.
func (s *Solver) rk4Step(x float64, st state) state {
	h := s.h
	k1 := s.system(x, st)
	k2 := s.system(x+h/2, st.plus(k1, h/2))
	k3 := s.system(x+h/2, st.plus(k2, h/2))
	k4 := s.system(x+h, st.plus(k3, h))

	return state{
		y:  st.y + h/6*(k1.y+2*k2.y+2*k3.y+k4.y),
		dy: st.dy + h/6*(k1.dy+2*k2.dy+2*k3.dy+k4.dy),
	}
}

// RK4 integrates with the classical 4th-order Runge-Kutta method.
// Global error O(h^4).
func (s *Solver) RK4() Trajectory {
	xs := s.abscissas()
	ys := make([]float64, s.n+1)

	st := state{s.y0, s.dy0}
	ys[0] = st.y
	for i := 0; i < s.n; i++ {
		st = s.rk4Step(xs[i], st)
		ys[i+1] = st.y
	}

	return Trajectory{Xs: xs, Ys: ys}
}

// Adams3 integrates with the explicit 3rd-order Adams-Bashforth method.
// The first min(3, n) steps are taken with the RK4 kernel to build the
// required derivative history; with fewer than three steps available the
// bootstrap alone defines the trajectory. Each multistep iteration
// evaluates the reduction once and reuses the two previous evaluations.
func (s *Solver) Adams3() Trajectory {
	xs := s.abscissas()
	states := make([]state, s.n+1)
	states[0] = state{s.y0, s.dy0}

	boot := s.n
	if boot > 3 {
		boot = 3
	}
	for i := 0; i < boot; i++ {
		states[i+1] = s.rk4Step(xs[i], states[i])
	}

	if s.n > 3 {
		f2 := s.system(xs[1], states[1])
		f1 := s.system(xs[2], states[2])
		for i := 3; i < s.n; i++ {
			f0 := s.system(xs[i], states[i])
			states[i+1] = state{
				y:  states[i].y + s.h/12*(23*f0.y-16*f1.y+5*f2.y),
				dy: states[i].dy + s.h/12*(23*f0.dy-16*f1.dy+5*f2.dy),
			}
			f2, f1 = f1, f0
		}
	}

	ys := make([]float64, s.n+1)
	for i, st := range states {
		ys[i] = st.y
	}
	return Trajectory{Xs: xs, Ys: ys}
}
