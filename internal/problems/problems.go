// Package problems holds named second-order benchmark equations for the
// integration methods, each with initial data and, where one exists, a
// closed-form solution used for error measurement.
package problems

import (
	"math"

	"github.com/san-kum/odelab/internal/ode"
)

// Problem is one second-order initial value problem y'' = F(x, y, y').
// Exact is nil when no closed-form solution is known.
type Problem struct {
	Name  string
	Desc  string
	F     ode.Func
	X0    float64
	Y0    float64
	DY0   float64
	XEnd  float64
	Exact func(x float64) float64
}

// NewReference is the damped linear equation used throughout the method
// comparison: y'' = -(x/(1+x^2))y' + y/(1+x^2) + (3-2x+4x^2)/(1+x^2)e^(-2x),
// y(0)=2, y'(0)=-2, with exact solution sqrt(1+x^2) + e^(-2x).
func NewReference() Problem {
	return Problem{
		Name: "reference",
		Desc: "damped linear equation with known solution sqrt(1+x^2)+e^(-2x)",
		F: func(x, y, dy float64) float64 {
			q := 1 + x*x
			return -(x/q)*dy + y/q + (3-2*x+4*x*x)/q*math.Exp(-2*x)
		},
		X0:   0,
		Y0:   2,
		DY0:  -2,
		XEnd: 1,
		Exact: func(x float64) float64 {
			return math.Sqrt(1+x*x) + math.Exp(-2*x)
		},
	}
}

// NewHarmonic is the undamped oscillator y'' = -y with y = cos(x).
func NewHarmonic() Problem {
	return Problem{
		Name: "harmonic",
		Desc: "undamped oscillator y'' = -y, solution cos(x)",
		F: func(x, y, dy float64) float64 {
			return -y
		},
		X0:    0,
		Y0:    1,
		DY0:   0,
		XEnd:  2 * math.Pi,
		Exact: math.Cos,
	}
}

// NewExponential is y'' = y with y = e^x, a smooth growth benchmark.
func NewExponential() Problem {
	return Problem{
		Name: "exponential",
		Desc: "growth equation y'' = y, solution e^x",
		F: func(x, y, dy float64) float64 {
			return y
		},
		X0:    0,
		Y0:    1,
		DY0:   1,
		XEnd:  1,
		Exact: math.Exp,
	}
}

// NewDamped is the underdamped oscillator y'' = -2*beta*y' - omega^2*y
// with beta = 0.5, omega = 2.
func NewDamped() Problem {
	const (
		beta  = 0.5
		omega = 2.0
	)
	omegaD := math.Sqrt(omega*omega - beta*beta)

	return Problem{
		Name: "damped",
		Desc: "underdamped oscillator y'' = -y' - 4y",
		F: func(x, y, dy float64) float64 {
			return -2*beta*dy - omega*omega*y
		},
		X0:   0,
		Y0:   1,
		DY0:  0,
		XEnd: 5,
		Exact: func(x float64) float64 {
			return math.Exp(-beta*x) * (math.Cos(omegaD*x) + beta/omegaD*math.Sin(omegaD*x))
		},
	}
}

// NewVanDerPol is the Van der Pol oscillator y'' = mu(1-y^2)y' - y with
// mu = 1. No closed form; included to exercise runs without an exact
// solution to compare against.
func NewVanDerPol() Problem {
	const mu = 1.0
	return Problem{
		Name: "vanderpol",
		Desc: "Van der Pol oscillator, no closed-form solution",
		F: func(x, y, dy float64) float64 {
			return mu*(1-y*y)*dy - y
		},
		X0:   0,
		Y0:   2,
		DY0:  0,
		XEnd: 10,
	}
}
