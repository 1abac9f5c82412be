// Package ode integrates second-order initial value problems
// y'' = f(x, y, y') with fixed-step explicit methods.
//
// The equation is reduced internally to the first-order pair system
// (y, y')' = (y', f(x, y, y')); every stepping method advances that
// system with the same reduction. Available methods:
//
//   - [Solver.Euler]: explicit Euler, global error O(h)
//   - [Solver.RK4]: classical 4th-order Runge-Kutta, global error O(h^4)
//   - [Solver.Adams3]: 3rd-order Adams-Bashforth, bootstrapped with RK4
//
// [RungeError] estimates the discretization error of an RK4 run by
// Richardson extrapolation against a second run at twice the step size.
//
// # Thread Safety
//
// A Solver holds only its problem definition and never mutates it.
// All per-call buffers are local, so the same Solver may be used from
// multiple goroutines concurrently.
package ode
