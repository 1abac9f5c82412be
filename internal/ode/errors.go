package ode

import "errors"

// Domain errors for solver construction and the error estimator.
var (
	// ErrDerivativeFunc indicates a nil derivative function.
	ErrDerivativeFunc = errors.New("ode: derivative function is nil")

	// ErrStepSize indicates a non-positive step size.
	ErrStepSize = errors.New("ode: step size must be positive")

	// ErrInterval indicates an end point at or before the start point.
	ErrInterval = errors.New("ode: end point must exceed start point")

	// ErrIntervalTooShort indicates an interval shorter than one step.
	ErrIntervalTooShort = errors.New("ode: interval shorter than one step")

	// ErrSequenceMismatch indicates estimator inputs whose lengths do not
	// satisfy the 2:1 step relationship.
	ErrSequenceMismatch = errors.New("ode: incompatible sequence lengths")
)
