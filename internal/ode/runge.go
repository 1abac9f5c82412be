package ode

import (
	"fmt"
	"math"
)

// richardsonDivisor is 2^4 - 1 for a 4th-order method at step ratio 2.
const richardsonDivisor = 15.0

// RungeError estimates the maximum pointwise error of an RK4 solution at
// step h by Richardson extrapolation against a solution at step 2h over
// the same interval. Every second fine sample must align with a coarse
// sample, so fine needs 2*len(coarse)-1 samples; one trailing fine sample
// beyond the last aligned point is tolerated and ignored, matching the
// stride-2 subsampling of the classical formulation. Any other shape
// fails with ErrSequenceMismatch.
func RungeError(fine, coarse []float64) (float64, error) {
	if len(coarse) == 0 || len(fine) < 2*len(coarse)-1 || len(fine) > 2*len(coarse) {
		return 0, fmt.Errorf("%w: fine=%d coarse=%d (want fine = 2*coarse-1)",
			ErrSequenceMismatch, len(fine), len(coarse))
	}

	maxErr := 0.0
	for i, yc := range coarse {
		if d := math.Abs(fine[2*i]-yc) / richardsonDivisor; d > maxErr {
			maxErr = d
		}
	}
	return maxErr, nil
}
