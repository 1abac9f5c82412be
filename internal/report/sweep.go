package report

import (
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/odelab/internal/problems"
)

// SweepLevel is one step size of a convergence study. Order is the
// observed convergence order log2(err_prev/err), NaN on the first level.
type SweepLevel struct {
	H        float64
	MaxError float64
	Order    float64
}

// Sweep runs the named method at h0, h0/2, ..., h0/2^(levels-1) and
// reports the observed order at each halving. Levels run concurrently;
// each has its own solver and buffers. Requires a closed-form solution.
func Sweep(p problems.Problem, method string, h0 float64, levels int, xEnd float64) ([]SweepLevel, error) {
	if p.Exact == nil {
		return nil, fmt.Errorf("problem %s has no closed-form solution to sweep against", p.Name)
	}
	if levels < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 levels, got %d", levels)
	}

	out := make([]SweepLevel, levels)
	errs := make([]error, levels)

	var wg sync.WaitGroup
	for i := 0; i < levels; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			h := h0 / math.Pow(2, float64(idx))
			res, err := Run(p, method, h, xEnd)
			if err != nil {
				errs[idx] = err
				return
			}
			out[idx] = SweepLevel{H: h, MaxError: res.MaxError, Order: math.NaN()}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	for i := 1; i < levels; i++ {
		if out[i].MaxError > 0 {
			out[i].Order = math.Log2(out[i-1].MaxError / out[i].MaxError)
		}
	}

	return out, nil
}
