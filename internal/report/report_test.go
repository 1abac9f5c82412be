package report

import (
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/problems"
)

func TestCompareReference(t *testing.T) {
	p := problems.NewReference()

	cmp, err := Compare(p, 0.05, p.XEnd)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	if len(cmp.Results) != 3 {
		t.Fatalf("expected 3 method results, got %d", len(cmp.Results))
	}

	byMethod := make(map[string]MethodResult)
	for _, res := range cmp.Results {
		byMethod[res.Method] = res
	}

	if byMethod["rk4"].MaxError > 1e-5 {
		t.Errorf("rk4 max error too large: %e", byMethod["rk4"].MaxError)
	}
	if byMethod["euler"].MaxError <= byMethod["rk4"].MaxError {
		t.Error("expected euler to be less accurate than rk4")
	}
	if byMethod["adams3"].MaxError >= byMethod["euler"].MaxError {
		t.Error("expected adams3 to be more accurate than euler")
	}

	if math.IsNaN(cmp.RungeEstimate) {
		t.Fatal("expected a Runge estimate for an evenly halvable step")
	}
	if cmp.RungeEstimate <= 0 || cmp.RungeEstimate > 1e-4 {
		t.Errorf("Runge estimate out of expected range: %e", cmp.RungeEstimate)
	}
}

func TestCompareWithoutExact(t *testing.T) {
	p := problems.NewVanDerPol()

	cmp, err := Compare(p, 0.01, 1.0)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	for _, res := range cmp.Results {
		if !math.IsNaN(res.MaxError) {
			t.Errorf("%s: expected NaN max error without a closed form, got %g", res.Method, res.MaxError)
		}
	}
}

func TestRunUnknownMethod(t *testing.T) {
	p := problems.NewHarmonic()
	if _, err := Run(p, "verlet", 0.1, 1.0); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestRunRejectsBadStep(t *testing.T) {
	p := problems.NewHarmonic()
	if _, err := Run(p, "rk4", -0.1, 1.0); err == nil {
		t.Error("expected error for negative step")
	}
}

func TestSweepObservedOrders(t *testing.T) {
	p := problems.NewHarmonic()

	rk4Levels, err := Sweep(p, "rk4", 0.1, 4, 1.0)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	for i := 1; i < len(rk4Levels); i++ {
		if order := rk4Levels[i].Order; order < 3.5 || order > 4.5 {
			t.Errorf("rk4 level %d: observed order %.2f, want ~4", i, order)
		}
	}

	eulerLevels, err := Sweep(p, "euler", 0.01, 3, 1.0)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	for i := 1; i < len(eulerLevels); i++ {
		if order := eulerLevels[i].Order; order < 0.7 || order > 1.3 {
			t.Errorf("euler level %d: observed order %.2f, want ~1", i, order)
		}
	}
}

func TestSweepRejectsNoExact(t *testing.T) {
	p := problems.NewVanDerPol()
	if _, err := Sweep(p, "rk4", 0.1, 3, 1.0); err == nil {
		t.Error("expected error sweeping a problem without a closed form")
	}
}
