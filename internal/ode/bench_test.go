package ode

import "testing"

func benchSolver(b *testing.B, h float64) *Solver {
	s, err := New(harmonic, 0, 1, 0, h, 10)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	return s
}

func BenchmarkEuler(b *testing.B) {
	s := benchSolver(b, 0.001)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Euler()
	}
}

func BenchmarkRK4(b *testing.B) {
	s := benchSolver(b, 0.001)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.RK4()
	}
}

func BenchmarkAdams3(b *testing.B) {
	s := benchSolver(b, 0.001)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Adams3()
	}
}
