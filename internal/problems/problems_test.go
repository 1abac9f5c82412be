package problems_test

import (
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odelab/internal/problems"
)

// Central finite differences of the closed-form solution, used to check
// that each Exact actually solves its own equation.
const fdStep = 1e-4

func firstDeriv(f func(float64) float64, x float64) float64 {
	return (f(x+fdStep) - f(x-fdStep)) / (2 * fdStep)
}

func secondDeriv(f func(float64) float64, x float64) float64 {
	return (f(x+fdStep) - 2*f(x) + f(x-fdStep)) / (fdStep * fdStep)
}

var _ = Describe("Registry", func() {
	It("returns every registered problem under its own name", func() {
		for _, name := range problems.Names() {
			p, err := problems.Get(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Name).To(Equal(name))
			Expect(p.F).NotTo(BeNil())
			Expect(p.XEnd).To(BeNumerically(">", p.X0))
		}
	})

	It("rejects unknown names", func() {
		_, err := problems.Get("lorenz")
		Expect(err).To(MatchError(ContainSubstring("unknown problem")))
	})

	It("lists names sorted", func() {
		names := problems.Names()
		Expect(names).To(ContainElements("reference", "harmonic", "exponential", "damped", "vanderpol"))
		Expect(sort.StringsAreSorted(names)).To(BeTrue())
	})
})

var _ = Describe("Closed-form solutions", func() {
	It("satisfy their own equations", func() {
		for _, name := range problems.Names() {
			p, err := problems.Get(name)
			Expect(err).NotTo(HaveOccurred())
			if p.Exact == nil {
				continue
			}

			span := p.XEnd - p.X0
			for _, frac := range []float64{0.1, 0.5, 0.9} {
				x := p.X0 + frac*span
				y := p.Exact(x)
				dy := firstDeriv(p.Exact, x)
				ddy := secondDeriv(p.Exact, x)
				Expect(ddy).To(BeNumerically("~", p.F(x, y, dy), 1e-4),
					"%s residual at x=%g", name, x)
			}
		}
	})

	It("match the initial conditions", func() {
		for _, name := range problems.Names() {
			p, err := problems.Get(name)
			Expect(err).NotTo(HaveOccurred())
			if p.Exact == nil {
				continue
			}

			Expect(p.Exact(p.X0)).To(BeNumerically("~", p.Y0, 1e-10),
				"%s initial value", name)
			Expect(firstDeriv(p.Exact, p.X0)).To(BeNumerically("~", p.DY0, 1e-6),
				"%s initial slope", name)
		}
	})

	It("are absent only for vanderpol", func() {
		for _, name := range problems.Names() {
			p, _ := problems.Get(name)
			if name == "vanderpol" {
				Expect(p.Exact).To(BeNil())
			} else {
				Expect(p.Exact).NotTo(BeNil(), name)
			}
		}
	})
})
