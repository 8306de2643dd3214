package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skoret/odelab/internal/models"
)

var _ = Describe("Lorenz96", func() {
	var l *models.Lorenz96

	BeforeEach(func() {
		l = models.NewLorenz96(8.0)
	})

	It("is at rest on the uniform fixed point", func() {
		x := make([]float64, 6)
		for i := range x {
			x[i] = l.F
		}
		dxdt := make([]float64, 6)
		l.Eval(dxdt, x)
		for i := range dxdt {
			Expect(dxdt[i]).To(BeNumerically("~", 0, 1e-12))
		}
	})

	It("respects the cyclic symmetry of the lattice", func() {
		x := []float64{1.2, -0.3, 0.7, 2.1, -1.5}
		rotated := append([]float64{x[4]}, x[:4]...)

		dxdt := make([]float64, 5)
		dxdtRot := make([]float64, 5)
		l.Eval(dxdt, x)
		l.Eval(dxdtRot, rotated)

		for i := range dxdt {
			Expect(dxdtRot[(i+1)%5]).To(BeNumerically("~", dxdt[i], 1e-12))
		}
	})

	It("rejects lattices smaller than four sites", func() {
		Expect(l.ValidateDim(3)).To(HaveOccurred())
		Expect(l.ValidateDim(4)).To(Succeed())
	})

	It("perturbs only the first site of the default state", func() {
		x := l.DefaultState(8)
		Expect(x).To(HaveLen(8))
		Expect(x[0]).To(BeNumerically(">", l.F))
		for _, v := range x[1:] {
			Expect(v).To(Equal(l.F))
		}
	})

	It("exposes its forcing as a tunable parameter", func() {
		Expect(l.GetParams()).To(HaveKeyWithValue("F", 8.0))
		l.SetParam("F", 10.0)
		Expect(l.F).To(Equal(10.0))
	})
})
