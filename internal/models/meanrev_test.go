package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skoret/odelab/internal/models"
)

var _ = Describe("MeanReversion", func() {
	var m *models.MeanReversion

	BeforeEach(func() {
		m = models.NewMeanReversion(0.1, 0.0)
	})

	It("vanishes at the mean", func() {
		Expect(m.EvalScalar(0.0)).To(BeZero())
	})

	It("pulls the state toward the mean from both sides", func() {
		Expect(m.EvalScalar(1.0)).To(BeNumerically("<", 0))
		Expect(m.EvalScalar(-1.0)).To(BeNumerically(">", 0))
	})

	It("agrees between scalar and vector forms", func() {
		x := []float64{0.5, -2.0, 3.25}
		dxdt := make([]float64, len(x))
		m.Eval(dxdt, x)
		for i := range x {
			Expect(dxdt[i]).To(Equal(m.EvalScalar(x[i])))
		}
	})

	It("reverts toward a nonzero mean", func() {
		m = models.NewMeanReversion(0.5, 2.0)
		Expect(m.EvalScalar(2.0)).To(BeZero())
		Expect(m.EvalScalar(3.0)).To(BeNumerically("~", -0.5, 1e-12))
	})

	It("accepts any dimension of at least one", func() {
		Expect(m.ValidateDim(0)).To(HaveOccurred())
		Expect(m.ValidateDim(1)).To(Succeed())
	})
})
