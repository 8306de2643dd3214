package models

import "fmt"

// MeanReversion is the drift dx/dt = -rate*(x - mean), the
// deterministic part of an Ornstein-Uhlenbeck process. Combined with a
// noise pre-fill of the trajectory buffer it yields an Euler-Maruyama
// OU simulation.
type MeanReversion struct {
	Rate float64
	Mean float64
}

func NewMeanReversion(rate, mean float64) *MeanReversion {
	return &MeanReversion{Rate: rate, Mean: mean}
}

func (m *MeanReversion) MinDim() int { return 1 }

func (m *MeanReversion) ValidateDim(dim int) error {
	if dim < 1 {
		return fmt.Errorf("meanrev: dimension %d below minimum 1", dim)
	}
	return nil
}

// EvalScalar satisfies ode.ScalarField.
func (m *MeanReversion) EvalScalar(x float64, _ ...float64) float64 {
	return -m.Rate * (x - m.Mean)
}

// Eval is the vector form: each component reverts independently.
// Satisfies ode.VectorField.
func (m *MeanReversion) Eval(dxdt, x []float64, _ ...float64) {
	for i := range x {
		dxdt[i] = -m.Rate * (x[i] - m.Mean)
	}
}

// DefaultState starts every component one unit above the mean.
func (m *MeanReversion) DefaultState(dim int) []float64 {
	x := make([]float64, dim)
	for i := range x {
		x[i] = m.Mean + 1.0
	}
	return x
}

func (m *MeanReversion) GetParams() map[string]float64 {
	return map[string]float64{"rate": m.Rate, "mean": m.Mean}
}

func (m *MeanReversion) SetParam(name string, v float64) {
	switch name {
	case "rate":
		m.Rate = v
	case "mean":
		m.Mean = v
	}
}
