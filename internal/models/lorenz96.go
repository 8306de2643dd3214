package models

import "fmt"

// Lorenz96 is the cyclic lattice model of Lorenz (1996):
//
//	dx_i/dt = (x_{i+1} - x_{i-2}) * x_{i-1} - x_i + F
//
// with indices wrapping around the lattice. The system is chaotic for
// F around 8 at typical lattice sizes.
type Lorenz96 struct {
	F float64
}

const DefaultForcing = 8.0

func NewLorenz96(f float64) *Lorenz96 { return &Lorenz96{F: f} }

// MinDim is the smallest lattice the cyclic coupling is defined on.
func (l *Lorenz96) MinDim() int { return 4 }

func (l *Lorenz96) ValidateDim(dim int) error {
	if dim < l.MinDim() {
		return fmt.Errorf("lorenz96: dimension %d below minimum %d", dim, l.MinDim())
	}
	return nil
}

// Eval writes the lattice derivative. Satisfies ode.VectorField; the
// forwarded params are ignored, the forcing lives on the struct.
func (l *Lorenz96) Eval(dxdt, x []float64, _ ...float64) {
	n := len(x)
	dxdt[0] = (x[1]-x[n-2])*x[n-1] - x[0] + l.F
	dxdt[1] = (x[2]-x[n-1])*x[0] - x[1] + l.F
	for i := 2; i < n-1; i++ {
		dxdt[i] = (x[i+1]-x[i-2])*x[i-1] - x[i] + l.F
	}
	dxdt[n-1] = (x[0]-x[n-3])*x[n-2] - x[n-1] + l.F
}

// DefaultState is the lattice fixed point x_i = F with a small kick on
// the first site, the usual way to start a chaotic run.
func (l *Lorenz96) DefaultState(dim int) []float64 {
	x := make([]float64, dim)
	for i := range x {
		x[i] = l.F
	}
	x[0] += 0.01
	return x
}

func (l *Lorenz96) GetParams() map[string]float64 {
	return map[string]float64{"F": l.F}
}

func (l *Lorenz96) SetParam(name string, v float64) {
	if name == "F" {
		l.F = v
	}
}
