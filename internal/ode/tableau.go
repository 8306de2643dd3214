package ode

// tableau holds the Butcher coefficients of an explicit Runge-Kutta
// scheme: the strictly lower-triangular stage matrix a and the final
// combination weights b. One table per scheme replaces per-scheme step
// code; the engine walks the table instead.
type tableau struct {
	a [][]float64
	b []float64
}

func (t tableau) stages() int { return len(t.b) }

var tableaus = map[Scheme]tableau{
	Euler: {
		a: [][]float64{nil},
		b: []float64{1},
	},
	Heun: {
		a: [][]float64{nil, {1}},
		b: []float64{0.5, 0.5},
	},
	RK4: {
		a: [][]float64{nil, {0.5}, {0, 0.5}, {0, 0, 1}},
		b: []float64{1.0 / 6.0, 1.0 / 3.0, 1.0 / 3.0, 1.0 / 6.0},
	},
}
