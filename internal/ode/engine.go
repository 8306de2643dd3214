package ode

// VectorField writes the length-dim derivative of a length-dim probe
// state into dxdt. The params are forwarded opaquely from the Integrate
// call. The field is evaluated up to four times per step (once per
// stage) with different probe states and must not retain either slice.
type VectorField func(dxdt, x []float64, params ...float64)

// Integrate advances a time-major trajectory of steps slots, each dim
// wide, with a fixed step h under the selected scheme.
//
// Slot 0 is caller-initialized and never written. For k = 0..steps-2,
// slot k+1 receives an in-place addition of the scheme's estimate of
// state(k+1) computed from state(k), so pre-filled slot content (for
// example scaled noise increments) is superimposed with the drift
// rather than overwritten. steps == 1 leaves the buffer untouched, and
// a negative h integrates backward in time.
//
// The engine allocates only per-call scratch sized dim; the trajectory
// buffer stays exclusively caller-owned. NaN or Inf produced by the
// field propagate undetected.
func Integrate(traj []float64, dim, steps int, h float64, scheme Scheme, f VectorField, params ...float64) error {
	tab, ok := tableaus[scheme]
	if !ok {
		return ErrUnknownScheme
	}
	if dim < 1 {
		return ErrBadDimension
	}
	if steps < 1 {
		return ErrBadStepCount
	}
	if len(traj) != dim*steps {
		return ErrSizeMismatch
	}

	k := make([][]float64, tab.stages())
	for i := range k {
		k[i] = make([]float64, dim)
	}
	probe := make([]float64, dim)

	for s := 0; s < steps-1; s++ {
		u := traj[s*dim : (s+1)*dim]
		next := traj[(s+1)*dim : (s+2)*dim]

		for i := range k {
			copy(probe, u)
			for j, aij := range tab.a[i] {
				if aij == 0 {
					continue
				}
				for d := 0; d < dim; d++ {
					probe[d] += h * aij * k[j][d]
				}
			}
			f(k[i], probe, params...)
		}

		for d := 0; d < dim; d++ {
			inc := 0.0
			for i, bi := range tab.b {
				inc += bi * k[i][d]
			}
			next[d] += u[d] + h*inc
		}
	}

	return nil
}
