package ode

// ScalarField is the one-dimensional form of VectorField: it returns
// the derivative of a scalar probe state.
type ScalarField func(x float64, params ...float64) float64

// IntegrateScalar is Integrate specialized to dim 1: state, derivative
// and probe are plain scalars, with no per-dimension loop. The
// semantics match Integrate exactly, including the additive write-back
// into every slot after the first, and the results agree with the
// general stepper bit for bit at dim 1.
func IntegrateScalar(traj []float64, steps int, h float64, scheme Scheme, f ScalarField, params ...float64) error {
	tab, ok := tableaus[scheme]
	if !ok {
		return ErrUnknownScheme
	}
	if steps < 1 {
		return ErrBadStepCount
	}
	if len(traj) != steps {
		return ErrSizeMismatch
	}

	k := make([]float64, tab.stages())

	for s := 0; s < steps-1; s++ {
		u := traj[s]

		for i := range k {
			probe := u
			for j, aij := range tab.a[i] {
				if aij == 0 {
					continue
				}
				probe += h * aij * k[j]
			}
			k[i] = f(probe, params...)
		}

		inc := 0.0
		for i, bi := range tab.b {
			inc += bi * k[i]
		}
		traj[s+1] += u + h*inc
	}

	return nil
}
