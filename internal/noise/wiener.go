// Package noise pre-seeds trajectory buffers with stochastic forcing.
//
// The stepping engine adds its drift estimate to whatever already
// occupies a slot, so filling the slots with Wiener increments before
// integration yields an Euler-Maruyama simulation without the engine
// knowing anything about randomness.
package noise

import (
	"math"
	"math/rand"
)

// Wiener generates independent Gaussian increments scaled by
// sigma*sqrt(|h|), the Euler-Maruyama convention for a step of size h.
type Wiener struct {
	Sigma float64
	rng   *rand.Rand
}

// NewWiener returns a generator with a fixed seed; equal seeds produce
// equal pre-fills.
func NewWiener(sigma float64, seed int64) *Wiener {
	return &Wiener{Sigma: sigma, rng: rand.New(rand.NewSource(seed))}
}

// Prefill adds one increment per component to every slot after the
// first of a time-major buffer of steps slots, each dim wide. Slot 0
// holds the initial condition and is never touched.
func (w *Wiener) Prefill(traj []float64, dim, steps int, h float64) {
	scale := w.Sigma * math.Sqrt(math.Abs(h))
	for s := 1; s < steps; s++ {
		slot := traj[s*dim : (s+1)*dim]
		for d := range slot {
			slot[d] += scale * w.rng.NormFloat64()
		}
	}
}

// PrefillScalar is Prefill for a one-dimensional trajectory.
func (w *Wiener) PrefillScalar(traj []float64, h float64) {
	scale := w.Sigma * math.Sqrt(math.Abs(h))
	for s := 1; s < len(traj); s++ {
		traj[s] += scale * w.rng.NormFloat64()
	}
}
