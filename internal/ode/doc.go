// Package ode provides a fixed-step explicit integrator for first-order
// ODE systems over caller-owned trajectory buffers.
//
// The package defines the stepping engine and its contracts:
//
//   - [Scheme]: the closed set of supported methods (Euler, Heun, RK4)
//   - [VectorField]: the derivative evaluator supplied by the caller
//   - [Integrate]: the N-dimensional stepper
//   - [IntegrateScalar]: the same schemes specialized to one dimension
//
// A trajectory is a flat time-major buffer: the state at time index k
// occupies traj[k*dim : (k+1)*dim]. Slot 0 is initialized by the caller
// and never written. Every later slot receives an in-place addition of
// the scheme's estimate, so content pre-filled into those slots (for
// example scaled noise increments) is superimposed with the
// deterministic drift rather than overwritten.
//
// # Example
//
//	traj := make([]float64, dim*steps)
//	copy(traj[:dim], x0)
//	err := ode.Integrate(traj, dim, steps, 0.001, ode.RK4, field.Eval)
//
// # Thread Safety
//
// The steppers hold no state across calls. Concurrent calls are safe as
// long as they operate on distinct trajectory buffers.
package ode
