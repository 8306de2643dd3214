package ode

import (
	"errors"
	"math"
	"testing"
)

func zeroField(dxdt, x []float64, _ ...float64) {
	for i := range dxdt {
		dxdt[i] = 0
	}
}

// oscillator is the undamped harmonic oscillator x'' = -x.
func oscillator(dxdt, x []float64, _ ...float64) {
	dxdt[0] = x[1]
	dxdt[1] = -x[0]
}

func TestZeroFieldLeavesBufferZero(t *testing.T) {
	for _, scheme := range Schemes() {
		traj := make([]float64, 3*5)
		traj[0], traj[1], traj[2] = 1.0, -2.0, 0.5

		if err := Integrate(traj, 3, 5, 0.1, scheme, zeroField); err != nil {
			t.Fatalf("%s: unexpected error: %v", scheme, err)
		}

		// With a zero field slot k+1 receives exactly slot k, so every
		// slot carries the initial state.
		for s := 1; s < 5; s++ {
			for d := 0; d < 3; d++ {
				want := traj[d]
				if got := traj[s*3+d]; got != want {
					t.Errorf("%s: slot %d component %d: got %v, want %v", scheme, s, d, got, want)
				}
			}
		}
	}
}

func TestSingleEulerStep(t *testing.T) {
	for _, h := range []float64{0.1, -0.1} {
		traj := make([]float64, 2*2)
		traj[0], traj[1] = 1.0, 0.0

		if err := Integrate(traj, 2, 2, h, Euler, oscillator); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// u1 += u + h*f(u) with f(1,0) = (0,-1).
		wantX, wantV := 1.0, h*-1.0
		if traj[2] != wantX || traj[3] != wantV {
			t.Errorf("h=%v: got (%v, %v), want (%v, %v)", h, traj[2], traj[3], wantX, wantV)
		}
	}
}

func TestAdditiveWriteBack(t *testing.T) {
	traj := make([]float64, 2*2)
	traj[0], traj[1] = 3.0, -1.0
	traj[2], traj[3] = 5.0, 7.0 // pre-filled forcing in slot 1

	if err := Integrate(traj, 2, 2, 0, Euler, zeroField); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Superposition, not overwrite: slot 1 keeps its forcing content.
	if traj[2] != 8.0 || traj[3] != 6.0 {
		t.Errorf("got slot 1 = (%v, %v), want (8, 6)", traj[2], traj[3])
	}
}

func TestSingleSlotIsNoOp(t *testing.T) {
	traj := []float64{1.5, -2.5, 3.5}
	before := make([]float64, len(traj))
	copy(before, traj)

	for _, scheme := range Schemes() {
		if err := Integrate(traj, 3, 1, 0.1, scheme, oscillator); err != nil {
			t.Fatalf("%s: unexpected error: %v", scheme, err)
		}
		for i := range traj {
			if traj[i] != before[i] {
				t.Errorf("%s: buffer modified at %d: got %v, want %v", scheme, i, traj[i], before[i])
			}
		}
	}
}

func TestUnknownSchemeRejected(t *testing.T) {
	traj := make([]float64, 4)
	traj[0] = 1.0

	err := Integrate(traj, 2, 2, 0.1, Unknown, oscillator)
	if !errors.Is(err, ErrUnknownScheme) {
		t.Fatalf("got error %v, want ErrUnknownScheme", err)
	}
	for i, v := range traj[2:] {
		if v != 0 {
			t.Errorf("slot 1 written despite rejection: traj[%d] = %v", i+2, v)
		}
	}
}

func TestPreconditionErrors(t *testing.T) {
	tests := []struct {
		name  string
		traj  []float64
		dim   int
		steps int
		want  error
	}{
		{"zero dim", make([]float64, 4), 0, 2, ErrBadDimension},
		{"zero steps", make([]float64, 4), 2, 0, ErrBadStepCount},
		{"short buffer", make([]float64, 3), 2, 2, ErrSizeMismatch},
		{"long buffer", make([]float64, 5), 2, 2, ErrSizeMismatch},
	}

	for _, tt := range tests {
		err := Integrate(tt.traj, tt.dim, tt.steps, 0.1, RK4, oscillator)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got error %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestRK4OscillatorAccuracy(t *testing.T) {
	const (
		dim   = 2
		steps = 101
		h     = 0.01
	)

	traj := make([]float64, dim*steps)
	traj[0], traj[1] = 1.0, 0.0

	if err := Integrate(traj, dim, steps, h, RK4, oscillator); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tEnd := float64(steps-1) * h
	gotX, gotV := traj[(steps-1)*dim], traj[(steps-1)*dim+1]

	if math.Abs(gotX-math.Cos(tEnd)) > 1e-6 {
		t.Errorf("position error too large: got %.8f, expected %.8f", gotX, math.Cos(tEnd))
	}
	if math.Abs(gotV+math.Sin(tEnd)) > 1e-6 {
		t.Errorf("velocity error too large: got %.8f, expected %.8f", gotV, -math.Sin(tEnd))
	}
}

func TestParamsForwardedToField(t *testing.T) {
	decay := func(dxdt, x []float64, p ...float64) {
		for i := range x {
			dxdt[i] = -p[0] * x[i]
		}
	}

	traj := make([]float64, 2)
	traj[0] = 1.0
	if err := Integrate(traj, 1, 2, 0.5, Euler, decay, 0.2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := 1.0 + 0.5*(-0.2); traj[1] != want {
		t.Errorf("got %v, want %v", traj[1], want)
	}
}
