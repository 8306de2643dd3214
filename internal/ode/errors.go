package ode

import "errors"

// Domain errors for stepper preconditions. All are checked before any
// write to the trajectory buffer.
var (
	// ErrUnknownScheme indicates the Unknown sentinel (or any value
	// outside the registry) was passed to a stepper.
	ErrUnknownScheme = errors.New("ode: unknown integration scheme")

	// ErrBadDimension indicates a state dimension below 1.
	ErrBadDimension = errors.New("ode: state dimension must be at least 1")

	// ErrBadStepCount indicates a trajectory of fewer than 1 time slots.
	ErrBadStepCount = errors.New("ode: step count must be at least 1")

	// ErrSizeMismatch indicates a trajectory buffer whose length does
	// not equal dim*steps.
	ErrSizeMismatch = errors.New("ode: trajectory length does not equal dim*steps")
)
