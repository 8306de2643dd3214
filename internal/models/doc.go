// Package models provides example vector fields consumed by the
// stepping engine in package ode.
//
// Each model is a small struct holding its physical parameters, with an
// Eval method satisfying [ode.VectorField]:
//
//   - [Lorenz96]: the cyclic lattice system of Lorenz (1996), chaotic
//     for sufficient forcing
//   - [MeanReversion]: scalar mean-reverting drift, the deterministic
//     part of an Ornstein-Uhlenbeck process
//
// Domain minimums (such as the Lorenz 96 four-site floor) are owned by
// the models, not the engine: call ValidateDim before integrating.
package models
