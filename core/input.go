package core

import "github.com/go-gl/mathgl/mgl64"

// InputState is the per-frame snapshot of player intent
type InputState struct {
	Up, Down, Left, Right bool
	Attack                bool
	Item                  bool
	Confirm               bool
	Cancel                bool

	// Move is an optional analog vector, already limited to unit length
	// Zero means "no analog input"; digital flags are used instead
	Move mgl64.Vec2
}

// InputProvider exposes device state to the simulation
type InputProvider interface {
	// State returns the current flags
	State() InputState

	// AttackDuration returns the current hold time while attack is held
	// After release it returns the completed hold duration once, then zero
	AttackDuration() float64

	// ResetAttackCharge discards any accumulated hold
	// If attack is still held the hold restarts from now
	ResetAttackCharge()
}
