// Package service manages long-lived infrastructure around the game loop:
// the terminal screen and the audio backend
package service

import "errors"

var (
	ErrDuplicate         = errors.New("service already registered")
	ErrNotFound          = errors.New("service not found")
	ErrMissingDependency = errors.New("service depends on unregistered service")
	ErrCycle             = errors.New("circular dependency detected in services")
)

// Service defines the lifecycle of an infrastructure subsystem
//
// Lifecycle:
//  1. Construction
//  2. Init() - acquire resources, in dependency order
//  3. Start() - launch background work
//  4. [runtime operation]
//  5. Stop() - halt and release, in reverse order
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init() error
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent
	Stop() error
}
