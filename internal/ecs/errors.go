package ecs

import "errors"

var (
	// ErrInvariant marks a broken world invariant. Callers treat it as fatal.
	ErrInvariant = errors.New("world invariant violated")

	// ErrStaleEntity is wrapped when an operation targets a destroyed entity.
	ErrStaleEntity = errors.New("stale or dead entity")
)
