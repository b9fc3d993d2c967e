package solver

import "errors"

var (
	// ErrBadDimensions indicates a non-positive wave width or height.
	ErrBadDimensions = errors.New("solver: wave dimensions must be positive")
	// ErrNoPatterns indicates an empty pattern set.
	ErrNoPatterns = errors.New("solver: pattern set must not be empty")
	// ErrBadWeights indicates a weight table whose length does not match the
	// pattern count or that contains a non-positive weight.
	ErrBadWeights = errors.New("solver: weights must be positive and match the pattern count")
	// ErrBadPropagator indicates a compatibility table with a wrong shape or
	// an out-of-range pattern id.
	ErrBadPropagator = errors.New("solver: malformed compatibility table")
	// ErrContradiction indicates a cell whose possibility set became empty.
	// The solve failed; retry with fresh randomness.
	ErrContradiction = errors.New("solver: contradiction reached")
	// ErrStepLimit indicates Run hit its observation budget before the wave
	// was fully decided.
	ErrStepLimit = errors.New("solver: observation step limit exceeded")
)
