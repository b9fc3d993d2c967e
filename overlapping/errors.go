package overlapping

import "errors"

var (
	// ErrBadPatternSize indicates a pattern size below 1.
	ErrBadPatternSize = errors.New("overlapping: pattern size must be at least 1")
	// ErrBadSymmetry indicates a symmetry count outside 1..8.
	ErrBadSymmetry = errors.New("overlapping: symmetry must be between 1 and 8")
	// ErrBadOutputSize indicates output dimensions that cannot host a single
	// pattern window.
	ErrBadOutputSize = errors.New("overlapping: output must fit at least one pattern")
	// ErrNoPatterns indicates a degenerate sample from which no pattern
	// window could be extracted.
	ErrNoPatterns = errors.New("overlapping: no patterns extracted from sample")
	// ErrGroundContradiction indicates that pinning the ground pattern to the
	// bottom row has no consistent completion. This is a configuration error;
	// retrying with a new seed cannot help.
	ErrGroundContradiction = errors.New("overlapping: ground constraint contradicts the pattern set")
)
