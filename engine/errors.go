package engine

import "errors"

var (
	// ErrNoSeeds is returned when the seed set is empty.
	ErrNoSeeds = errors.New("engine: seed set must be non-empty")

	// ErrTooManySeeds is returned when the queue variant, which takes a
	// single seed column per the original interface, is given more
	// than one.
	ErrTooManySeeds = errors.New("engine: queue variant accepts exactly one seed")

	// ErrInvalidEpsilon is returned when the heap variant's epsilon is
	// not strictly positive.
	ErrInvalidEpsilon = errors.New("engine: epsilon must be > 0")

	// ErrInvalidDegree is returned when the queue variant's Taylor
	// degree is not a positive integer.
	ErrInvalidDegree = errors.New("engine: degree must be >= 1")

	// ErrInvalidTolerance is returned when tol is outside (0, 1].
	ErrInvalidTolerance = errors.New("engine: tol must be in (0, 1]")

	// ErrInvalidMaxSteps is returned when the resolved step budget is
	// below 1. A non-positive MaxSteps falls back to the node count, so
	// this happens only for a graph with no nodes.
	ErrInvalidMaxSteps = errors.New("engine: maxsteps must be >= 1")
)
