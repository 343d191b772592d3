package dispatch

import "errors"

var (
	// ErrTooLarge is returned by Exhaustive above MaxExhaustive agents.
	ErrTooLarge = errors.New("dispatch: matrix too large for exhaustive search")

	// ErrPoolSize is returned by SolveBatch when the worker pool cannot start.
	ErrPoolSize = errors.New("dispatch: invalid worker pool size")
)
