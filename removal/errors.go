package removal

import "errors"

var (
	// ErrGraphNil is returned when a strategy receives a nil graph.
	ErrGraphNil = errors.New("removal: graph is nil")

	// ErrRemovalOutOfRange indicates n < 0 or n > |V|.
	ErrRemovalOutOfRange = errors.New("removal: count out of range")

	// ErrNeedRandSource is returned by Error when n > 0 and rng is nil.
	ErrNeedRandSource = errors.New("removal: rng is required")

	// ErrUnknownStrategy is returned by Lookup for an unregistered name.
	ErrUnknownStrategy = errors.New("removal: unknown strategy")
)
