package generation

import "errors"

var (
	// ErrInvalidRequest indicates validation or bad input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderFailure indicates the completion provider call failed.
	ErrProviderFailure = errors.New("provider failure")
)
