package profile

import "errors"

var (
	// ErrNotFound indicates no profile exists for the user.
	ErrNotFound = errors.New("profile not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
