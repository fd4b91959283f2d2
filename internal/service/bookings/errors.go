package bookings

import "errors"

var (
	// ErrInvalidInput is returned on malformed input
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("service: internal error")
)
