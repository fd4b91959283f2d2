package get_availability

import "errors"

var (
	// ErrInvalidInput is returned when the date is missing
	ErrInvalidInput = errors.New("get_availability: invalid input data")
)
