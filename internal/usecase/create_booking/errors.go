package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when required fields are missing or malformed
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate is returned when the booking date does not parse to a real calendar date
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidSlot is returned when the requested slot is not in the catalog for that date
	ErrInvalidSlot = errors.New("create_booking: invalid time slot")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("create_booking: internal error")
)

// InsufficientCapacityError rejects an admission and carries the actual
// remaining seat count so callers can surface it to the guest.
type InsufficientCapacityError struct {
	Remaining int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("create_booking: insufficient capacity, only %d seats available", e.Remaining)
}
