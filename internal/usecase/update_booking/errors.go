package update_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the id is missing or no fields are supplied
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrInvalidSlot is returned when the target slot is not in the catalog for the target date
	ErrInvalidSlot = errors.New("update_booking: invalid time slot")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("update_booking: internal error")
)

// InsufficientCapacityError rejects an edit and carries the actual
// remaining seat count for the target slot, the booking's own prior
// contribution excluded.
type InsufficientCapacityError struct {
	Remaining int
}

func (e *InsufficientCapacityError) Error() string {
	return fmt.Sprintf("update_booking: insufficient capacity, only %d seats available", e.Remaining)
}
