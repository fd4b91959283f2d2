package update_booking

import (
	"fmt"

	"github.com/noshecambridge/booking-service/internal/domain"
)

// validateRequest checks the id and the supplied fields.
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if req.isEmpty() {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if req.Guests != nil && *req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}
	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must be a valid calendar date", ErrInvalidInput)
	}
	if req.Name != nil && (*req.Name == "" || len(*req.Name) > domain.MaxNameLength) {
		return fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if req.Email != nil && *req.Email == "" {
		return fmt.Errorf("%w: email must not be empty", ErrInvalidInput)
	}
	if req.Phone != nil && *req.Phone == "" {
		return fmt.Errorf("%w: phone must not be empty", ErrInvalidInput)
	}
	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests exceed %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}
	return nil
}
