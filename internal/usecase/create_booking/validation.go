package create_booking

import (
	"fmt"
	"strings"

	"github.com/noshecambridge/booking-service/internal/domain"
	"github.com/noshecambridge/booking-service/pkg/types"
)

// validateRequest checks required fields and basic value constraints.
func validateRequest(req *Request) error {
	var missing []string
	if req.Date.IsZero() {
		missing = append(missing, "date")
	}
	if req.Slot.IsZero() {
		missing = append(missing, "timeSlot")
	}
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	if req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuests)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests exceed %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}
	return nil
}

// resolveSlot matches the requested range against the catalog. The start
// time identifies the slot; the end time, when supplied, must agree with
// the catalog entry.
func resolveSlot(slots []domain.TimeSlot, requested types.TimeRange) (domain.TimeSlot, error) {
	slot, ok := domain.FindSlot(slots, requested.Start)
	if !ok {
		return domain.TimeSlot{}, ErrInvalidSlot
	}
	if !requested.End.IsZero() && requested.End != slot.End {
		return domain.TimeSlot{}, ErrInvalidSlot
	}
	return slot, nil
}
