// Package capacity computes remaining seats and status tiers for the slot
// catalog. It is the single implementation of the capacity rules; every
// operation that needs seat accounting goes through it.
package capacity

import (
	"github.com/noshecambridge/booking-service/internal/domain"
	"github.com/noshecambridge/booking-service/pkg/types"
)

// Logger is the logging surface needed by the calculator: only skipped
// malformed records are ever reported.
type Logger interface {
	Warn(format string, v ...interface{})
}

// Calculator derives slot availability from a catalog and the day's
// bookings. It holds no state besides the logger and is safe for
// concurrent use.
type Calculator struct {
	logger Logger
}

// NewCalculator creates a calculator.
func NewCalculator(logger Logger) *Calculator {
	return &Calculator{logger: logger}
}

// Availability returns the catalog augmented with remaining capacity and
// status, in catalog order. A booking counts against the slot whose start
// time matches its own; records with a malformed slot reference are logged
// and skipped rather than failing the whole computation. Remaining is
// clamped at zero so an overbooked slot never reports negative seats.
//
// excludeID, when non-zero, removes that booking's contribution from the
// sums; edit re-checks use it so a booking is not counted against itself.
func (c *Calculator) Availability(slots []domain.TimeSlot, bookings []*domain.Booking, excludeID int64) []domain.SlotAvailability {
	booked := c.guestsPerSlot(bookings, excludeID)

	result := make([]domain.SlotAvailability, len(slots))
	for i, slot := range slots {
		remaining := slot.Capacity - booked[slot.Start]
		if remaining < 0 {
			remaining = 0
		}
		result[i] = domain.SlotAvailability{
			TimeSlot:  slot,
			Remaining: remaining,
			Status:    domain.StatusForRemaining(remaining),
		}
	}
	return result
}

// Remaining returns the remaining seats for the catalog slot starting at
// start. The second return value is false when no such slot exists.
func (c *Calculator) Remaining(slots []domain.TimeSlot, bookings []*domain.Booking, start types.TimeString, excludeID int64) (int, bool) {
	slot, ok := domain.FindSlot(slots, start)
	if !ok {
		return 0, false
	}

	booked := c.guestsPerSlot(bookings, excludeID)
	remaining := slot.Capacity - booked[slot.Start]
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// guestsPerSlot sums guest counts per slot start time.
func (c *Calculator) guestsPerSlot(bookings []*domain.Booking, excludeID int64) map[types.TimeString]int {
	booked := make(map[types.TimeString]int, len(bookings))
	for _, b := range bookings {
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if !b.HasValidSlot() {
			c.logger.Warn("capacity: booking id=%d has malformed slot reference %q, skipping", b.ID, b.SlotStart)
			continue
		}
		booked[b.SlotStart] += b.Guests
	}
	return booked
}
