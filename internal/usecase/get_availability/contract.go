package get_availability

import (
	"context"

	"github.com/noshecambridge/booking-service/internal/domain"
)

// BookingRepository is the store surface used by availability queries.
type BookingRepository interface {
	GetByDateRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CapacityCalculator derives per-slot availability from the catalog and
// the day's bookings.
type CapacityCalculator interface {
	Availability(slots []domain.TimeSlot, bookings []*domain.Booking, excludeID int64) []domain.SlotAvailability
}

// Logger is the logging surface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
