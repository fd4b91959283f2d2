package create_booking

import (
	"context"
	"time"

	"github.com/noshecambridge/booking-service/internal/domain"
	"github.com/noshecambridge/booking-service/pkg/types"
)

// BookingRepository is the store surface used by booking admission.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDateRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CapacityCalculator derives remaining seats for a slot.
type CapacityCalculator interface {
	Remaining(slots []domain.TimeSlot, bookings []*domain.Booking, start types.TimeString, excludeID int64) (int, bool)
}

// Notifier sends the post-commit confirmation emails. Both sends are
// best-effort.
type Notifier interface {
	SendCustomerConfirmation(ctx context.Context, booking *domain.Booking) error
	SendManagerAlert(ctx context.Context, booking *domain.Booking) error
}

// TransactionManager serializes the read-check-write admission sequence.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider yields the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
