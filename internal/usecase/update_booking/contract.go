package update_booking

import (
	"context"

	"github.com/noshecambridge/booking-service/internal/domain"
	bookingRepo "github.com/noshecambridge/booking-service/internal/infra/storage/booking"
	"github.com/noshecambridge/booking-service/pkg/types"
)

// BookingRepository is the store surface used by booking edits.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByDateRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, id int64, fields bookingRepo.UpdateFields) error
}

// CapacityCalculator derives remaining seats for a slot.
type CapacityCalculator interface {
	Remaining(slots []domain.TimeSlot, bookings []*domain.Booking, start types.TimeString, excludeID int64) (int, bool)
}

// TransactionManager serializes the re-admission sequence.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
