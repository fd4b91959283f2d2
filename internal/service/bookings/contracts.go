package bookings

import (
	"context"

	"github.com/noshecambridge/booking-service/internal/domain"
)

// BookingRepository is the store surface used by the service.
type BookingRepository interface {
	GetByDateRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	GetAll(ctx context.Context) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging surface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
