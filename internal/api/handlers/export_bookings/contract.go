package export_bookings

import (
	"context"

	"github.com/noshecambridge/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	Export(ctx context.Context, req *models.ExportRequest) (*models.ExportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
