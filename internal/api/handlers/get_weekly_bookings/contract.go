package get_weekly_bookings

import (
	"context"

	"github.com/noshecambridge/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	WeeklyCounts(ctx context.Context, req *models.WeeklyCountsRequest) (*models.WeeklyCountsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
