package get_availability

import (
	"context"
	"fmt"

	"github.com/noshecambridge/booking-service/internal/domain"
)

// UseCase computes slot availability for a date. Read-only.
type UseCase struct {
	bookingRepo BookingRepository
	calculator  CapacityCalculator
	logger      Logger
}

// NewUseCase creates the availability query use case.
func NewUseCase(repo BookingRepository, calculator CapacityCalculator, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: repo,
		calculator:  calculator,
		logger:      logger,
	}
}

// Execute returns the catalog for the date with remaining seats and
// status per slot. A store failure does not fail the query: the catalog
// is returned at nominal capacity with Degraded set, so the display side
// fails open instead of blocking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dayStart, _ := domain.UTCDayWindow(req.Date)
	slots := domain.SlotsForDate(req.Date)

	bookings, err := uc.bookingRepo.GetByDateRange(ctx, domain.DayFilter(req.Date))
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings for %s, serving nominal capacity: %v",
			req.Date.Format(domain.DateFormat), err)
		return &Response{
			Date:     dayStart,
			Slots:    uc.calculator.Availability(slots, nil, 0),
			Degraded: true,
		}, nil
	}

	availability := uc.calculator.Availability(slots, bookings, 0)

	uc.logger.Info("GetAvailability: date=%s slots=%d bookings=%d",
		req.Date.Format(domain.DateFormat), len(availability), len(bookings))

	return &Response{
		Date:  dayStart,
		Slots: availability,
	}, nil
}
