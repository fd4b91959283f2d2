package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/noshecambridge/booking-service/internal/domain"
	bookingRepo "github.com/noshecambridge/booking-service/internal/infra/storage/booking"
	"github.com/noshecambridge/booking-service/internal/service/bookings/models"
)

// Service covers the booking operations that need no capacity logic:
// lookups, the admin day listing, weekly counts, cancellation and export.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the bookings service.
func NewService(repo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: repo,
		logger:      logger,
	}
}

// GetByDate returns all bookings on one calendar date, ordered by slot
// start. Used by the admin dashboard.
func (s *Service) GetByDate(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.logger.Info("GetByDate: fetching bookings for %s", req.Date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetByDateRange(ctx, domain.DayFilter(req.Date))
	if err != nil {
		s.logger.Error("GetByDate: repository error for %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d bookings for %s", len(bookings), req.Date.Format(domain.DateFormat))
	return models.FromDomainBookingList(bookings), nil
}

// WeeklyCounts buckets the bookings of a date range by weekday,
// Monday first. Used by the admin dashboard chart.
func (s *Service) WeeklyCounts(ctx context.Context, req *models.WeeklyCountsRequest) (*models.WeeklyCountsResponse, error) {
	if req.Start.IsZero() || req.End.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if req.End.Before(req.Start) {
		return nil, fmt.Errorf("%w: end is before start", ErrInvalidInput)
	}

	startDay, _ := domain.UTCDayWindow(req.Start)
	_, endDay := domain.UTCDayWindow(req.End)

	bookings, err := s.bookingRepo.GetByDateRange(ctx, domain.BookingsFilter{StartDate: startDay, EndDate: endDay})
	if err != nil {
		s.logger.Error("WeeklyCounts: repository error: %v", err)
		return nil, fmt.Errorf("%w: WeeklyCounts - repository error: %v", ErrInternal, err)
	}

	var resp models.WeeklyCountsResponse
	for _, b := range bookings {
		// time.Weekday starts on Sunday; shift so index 0 is Monday
		idx := (int(b.Date.UTC().Weekday()) + 6) % 7
		resp.Counts[idx]++
	}

	s.logger.Info("WeeklyCounts: %d bookings between %s and %s",
		len(bookings), startDay.Format(domain.DateFormat), endDay.Format(domain.DateFormat))
	return &resp, nil
}

// Cancel hard-deletes a booking. Cancelling an id that does not exist is
// not an error: the end state is identical, so the call is idempotent.
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	s.logger.Info("Cancel: deleting booking id=%d", bookingID)

	err := s.bookingRepo.Delete(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Info("Cancel: booking id=%d already absent", bookingID)
			return nil
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully deleted booking id=%d", bookingID)
	return nil
}
