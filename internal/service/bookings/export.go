package bookings

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/noshecambridge/booking-service/internal/domain"
	"github.com/noshecambridge/booking-service/pkg/ptr"

	"github.com/noshecambridge/booking-service/internal/service/bookings/models"
)

var csvHeader = []string{"name", "email", "phone", "date", "time", "guests", "specialRequests"}

// Export renders bookings as CSV, either for one date or the whole table.
func (s *Service) Export(ctx context.Context, req *models.ExportRequest) (*models.ExportResponse, error) {
	var (
		bookings []*domain.Booking
		filename string
		err      error
	)

	switch {
	case req.ExportAll:
		s.logger.Info("Export: exporting all bookings")
		bookings, err = s.bookingRepo.GetAll(ctx)
		filename = "all_bookings.csv"
	case req.Date != nil && !req.Date.IsZero():
		s.logger.Info("Export: exporting bookings for %s", req.Date.Format(domain.DateFormat))
		bookings, err = s.bookingRepo.GetByDateRange(ctx, domain.DayFilter(*req.Date))
		filename = fmt.Sprintf("bookings_%s.csv", req.Date.Format(domain.DateFormat))
	default:
		return nil, fmt.Errorf("%w: either date or exportAll is required", ErrInvalidInput)
	}
	if err != nil {
		s.logger.Error("Export: repository error: %v", err)
		return nil, fmt.Errorf("%w: Export - repository error: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: Export - write header: %v", ErrInternal, err)
	}
	for _, b := range bookings {
		record := []string{
			b.Name,
			b.Email,
			b.Phone,
			b.Date.UTC().Format(domain.DateFormat),
			b.Slot().String(),
			strconv.Itoa(b.Guests),
			ptr.Deref(b.SpecialRequests),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%w: Export - write record: %v", ErrInternal, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: Export - flush: %v", ErrInternal, err)
	}

	s.logger.Info("Export: produced %s with %d rows", filename, len(bookings))
	return &models.ExportResponse{
		Filename: filename,
		CSV:      buf.Bytes(),
	}, nil
}
