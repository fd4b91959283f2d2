package update_booking

import (
	"strings"
	"time"

	"github.com/noshecambridge/booking-service/internal/domain"
	updateBooking "github.com/noshecambridge/booking-service/internal/usecase/update_booking"
	"github.com/noshecambridge/booking-service/pkg/types"
)

// UpdateBookingRequest HTTP request model. All fields except BookingID
// are optional.
type UpdateBookingRequest struct {
	BookingID       int64   `json:"bookingId"`
	Date            *string `json:"date,omitempty"` // "2026-09-01"
	Time            *string `json:"time,omitempty"` // "12:30-14:15" or "12:30"
	Guests          *int    `json:"guests,omitempty"`
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// UpdateBookingResponse HTTP response model
type UpdateBookingResponse struct {
	BookingID int64 `json:"bookingId"`
	Updated   bool  `json:"updated"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date and slot reference when present.
func (r *UpdateBookingRequest) ToUseCaseRequest() (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		BookingID:       r.BookingID,
		Guests:          r.Guests,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		SpecialRequests: r.SpecialRequests,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.Time != nil {
		var (
			slot types.TimeRange
			err  error
		)
		if strings.Contains(*r.Time, "-") {
			slot, err = types.ParseTimeRange(*r.Time)
		} else {
			slot.Start, err = types.NewTimeStringFromString(*r.Time)
		}
		if err != nil {
			return nil, err
		}
		req.Slot = &slot
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *updateBooking.Response) *UpdateBookingResponse {
	return &UpdateBookingResponse{
		BookingID: resp.BookingID,
		Updated:   true,
	}
}
