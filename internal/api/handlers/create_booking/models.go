package create_booking

import (
	"strings"
	"time"

	"github.com/noshecambridge/booking-service/internal/domain"
	createBooking "github.com/noshecambridge/booking-service/internal/usecase/create_booking"
	"github.com/noshecambridge/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date            string  `json:"date" validate:"required"` // "2026-09-01"
	Time            string  `json:"time" validate:"required"` // "12:30-14:15" or "12:30"
	Guests          int     `json:"guests" validate:"required,min=1"`
	Name            string  `json:"name" validate:"required,max=100"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone" validate:"required"`
	SpecialRequests *string `json:"specialRequests,omitempty" validate:"omitempty,max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64   `json:"id"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Guests           int     `json:"guests"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	SpecialRequests  *string `json:"specialRequests,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	NotificationSent bool    `json:"notificationSent"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date and the slot reference.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	var slot types.TimeRange
	if strings.Contains(r.Time, "-") {
		slot, err = types.ParseTimeRange(r.Time)
	} else {
		slot.Start, err = types.NewTimeStringFromString(r.Time)
	}
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:            date,
		Slot:            slot,
		Guests:          r.Guests,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		Date:             resp.Date.Format(domain.DateFormat),
		Time:             resp.Slot.String(),
		Guests:           resp.Guests,
		Name:             resp.Name,
		Email:            resp.Email,
		Phone:            resp.Phone,
		SpecialRequests:  resp.SpecialRequests,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		NotificationSent: resp.NotificationSent,
	}
}
