package models

import (
	"time"

	"github.com/noshecambridge/booking-service/internal/domain"
)

// BookingResponse is the service-level view of one booking.
type BookingResponse struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	TimeSlot        string  `json:"timeSlot"`
	Guests          int     `json:"guests"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// BookingListResponse is an ordered list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// GetBookingsRequest asks for all bookings on one calendar date.
type GetBookingsRequest struct {
	Date time.Time
}

// WeeklyCountsRequest asks for per-weekday booking counts over a range.
type WeeklyCountsRequest struct {
	Start time.Time
	End   time.Time
}

// WeeklyCountsResponse holds seven buckets, Monday first.
type WeeklyCountsResponse struct {
	Counts [7]int `json:"bookings"`
}

// ExportRequest selects what to export: one day or everything.
type ExportRequest struct {
	Date      *time.Time
	ExportAll bool
}

// ExportResponse carries the rendered CSV and a suggested filename.
type ExportResponse struct {
	Filename string
	CSV      []byte
}

// FromDomainBooking converts a domain booking to its response form.
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		Date:            b.Date.UTC().Format(time.RFC3339),
		TimeSlot:        b.Slot().String(),
		Guests:          b.Guests,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: out}
}
