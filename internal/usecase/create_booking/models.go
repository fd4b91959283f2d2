package create_booking

import (
	"time"

	"github.com/noshecambridge/booking-service/pkg/types"
)

// Request is the booking admission input.
type Request struct {
	Date            time.Time       // Calendar date of the booking (time portion ignored)
	Slot            types.TimeRange // Requested slot, canonical "HH:MM-HH:MM" form
	Guests          int             // Party size, >= 1
	Name            string
	Email           string
	Phone           string
	SpecialRequests *string
}

// Response is the committed booking plus the notification outcome.
type Response struct {
	ID              int64
	Date            time.Time
	Slot            types.TimeRange
	Guests          int
	Name            string
	Email           string
	Phone           string
	SpecialRequests *string
	CreatedAt       time.Time

	// NotificationSent is false when one or both confirmation emails
	// failed. The booking itself is committed regardless.
	NotificationSent bool
}
