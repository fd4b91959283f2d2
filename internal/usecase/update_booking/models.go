package update_booking

import (
	"time"

	"github.com/noshecambridge/booking-service/pkg/types"
)

// Request is a partial edit of an existing booking. Nil fields are left
// unchanged. When any of Date, Slot or Guests is present the admission
// check re-runs against the target slot, excluding the booking's own
// prior contribution.
type Request struct {
	BookingID       int64
	Date            *time.Time
	Slot            *types.TimeRange
	Guests          *int
	Name            *string
	Email           *string
	Phone           *string
	SpecialRequests *string
}

// needsAdmissionCheck reports whether the edit touches capacity-relevant
// fields.
func (r *Request) needsAdmissionCheck() bool {
	return r.Date != nil || r.Slot != nil || r.Guests != nil
}

// isEmpty reports whether the edit carries no fields at all.
func (r *Request) isEmpty() bool {
	return r.Date == nil && r.Slot == nil && r.Guests == nil &&
		r.Name == nil && r.Email == nil && r.Phone == nil && r.SpecialRequests == nil
}

// Response reports the updated booking id.
type Response struct {
	BookingID int64
}
