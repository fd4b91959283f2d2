package get_availability

import (
	"time"

	"github.com/noshecambridge/booking-service/internal/domain"
)

// Request asks for slot availability on one calendar date.
type Request struct {
	Date time.Time
}

// Response is the catalog for the date augmented with remaining capacity
// and status, in catalog order.
type Response struct {
	Date  time.Time
	Slots []domain.SlotAvailability

	// Degraded is true when the booking store could not be read and the
	// slots carry nominal capacity instead of computed capacity. The
	// query fails open so the caller can still render the catalog.
	Degraded bool
}
