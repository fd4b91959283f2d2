package domain

import (
	"time"

	"github.com/noshecambridge/booking-service/pkg/types"
)

// Booking represents a table reservation.
// Date is stored at day granularity as a UTC day boundary; the slot is
// addressed by its start and end times of day.
type Booking struct {
	ID        int64
	Date      time.Time
	SlotStart types.TimeString
	SlotEnd   types.TimeString
	Guests    int

	Name  string
	Email string
	Phone string

	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slot returns the booking's slot identifier as a time range.
func (b *Booking) Slot() types.TimeRange {
	return types.TimeRange{Start: b.SlotStart, End: b.SlotEnd}
}

// HasValidSlot reports whether the stored slot reference parses as a time
// of day. Records failing this are skipped by capacity accounting.
func (b *Booking) HasValidSlot() bool {
	return b.SlotStart.Validate() == nil
}

// BookingsFilter selects bookings by date range. Both bounds are
// inclusive UTC day boundaries.
type BookingsFilter struct {
	StartDate time.Time
	EndDate   time.Time
}

// DayFilter builds a filter covering the UTC day containing date.
func DayFilter(date time.Time) BookingsFilter {
	start, end := UTCDayWindow(date)
	return BookingsFilter{StartDate: start, EndDate: end}
}

// UTCDayWindow normalizes date to the [00:00:00.000, 23:59:59.999] UTC
// window of its calendar day.
func UTCDayWindow(date time.Time) (time.Time, time.Time) {
	d := date.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
