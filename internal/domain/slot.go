package domain

import "github.com/noshecambridge/booking-service/pkg/types"

// SlotStatus is the three-tier availability classification of a slot.
type SlotStatus string

const (
	StatusAvailable   SlotStatus = "available"
	StatusLimited     SlotStatus = "limited"
	StatusUnavailable SlotStatus = "unavailable"
)

// TimeSlot is one bookable time window from the catalog.
type TimeSlot struct {
	Start    types.TimeString
	End      types.TimeString
	Capacity int
}

// Range returns the slot's canonical "HH:MM-HH:MM" identifier.
func (s TimeSlot) Range() types.TimeRange {
	return types.TimeRange{Start: s.Start, End: s.End}
}

// SlotAvailability is a TimeSlot augmented with remaining capacity and
// status. Derived on every query, never stored.
type SlotAvailability struct {
	TimeSlot
	Remaining int
	Status    SlotStatus
}

// StatusForRemaining derives the status tier from a remaining seat count.
func StatusForRemaining(remaining int) SlotStatus {
	switch {
	case remaining <= 0:
		return StatusUnavailable
	case remaining <= LimitedThreshold:
		return StatusLimited
	default:
		return StatusAvailable
	}
}
