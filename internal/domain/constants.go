package domain

// Capacity constants
const (
	// SlotCapacity is the nominal seat capacity of every slot, independent
	// of slot duration.
	SlotCapacity = 40

	// LimitedThreshold is the remaining-seats count at or below which a
	// slot is reported as "limited".
	LimitedThreshold = 10
)

// Business validation constants
const (
	MinGuests                = 1
	MaxGuests                = SlotCapacity
	MaxNameLength            = 100
	MaxSpecialRequestsLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
