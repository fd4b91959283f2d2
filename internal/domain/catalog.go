package domain

import (
	"time"

	"github.com/noshecambridge/booking-service/pkg/types"
)

// The slot catalog. Standard days offer 25 overlapping 105-minute sittings
// staggered every 30 minutes; Christmas Day runs an evening-only schedule.
// Both lists are ordered by start time.

var standardSlots = buildCatalog([][2]string{
	{"09:00", "10:45"}, {"09:30", "11:15"}, {"10:00", "11:45"}, {"10:30", "12:15"},
	{"11:00", "12:45"}, {"11:30", "13:15"}, {"12:00", "13:45"}, {"12:30", "14:15"},
	{"13:00", "14:45"}, {"13:30", "15:15"}, {"14:00", "15:45"}, {"14:30", "16:15"},
	{"15:00", "16:45"}, {"15:30", "17:15"}, {"16:00", "17:45"}, {"16:30", "18:15"},
	{"17:00", "18:45"}, {"17:30", "19:15"}, {"18:00", "19:45"}, {"18:30", "20:15"},
	{"19:00", "20:45"}, {"19:30", "21:15"}, {"20:00", "21:45"}, {"20:30", "22:15"},
	{"21:00", "22:45"},
})

var christmasSlots = buildCatalog([][2]string{
	{"17:00", "18:45"}, {"19:00", "20:45"}, {"21:00", "22:45"},
})

func buildCatalog(windows [][2]string) []TimeSlot {
	slots := make([]TimeSlot, len(windows))
	for i, w := range windows {
		slots[i] = TimeSlot{
			Start:    types.TimeString(w[0]),
			End:      types.TimeString(w[1]),
			Capacity: SlotCapacity,
		}
	}
	return slots
}

// SlotsForDate returns the ordered catalog valid on the given calendar
// date: the Christmas schedule on December 25th, the standard schedule
// otherwise. Callers receive a fresh copy and may modify it.
func SlotsForDate(date time.Time) []TimeSlot {
	source := standardSlots
	if isChristmas(date) {
		source = christmasSlots
	}
	slots := make([]TimeSlot, len(source))
	copy(slots, source)
	return slots
}

// FindSlot looks up a catalog slot by its start time.
func FindSlot(slots []TimeSlot, start types.TimeString) (TimeSlot, bool) {
	for _, s := range slots {
		if s.Start == start {
			return s, true
		}
	}
	return TimeSlot{}, false
}

func isChristmas(date time.Time) bool {
	d := date.UTC()
	return d.Month() == time.December && d.Day() == 25
}
