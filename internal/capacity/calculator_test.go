package capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noshecambridge/booking-service/internal/domain"
	"github.com/noshecambridge/booking-service/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Warn(format string, v ...interface{}) {}

type recordingLogger struct {
	warns int
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warns++
}

func testSlots() []domain.TimeSlot {
	return domain.SlotsForDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
}

func booking(id int64, start types.TimeString, guests int) *domain.Booking {
	end, _ := start.AddMinutes(105)
	return &domain.Booking{
		ID:        id,
		SlotStart: start,
		SlotEnd:   end,
		Guests:    guests,
	}
}

func TestAvailability_NoBookings(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(noopLogger{})
	result := calc.Availability(testSlots(), nil, 0)

	require.Len(t, result, 25)
	for _, slot := range result {
		assert.Equal(t, domain.SlotCapacity, slot.Remaining)
		assert.Equal(t, domain.StatusAvailable, slot.Status)
	}
}

func TestAvailability_CountsOnlyMatchingSlot(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(noopLogger{})
	bookings := []*domain.Booking{
		booking(1, "12:30", 20),
		booking(2, "12:30", 15),
		booking(3, "19:00", 4),
	}

	result := calc.Availability(testSlots(), bookings, 0)

	byStart := make(map[types.TimeString]domain.SlotAvailability, len(result))
	for _, s := range result {
		byStart[s.Start] = s
	}

	assert.Equal(t, 5, byStart["12:30"].Remaining)
	assert.Equal(t, domain.StatusLimited, byStart["12:30"].Status)

	assert.Equal(t, 36, byStart["19:00"].Remaining)
	assert.Equal(t, domain.StatusAvailable, byStart["19:00"].Status)

	// the overlapping neighbours are untouched
	assert.Equal(t, domain.SlotCapacity, byStart["12:00"].Remaining)
	assert.Equal(t, domain.SlotCapacity, byStart["13:00"].Remaining)
}

func TestAvailability_FullSlotClampsAtZero(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(noopLogger{})
	bookings := []*domain.Booking{
		booking(1, "18:00", 30),
		booking(2, "18:00", 15),
	}

	result := calc.Availability(testSlots(), bookings, 0)
	for _, s := range result {
		if s.Start == "18:00" {
			assert.Equal(t, 0, s.Remaining)
			assert.Equal(t, domain.StatusUnavailable, s.Status)
		}
	}
}

func TestAvailability_SkipsMalformedSlotReference(t *testing.T) {
	t.Parallel()

	log := &recordingLogger{}
	calc := NewCalculator(log)
	bookings := []*domain.Booking{
		booking(1, "12:30", 10),
		{ID: 2, SlotStart: "garbage", Guests: 40},
	}

	result := calc.Availability(testSlots(), bookings, 0)

	for _, s := range result {
		if s.Start == "12:30" {
			assert.Equal(t, 30, s.Remaining)
		}
	}
	assert.Equal(t, 1, log.warns)
}

func TestAvailability_PreservesCatalogOrder(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(noopLogger{})
	slots := testSlots()
	result := calc.Availability(slots, nil, 0)

	require.Len(t, result, len(slots))
	for i := range slots {
		assert.Equal(t, slots[i].Start, result[i].Start)
	}
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(noopLogger{})
	bookings := []*domain.Booking{
		booking(1, "12:30", 35),
	}

	remaining, ok := calc.Remaining(testSlots(), bookings, "12:30", 0)
	require.True(t, ok)
	assert.Equal(t, 5, remaining)

	// a 5-guest party fits, a 6-guest party does not
	assert.GreaterOrEqual(t, remaining, 5)
	assert.Less(t, remaining, 6)
}

func TestRemaining_UnknownSlot(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(noopLogger{})
	_, ok := calc.Remaining(testSlots(), nil, "12:45", 0)
	assert.False(t, ok)
}

func TestRemaining_ExcludesOwnBooking(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(noopLogger{})
	bookings := []*domain.Booking{
		booking(7, "12:30", 10),
		booking(8, "12:30", 6),
	}

	remaining, ok := calc.Remaining(testSlots(), bookings, "12:30", 7)
	require.True(t, ok)
	assert.Equal(t, 34, remaining)

	remaining, ok = calc.Remaining(testSlots(), bookings, "12:30", 0)
	require.True(t, ok)
	assert.Equal(t, 24, remaining)
}

func TestRemaining_OverbookedClampsAtZero(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(noopLogger{})
	bookings := []*domain.Booking{
		booking(1, "20:00", 45),
	}

	remaining, ok := calc.Remaining(testSlots(), bookings, "20:00", 0)
	require.True(t, ok)
	assert.Equal(t, 0, remaining)
}
