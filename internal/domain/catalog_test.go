package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noshecambridge/booking-service/pkg/types"
)

func TestSlotsForDate_Standard(t *testing.T) {
	t.Parallel()

	slots := SlotsForDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, slots, 25)

	assert.Equal(t, types.TimeString("09:00"), slots[0].Start)
	assert.Equal(t, types.TimeString("10:45"), slots[0].End)
	assert.Equal(t, types.TimeString("21:00"), slots[24].Start)
	assert.Equal(t, types.TimeString("22:45"), slots[24].End)

	for i, slot := range slots {
		assert.Equal(t, SlotCapacity, slot.Capacity)

		// 105-minute sittings staggered every 30 minutes
		end, err := slot.Start.AddMinutes(105)
		require.NoError(t, err)
		assert.Equal(t, end, slot.End)

		if i > 0 {
			next, err := slots[i-1].Start.AddMinutes(30)
			require.NoError(t, err)
			assert.Equal(t, next, slot.Start)
		}
	}
}

func TestSlotsForDate_ChristmasDay(t *testing.T) {
	t.Parallel()

	slots := SlotsForDate(time.Date(2026, 12, 25, 12, 0, 0, 0, time.UTC))
	require.Len(t, slots, 3)

	assert.Equal(t, types.TimeString("17:00"), slots[0].Start)
	assert.Equal(t, types.TimeString("19:00"), slots[1].Start)
	assert.Equal(t, types.TimeString("21:00"), slots[2].Start)
	for _, slot := range slots {
		assert.Equal(t, SlotCapacity, slot.Capacity)
	}
}

func TestSlotsForDate_ChristmasEveIsStandard(t *testing.T) {
	t.Parallel()

	assert.Len(t, SlotsForDate(time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)), 25)
	assert.Len(t, SlotsForDate(time.Date(2026, 12, 26, 0, 0, 0, 0, time.UTC)), 25)
}

func TestSlotsForDate_ReturnsCopy(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	first := SlotsForDate(date)
	first[0].Capacity = 1

	second := SlotsForDate(date)
	assert.Equal(t, SlotCapacity, second[0].Capacity)
}

func TestFindSlot(t *testing.T) {
	t.Parallel()

	slots := SlotsForDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	slot, ok := FindSlot(slots, "12:30")
	require.True(t, ok)
	assert.Equal(t, types.TimeString("14:15"), slot.End)

	_, ok = FindSlot(slots, "12:45")
	assert.False(t, ok)
}

func TestStatusForRemaining(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		remaining int
		want      SlotStatus
	}{
		{remaining: 40, want: StatusAvailable},
		{remaining: 11, want: StatusAvailable},
		{remaining: 10, want: StatusLimited},
		{remaining: 1, want: StatusLimited},
		{remaining: 0, want: StatusUnavailable},
		{remaining: -5, want: StatusUnavailable},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, StatusForRemaining(tc.remaining), "remaining=%d", tc.remaining)
	}
}

func TestUTCDayWindow(t *testing.T) {
	t.Parallel()

	start, end := UTCDayWindow(time.Date(2026, 9, 1, 15, 42, 7, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 1, 23, 59, 59, 999000000, time.UTC), end)
}
