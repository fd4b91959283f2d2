package types

import (
	"errors"
	"fmt"
	"strings"
)

// TimeRange is a start-end pair in "HH:MM-HH:MM" form, the canonical wire
// representation of a slot identifier.
type TimeRange struct {
	Start TimeString
	End   TimeString
}

var (
	// ErrInvalidTimeRange is returned when a value does not parse as "HH:MM-HH:MM"
	ErrInvalidTimeRange = errors.New("invalid time range format, expected HH:MM-HH:MM")
)

// NewTimeRange validates both endpoints and their ordering.
func NewTimeRange(start, end TimeString) (TimeRange, error) {
	if err := start.Validate(); err != nil {
		return TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if err := end.Validate(); err != nil {
		return TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if !start.IsBefore(end) {
		return TimeRange{}, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidTimeRange, start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

// ParseTimeRange parses an "HH:MM-HH:MM" string.
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	start, err := NewTimeStringFromString(parts[0])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	end, err := NewTimeStringFromString(parts[1])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	return NewTimeRange(start, end)
}

// String returns the "HH:MM-HH:MM" representation.
func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// IsZero reports whether both endpoints are empty.
func (r TimeRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}
