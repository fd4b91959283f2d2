package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the given id
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBuildQuery is returned when building a SQL query fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrNoFields is returned when a partial update carries no fields
	ErrNoFields = errors.New("booking.repository: no fields to update")
)
