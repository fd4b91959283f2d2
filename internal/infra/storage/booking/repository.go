package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/noshecambridge/booking-service/internal/domain"
	"github.com/noshecambridge/booking-service/pkg/dbmetrics"
	"github.com/noshecambridge/booking-service/pkg/psqlbuilder"
	"github.com/noshecambridge/booking-service/pkg/types"
)

// Repository is the Postgres booking store.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and fills in its id and timestamps.
// If the context carries an active transaction it is used, which is how
// the admission check serializes the read-check-write sequence.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_date",
			"slot_start",
			"slot_end",
			"guests",
			"name",
			"email",
			"phone",
			"special_requests",
		).
		Values(
			booking.Date,
			booking.SlotStart,
			booking.SlotEnd,
			booking.Guests,
			booking.Name,
			booking.Email,
			booking.Phone,
			booking.SpecialRequests,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID fetches one booking.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectBookings().Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return booking, nil
}

// GetByDateRange fetches all bookings whose date falls inside the filter
// window, ordered by date then slot start. Inside a transaction the rows
// are locked with FOR UPDATE so concurrent admission checks for the same
// day serialize instead of both observing stale capacity.
func (r *Repository) GetByDateRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectBookings().
		Where(squirrel.GtOrEq{"booking_date": filter.StartDate}).
		Where(squirrel.LtOrEq{"booking_date": filter.EndDate}).
		OrderBy("booking_date ASC", "slot_start ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetAll fetches every booking, ordered by date then slot start.
// Used by the full CSV export.
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		OrderBy("booking_date ASC", "slot_start ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateFields is a partial update: nil fields are left untouched.
type UpdateFields struct {
	Date            *time.Time
	SlotStart       *types.TimeString
	SlotEnd         *types.TimeString
	Guests          *int
	Name            *string
	Email           *string
	Phone           *string
	SpecialRequests *string
}

// IsEmpty reports whether no field is set.
func (f UpdateFields) IsEmpty() bool {
	return f.Date == nil && f.SlotStart == nil && f.SlotEnd == nil && f.Guests == nil &&
		f.Name == nil && f.Email == nil && f.Phone == nil && f.SpecialRequests == nil
}

// Update applies a partial update to one booking.
func (r *Repository) Update(ctx context.Context, id int64, fields UpdateFields) error {
	if fields.IsEmpty() {
		return ErrNoFields
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if fields.Date != nil {
		builder = builder.Set("booking_date", *fields.Date)
	}
	if fields.SlotStart != nil {
		builder = builder.Set("slot_start", *fields.SlotStart)
	}
	if fields.SlotEnd != nil {
		builder = builder.Set("slot_end", *fields.SlotEnd)
	}
	if fields.Guests != nil {
		builder = builder.Set("guests", *fields.Guests)
	}
	if fields.Name != nil {
		builder = builder.Set("name", *fields.Name)
	}
	if fields.Email != nil {
		builder = builder.Set("email", *fields.Email)
	}
	if fields.Phone != nil {
		builder = builder.Set("phone", *fields.Phone)
	}
	if fields.SpecialRequests != nil {
		builder = builder.Set("special_requests", *fields.SpecialRequests)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete removes a booking. Deleting an absent id returns
// ErrBookingNotFound; the caller decides whether that is an error.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"booking_date",
		"slot_start",
		"slot_end",
		"guests",
		"name",
		"email",
		"phone",
		"special_requests",
		"created_at",
		"updated_at",
	).From("bookings")
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Date,
		&booking.SlotStart,
		&booking.SlotEnd,
		&booking.Guests,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.SpecialRequests,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}
