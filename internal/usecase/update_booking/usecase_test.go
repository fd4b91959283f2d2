package update_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noshecambridge/booking-service/internal/capacity"
	"github.com/noshecambridge/booking-service/internal/domain"
	bookingRepo "github.com/noshecambridge/booking-service/internal/infra/storage/booking"
	"github.com/noshecambridge/booking-service/pkg/ptr"
	"github.com/noshecambridge/booking-service/pkg/types"
)

type fakeRepo struct {
	current   *domain.Booking
	bookings  []*domain.Booking
	updateErr error

	updatedID     int64
	updatedFields *bookingRepo.UpdateFields
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if r.current == nil || r.current.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return r.current, nil
}

func (r *fakeRepo) GetByDateRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return r.bookings, nil
}

func (r *fakeRepo) Update(ctx context.Context, id int64, fields bookingRepo.UpdateFields) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updatedID = id
	r.updatedFields = &fields
	return nil
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

var testDay = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func storedBooking(id int64, start types.TimeString, guests int) *domain.Booking {
	end, _ := start.AddMinutes(105)
	return &domain.Booking{
		ID:        id,
		Date:      testDay,
		SlotStart: start,
		SlotEnd:   end,
		Guests:    guests,
		Name:      "Jo Blythe",
		Email:     "jo@example.com",
		Phone:     "07700 900123",
	}
}

func newUseCase(repo *fakeRepo, tx *fakeTxManager) *UseCase {
	return NewUseCase(repo, capacity.NewCalculator(testLogger{}), tx, testLogger{})
}

func TestExecute_ContactOnlyEditSkipsAdmissionCheck(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{current: storedBooking(5, "12:30", 4)}
	tx := &fakeTxManager{}
	uc := newUseCase(repo, tx)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		Name:      ptr.Ptr("Jo Byrne"),
		Phone:     ptr.Ptr("07700 900456"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.BookingID)
	assert.Equal(t, 0, tx.calls)
	require.NotNil(t, repo.updatedFields)
	assert.Equal(t, "Jo Byrne", *repo.updatedFields.Name)
	assert.Nil(t, repo.updatedFields.Guests)
}

func TestExecute_GuestIncreaseExcludesOwnContribution(t *testing.T) {
	t.Parallel()

	// Slot holds 36 of 40; 10 of those belong to the booking being edited.
	repo := &fakeRepo{
		current: storedBooking(5, "12:30", 10),
		bookings: []*domain.Booking{
			storedBooking(5, "12:30", 10),
			storedBooking(6, "12:30", 26),
		},
	}
	tx := &fakeTxManager{}
	uc := newUseCase(repo, tx)

	// 14 fits because the booking's own 10 are excluded: 40-26=14 free
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		Guests:    ptr.Ptr(14),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.BookingID)
	assert.Equal(t, 1, tx.calls)
	require.NotNil(t, repo.updatedFields)
	assert.Equal(t, 14, *repo.updatedFields.Guests)
}

func TestExecute_GuestIncreaseBeyondCapacityRejected(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		current: storedBooking(5, "12:30", 10),
		bookings: []*domain.Booking{
			storedBooking(5, "12:30", 10),
			storedBooking(6, "12:30", 26),
		},
	}
	uc := newUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		Guests:    ptr.Ptr(15),
	})
	var capacityErr *InsufficientCapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 14, capacityErr.Remaining)
	assert.Nil(t, repo.updatedFields)
}

func TestExecute_SlotMoveCheckedAgainstTargetSlot(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		current: storedBooking(5, "12:30", 4),
		bookings: []*domain.Booking{
			storedBooking(5, "12:30", 4),
			storedBooking(6, "19:00", 38),
		},
	}
	uc := newUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		Slot:      &types.TimeRange{Start: "19:00", End: "20:45"},
	})
	var capacityErr *InsufficientCapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 2, capacityErr.Remaining)
}

func TestExecute_SlotMoveNormalizesStoredSlot(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		current:  storedBooking(5, "12:30", 4),
		bookings: []*domain.Booking{storedBooking(5, "12:30", 4)},
	}
	uc := newUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		Slot:      &types.TimeRange{Start: "19:00"},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updatedFields)
	assert.Equal(t, types.TimeString("19:00"), *repo.updatedFields.SlotStart)
	assert.Equal(t, types.TimeString("20:45"), *repo.updatedFields.SlotEnd)
}

func TestExecute_MoveToUnknownSlot(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		current:  storedBooking(5, "12:30", 4),
		bookings: []*domain.Booking{storedBooking(5, "12:30", 4)},
	}
	uc := newUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		Slot:      &types.TimeRange{Start: "12:45", End: "14:30"},
	})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_BookingNotFound(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeRepo{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 99,
		Guests:    ptr.Ptr(2),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ContactEditNotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{updateErr: bookingRepo.ErrBookingNotFound}
	uc := newUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 99,
		Name:      ptr.Ptr("Jo Byrne"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_Validation(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeRepo{}, &fakeTxManager{})

	testCases := []struct {
		name string
		req  *Request
	}{
		{name: "missing id", req: &Request{Guests: ptr.Ptr(2)}},
		{name: "no fields", req: &Request{BookingID: 5}},
		{name: "zero guests", req: &Request{BookingID: 5, Guests: ptr.Ptr(0)}},
		{name: "empty name", req: &Request{BookingID: 5, Name: ptr.Ptr("")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryFailureWrapped(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		current:   storedBooking(5, "12:30", 4),
		updateErr: errors.New("connection refused"),
	}
	uc := newUseCase(repo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		Guests:    ptr.Ptr(2),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
