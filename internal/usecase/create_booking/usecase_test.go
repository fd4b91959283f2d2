package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noshecambridge/booking-service/internal/capacity"
	"github.com/noshecambridge/booking-service/internal/domain"
	"github.com/noshecambridge/booking-service/pkg/types"
)

type fakeRepo struct {
	bookings  []*domain.Booking
	getErr    error
	createErr error
	created   *domain.Booking
}

func (r *fakeRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	booking.ID = 101
	booking.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	r.created = booking
	return booking, nil
}

func (r *fakeRepo) GetByDateRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.bookings, nil
}

type fakeNotifier struct {
	customerErr error
	managerErr  error
	customer    int
	manager     int
}

func (n *fakeNotifier) SendCustomerConfirmation(ctx context.Context, booking *domain.Booking) error {
	n.customer++
	return n.customerErr
}

func (n *fakeNotifier) SendManagerAlert(ctx context.Context, booking *domain.Booking) error {
	n.manager++
	return n.managerErr
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func existing(id int64, start types.TimeString, guests int) *domain.Booking {
	end, _ := start.AddMinutes(105)
	return &domain.Booking{ID: id, SlotStart: start, SlotEnd: end, Guests: guests}
}

func validRequest() *Request {
	return &Request{
		Date:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Slot:   types.TimeRange{Start: "12:30", End: "14:15"},
		Guests: 4,
		Name:   "Jo Blythe",
		Email:  "jo@example.com",
		Phone:  "07700 900123",
	}
}

func newUseCase(repo *fakeRepo, notifier *fakeNotifier, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(repo, capacity.NewCalculator(testLogger{}), notifier, tx, testLogger{})
	uc.timeProvider = fixedClock{now: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	tx := &fakeTxManager{}
	uc := newUseCase(repo, notifier, tx)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "12:30-14:15", resp.Slot.String())
	assert.True(t, resp.NotificationSent)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, notifier.customer)
	assert.Equal(t, 1, notifier.manager)

	require.NotNil(t, repo.created)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), repo.created.Date)
	assert.Equal(t, types.TimeString("12:30"), repo.created.SlotStart)
	assert.Equal(t, types.TimeString("14:15"), repo.created.SlotEnd)
}

func TestExecute_StartTimeAloneIdentifiesSlot(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	uc := newUseCase(repo, &fakeNotifier{}, &fakeTxManager{})

	req := validRequest()
	req.Slot = types.TimeRange{Start: "12:30"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "12:30-14:15", resp.Slot.String())
}

func TestExecute_InsufficientCapacity(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{bookings: []*domain.Booking{
		existing(1, "12:30", 20),
		existing(2, "12:30", 15),
	}}
	uc := newUseCase(repo, &fakeNotifier{}, &fakeTxManager{})

	req := validRequest()
	req.Guests = 6

	_, err := uc.Execute(context.Background(), req)
	var capacityErr *InsufficientCapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 5, capacityErr.Remaining)
	assert.Nil(t, repo.created)
}

func TestExecute_ExactlyRemainingSeatsAccepted(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{bookings: []*domain.Booking{
		existing(1, "12:30", 20),
		existing(2, "12:30", 15),
	}}
	uc := newUseCase(repo, &fakeNotifier{}, &fakeTxManager{})

	req := validRequest()
	req.Guests = 5

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, repo.created)
}

func TestExecute_SlotNotInCatalog(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeRepo{}, &fakeNotifier{}, &fakeTxManager{})

	req := validRequest()
	req.Slot = types.TimeRange{Start: "12:45", End: "14:30"}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_EndTimeMustMatchCatalog(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeRepo{}, &fakeNotifier{}, &fakeTxManager{})

	req := validRequest()
	req.Slot = types.TimeRange{Start: "12:30", End: "14:30"}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_StandardSlotRejectedOnChristmas(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeRepo{}, &fakeNotifier{}, &fakeTxManager{})

	req := validRequest()
	req.Date = time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_MissingFields(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeRepo{}, &fakeNotifier{}, &fakeTxManager{})

	req := validRequest()
	req.Name = ""
	req.Email = ""

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "email")
}

func TestExecute_PastDateRejected(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeRepo{}, &fakeNotifier{}, &fakeTxManager{})

	req := validRequest()
	req.Date = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayBookingAccepted(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	uc := newUseCase(repo, &fakeNotifier{}, &fakeTxManager{})

	req := validRequest()
	req.Date = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, repo.created)
}

func TestExecute_GuestsBelowMinimum(t *testing.T) {
	t.Parallel()

	uc := newUseCase(&fakeRepo{}, &fakeNotifier{}, &fakeTxManager{})

	req := validRequest()
	req.Guests = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_EmailFailureDoesNotFailBooking(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	notifier := &fakeNotifier{customerErr: errors.New("smtp down")}
	uc := newUseCase(repo, notifier, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.NotificationSent)
	assert.NotNil(t, repo.created)
}

func TestExecute_BothEmailsMustSucceed(t *testing.T) {
	t.Parallel()

	notifier := &fakeNotifier{managerErr: errors.New("mailbox full")}
	uc := newUseCase(&fakeRepo{}, notifier, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.NotificationSent)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{getErr: errors.New("connection refused")}
	notifier := &fakeNotifier{}
	uc := newUseCase(repo, notifier, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, notifier.customer)
}
