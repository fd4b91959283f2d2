package create_booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/noshecambridge/booking-service/internal/domain"
)

// UseCase admits and persists new bookings.
type UseCase struct {
	bookingRepo  BookingRepository
	calculator   CapacityCalculator
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking admission use case.
func NewUseCase(
	bookingRepo BookingRepository,
	calculator CapacityCalculator,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		calculator:   calculator,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the admission check and, on acceptance, persists the
// booking and dispatches the confirmation emails.
//
// The read-check-write sequence runs inside a serializable transaction
// with the day's rows locked, so two concurrent admissions for the same
// slot cannot both observe stale capacity. The emails are sent after the
// transaction commits; their failure never fails the booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, slot=%s, guests=%d",
		req.Date.Format(domain.DateFormat), req.Slot, req.Guests)

	// 1. Validate input and resolve the requested slot against the catalog
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	slots := domain.SlotsForDate(req.Date)
	slot, err := resolveSlot(slots, req.Slot)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot %s not in catalog for %s", req.Slot, req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 2. Normalize the date to its UTC day boundary and reject past dates
	dayStart, _ := domain.UTCDayWindow(req.Date)
	today, _ := domain.UTCDayWindow(uc.timeProvider.Now())
	if dayStart.Before(today) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	booking := &domain.Booking{
		Date:            dayStart,
		SlotStart:       slot.Start,
		SlotEnd:         slot.End,
		Guests:          req.Guests,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		SpecialRequests: req.SpecialRequests,
	}

	// 3. Admission check and write, serialized per day
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.bookingRepo.GetByDateRange(txCtx, domain.DayFilter(req.Date))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		remaining, ok := uc.calculator.Remaining(slots, bookings, slot.Start, 0)
		if !ok {
			return ErrInvalidSlot
		}
		if req.Guests > remaining {
			uc.logger.Warn("CreateBooking: slot %s on %s rejected, requested=%d remaining=%d",
				req.Slot, req.Date.Format(domain.DateFormat), req.Guests, remaining)
			return &InsufficientCapacityError{Remaining: remaining}
		}

		uc.logger.Info("CreateBooking: slot %s on %s accepted, requested=%d remaining=%d",
			req.Slot, req.Date.Format(domain.DateFormat), req.Guests, remaining)

		if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", booking.ID)

	// 4. Best-effort notifications, after the authoritative write
	notified := uc.notify(ctx, booking)

	return &Response{
		ID:               booking.ID,
		Date:             booking.Date,
		Slot:             booking.Slot(),
		Guests:           booking.Guests,
		Name:             booking.Name,
		Email:            booking.Email,
		Phone:            booking.Phone,
		SpecialRequests:  booking.SpecialRequests,
		CreatedAt:        booking.CreatedAt,
		NotificationSent: notified,
	}, nil
}

// notify dispatches the customer and manager emails concurrently and
// reports whether both succeeded. Failures are logged only.
func (uc *UseCase) notify(ctx context.Context, booking *domain.Booking) bool {
	var wg sync.WaitGroup
	var customerErr, managerErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		customerErr = uc.notifier.SendCustomerConfirmation(ctx, booking)
	}()
	go func() {
		defer wg.Done()
		managerErr = uc.notifier.SendManagerAlert(ctx, booking)
	}()
	wg.Wait()

	if customerErr != nil {
		uc.logger.Error("CreateBooking: customer confirmation failed for booking id=%d: %v", booking.ID, customerErr)
	}
	if managerErr != nil {
		uc.logger.Error("CreateBooking: manager alert failed for booking id=%d: %v", booking.ID, managerErr)
	}
	return customerErr == nil && managerErr == nil
}
