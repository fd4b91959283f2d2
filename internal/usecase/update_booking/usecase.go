package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/noshecambridge/booking-service/internal/domain"
	bookingRepo "github.com/noshecambridge/booking-service/internal/infra/storage/booking"
)

// UseCase applies partial edits to bookings, re-running the admission
// check when the edit moves seats between slots.
type UseCase struct {
	bookingRepo BookingRepository
	calculator  CapacityCalculator
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates the booking edit use case.
func NewUseCase(
	repo BookingRepository,
	calculator CapacityCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: repo,
		calculator:  calculator,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute applies the edit. Edits touching date, slot or guests re-run
// the admission check against the target slot with the booking's own
// prior contribution excluded; contact-only edits apply unconditionally.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d", req.BookingID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	if !req.needsAdmissionCheck() {
		if err := uc.applyUpdate(ctx, req); err != nil {
			return nil, err
		}
		uc.logger.Info("UpdateBooking: contact fields updated for id=%d", req.BookingID)
		return &Response{BookingID: req.BookingID}, nil
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Merge the edit onto the current record to find the target
		targetDate := current.Date
		if req.Date != nil {
			targetDate, _ = domain.UTCDayWindow(*req.Date)
		}
		targetStart := current.SlotStart
		if req.Slot != nil {
			targetStart = req.Slot.Start
		}
		targetGuests := current.Guests
		if req.Guests != nil {
			targetGuests = *req.Guests
		}

		slots := domain.SlotsForDate(targetDate)
		slot, ok := domain.FindSlot(slots, targetStart)
		if !ok {
			uc.logger.Warn("UpdateBooking: slot %s not in catalog for %s",
				targetStart, targetDate.Format(domain.DateFormat))
			return ErrInvalidSlot
		}
		if req.Slot != nil && !req.Slot.End.IsZero() && req.Slot.End != slot.End {
			return ErrInvalidSlot
		}

		bookings, err := uc.bookingRepo.GetByDateRange(txCtx, domain.DayFilter(targetDate))
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// The booking must not be counted against itself
		remaining, ok := uc.calculator.Remaining(slots, bookings, slot.Start, req.BookingID)
		if !ok {
			return ErrInvalidSlot
		}
		if targetGuests > remaining {
			uc.logger.Warn("UpdateBooking: id=%d rejected, slot %s on %s requested=%d remaining=%d",
				req.BookingID, slot.Range(), targetDate.Format(domain.DateFormat), targetGuests, remaining)
			return &InsufficientCapacityError{Remaining: remaining}
		}

		fields := req.toUpdateFields()
		if req.Date != nil {
			fields.Date = &targetDate
		}
		if req.Slot != nil {
			fields.SlotStart = &slot.Start
			fields.SlotEnd = &slot.End
		}

		if err := uc.bookingRepo.Update(txCtx, req.BookingID, fields); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", req.BookingID)
	return &Response{BookingID: req.BookingID}, nil
}

// applyUpdate performs a contact-only edit without a transaction.
func (uc *UseCase) applyUpdate(ctx context.Context, req *Request) error {
	err := uc.bookingRepo.Update(ctx, req.BookingID, req.toUpdateFields())
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
	}
	return nil
}

// toUpdateFields maps the request onto the repository's partial update.
// Date and slot fields are filled in by the caller after normalization.
func (r *Request) toUpdateFields() bookingRepo.UpdateFields {
	return bookingRepo.UpdateFields{
		Guests:          r.Guests,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		SpecialRequests: r.SpecialRequests,
	}
}
