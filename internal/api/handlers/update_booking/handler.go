package update_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/noshecambridge/booking-service/internal/api/handlers"
	updateBooking "github.com/noshecambridge/booking-service/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM-HH:MM"
	msgInvalidInput       = "missing or invalid booking fields"
	msgBookingNotFound    = "booking not found"
	msgInvalidSlot        = "selected time slot does not exist"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/update
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/update - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/update - Failed to parse request: booking_id=%d, error=%v", req.BookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var capacityErr *updateBooking.InsufficientCapacityError
		switch {
		case errors.As(err, &capacityErr):
			h.logger.Warn("POST /bookings/update - Insufficient capacity: booking_id=%d, remaining=%d",
				req.BookingID, capacityErr.Remaining)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf("only %d seats available for this time slot", capacityErr.Remaining))

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/update - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings/update - Invalid slot: booking_id=%d", req.BookingID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/update - Invalid input: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/update - Failed to update booking: booking_id=%d, error=%v",
				req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/update - Booking updated: booking_id=%d", result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
