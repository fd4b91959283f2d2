package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/noshecambridge/booking-service/internal/api/handlers"
	"github.com/noshecambridge/booking-service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "bookingId is required"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Cancel(r.Context(), req.BookingID); err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("POST /bookings/cancel - Invalid booking id: booking_id=%d", req.BookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)
			return
		}
		h.logger.Error("POST /bookings/cancel - Failed to cancel booking: booking_id=%d, error=%v",
			req.BookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/cancel - Booking cancelled: booking_id=%d", req.BookingID)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{
		BookingID: req.BookingID,
		Cancelled: true,
	})
}
