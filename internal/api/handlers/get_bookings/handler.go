package get_bookings

import (
	"net/http"
	"time"

	"github.com/noshecambridge/booking-service/internal/api/handlers"
	"github.com/noshecambridge/booking-service/internal/domain"
	"github.com/noshecambridge/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
)

// getBookingsRequest HTTP request model
type getBookingsRequest struct {
	Date string `json:"date"`
}

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

// Handle POST /api/v1/bookings/list
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req getBookingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/list - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /bookings/list - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetByDate(r.Context(), &models.GetBookingsRequest{Date: date})
	if err != nil {
		h.logger.Error("POST /bookings/list - Failed to list bookings: date=%s, error=%v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/list - Listed bookings: date=%s, count=%d", req.Date, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
