package get_weekly_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/noshecambridge/booking-service/internal/api/handlers"
	"github.com/noshecambridge/booking-service/internal/domain"
	"github.com/noshecambridge/booking-service/internal/service/bookings"
	"github.com/noshecambridge/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDates       = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange       = "start must not be after end"
)

// weeklyBookingsRequest HTTP request model
type weeklyBookingsRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
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

// Handle POST /api/v1/bookings/weekly
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req weeklyBookingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/weekly - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, err := time.Parse(domain.DateFormat, req.Start)
	if err != nil {
		h.logger.Warn("POST /bookings/weekly - Failed to parse start %q: %v", req.Start, err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}
	end, err := time.Parse(domain.DateFormat, req.End)
	if err != nil {
		h.logger.Warn("POST /bookings/weekly - Failed to parse end %q: %v", req.End, err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.WeeklyCounts(r.Context(), &models.WeeklyCountsRequest{Start: start, End: end})
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("POST /bookings/weekly - Invalid range: start=%s, end=%s", req.Start, req.End)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("POST /bookings/weekly - Failed to count bookings: start=%s, end=%s, error=%v",
			req.Start, req.End, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/weekly - Counted bookings: start=%s, end=%s", req.Start, req.End)
	handlers.RespondJSON(w, http.StatusOK, result)
}
