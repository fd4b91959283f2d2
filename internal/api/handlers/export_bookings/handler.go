package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/noshecambridge/booking-service/internal/api/handlers"
	"github.com/noshecambridge/booking-service/internal/domain"
	"github.com/noshecambridge/booking-service/internal/service/bookings"
	"github.com/noshecambridge/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgMissingTarget      = "either date or exportAll is required"
)

// exportBookingsRequest HTTP request model
type exportBookingsRequest struct {
	Date      string `json:"date,omitempty"`
	ExportAll bool   `json:"exportAll,omitempty"`
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

// Handle POST /api/v1/bookings/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req exportBookingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/export - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	svcReq := &models.ExportRequest{ExportAll: req.ExportAll}
	if req.Date != "" {
		date, err := time.Parse(domain.DateFormat, req.Date)
		if err != nil {
			h.logger.Warn("POST /bookings/export - Failed to parse date %q: %v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		svcReq.Date = &date
	}

	result, err := h.service.Export(r.Context(), svcReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("POST /bookings/export - Missing export target")
			handlers.RespondBadRequest(w, msgMissingTarget)
			return
		}
		h.logger.Error("POST /bookings/export - Failed to export bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/export - Exported %s (%d bytes)", result.Filename, len(result.CSV))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.CSV)
}
