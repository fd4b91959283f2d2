package get_availability

import (
	"time"

	"github.com/noshecambridge/booking-service/internal/domain"
	getAvailability "github.com/noshecambridge/booking-service/internal/usecase/get_availability"
)

// AvailabilityRequest HTTP request model
type AvailabilityRequest struct {
	Date string `json:"date"` // "2026-09-01"
}

// SlotResponse is one catalog slot with its computed status.
type SlotResponse struct {
	Time      string `json:"time"` // "12:30-14:15"
	Start     string `json:"start"`
	End       string `json:"end"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
	Status    string `json:"status"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
	Degraded bool           `json:"degraded,omitempty"`
}

// ToUseCaseRequest parses the date and builds the use case request.
func (r *AvailabilityRequest) ToUseCaseRequest() (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}
	return &getAvailability.Request{Date: date}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:      s.Range().String(),
			Start:     s.Start.String(),
			End:       s.End.String(),
			Capacity:  s.Capacity,
			Remaining: s.Remaining,
			Status:    string(s.Status),
		})
	}
	return &AvailabilityResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
		Degraded: resp.Degraded,
	}
}
