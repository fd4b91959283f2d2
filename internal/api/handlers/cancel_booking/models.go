package cancel_booking

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	BookingID int64 `json:"bookingId"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID int64 `json:"bookingId"`
	Cancelled bool  `json:"cancelled"`
}
