package dto

import "time"

type CreateBookingRequest struct {
	EventID string `json:"eventId" binding:"required"`
	// Optional; the server uses the current time when omitted.
	BookingDate *time.Time `json:"bookingDate"`
}
