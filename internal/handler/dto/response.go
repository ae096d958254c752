package dto

import (
	"time"

	"github.com/Campus-Events-Management/Management-BookingService/internal/domain"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

const defaultSuccessMessage = "Operation completed successfully"

func OK(data any, message string) Response {
	if message == "" {
		message = defaultSuccessMessage
	}
	return Response{Success: true, Message: message, Data: data}
}

func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

type BookingResponse struct {
	ID                 int64   `json:"id"`
	EventID            string  `json:"eventId"`
	UserID             string  `json:"userId"`
	BookingDate        string  `json:"bookingDate"`
	CreatedAt          string  `json:"createdAt"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`

	// Populated from the Event service when the event resolves.
	EventTitle       string  `json:"eventTitle,omitempty"`
	EventDescription string  `json:"eventDescription,omitempty"`
	EventDate        *string `json:"eventDate,omitempty"`
}

func ToBookingResponse(eb *domain.EnrichedBooking) BookingResponse {
	b := eb.Booking

	resp := BookingResponse{
		ID:                 b.ID,
		EventID:            b.EventID,
		UserID:             b.UserID,
		BookingDate:        b.BookingDate.Format(time.RFC3339),
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		EventTitle:         eb.EventTitle,
		EventDescription:   eb.EventDescription,
	}
	if eb.EventDate != nil {
		d := eb.EventDate.Format(time.RFC3339)
		resp.EventDate = &d
	}

	return resp
}

func ToBookingResponses(ebs []*domain.EnrichedBooking) []BookingResponse {
	res := make([]BookingResponse, 0, len(ebs))
	for _, eb := range ebs {
		res = append(res, ToBookingResponse(eb))
	}
	return res
}
