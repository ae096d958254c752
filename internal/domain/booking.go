package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type Booking struct {
	ID                 int64         `json:"id"`
	EventID            string        `json:"eventId"`
	UserID             string        `json:"userId"`
	BookingDate        time.Time     `json:"bookingDate"`
	CreatedAt          time.Time     `json:"createdAt"`
	Status             BookingStatus `json:"status"`
	CancellationReason *string       `json:"cancellationReason,omitempty"`
}

type CreateBookingInput struct {
	EventID     string
	BookingDate *time.Time
}

// EnrichedBooking is a booking joined with the event metadata known at the
// time of the lookup. Event fields stay empty when the Event service could
// not resolve the event.
type EnrichedBooking struct {
	Booking          *Booking
	EventTitle       string
	EventDescription string
	EventDate        *time.Time
}
