package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrAlreadyBooked    = errors.New("you already have a booking for this event")
	ErrCapacityReached  = errors.New("event is at full capacity")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

var (
	// ErrAdminOnly gates the admin surface and the event-wide listing.
	ErrAdminOnly = errors.New("administrator access required")
	// ErrNotOwner is returned when a requester touches someone else's booking.
	ErrNotOwner = errors.New("you are not authorized to access this booking")
)

var (
	ErrEventUpdateFailed = errors.New("failed to update event capacity")
	ErrCancelFailed      = errors.New("failed to cancel booking")
)
