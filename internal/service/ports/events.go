package ports

import (
	"context"

	"github.com/Campus-Events-Management/Management-BookingService/internal/domain"
)

// EventsClient mirrors the Event service contract: lookups collapse every
// failure to nil and writes to false, so neither ever returns an error.
type EventsClient interface {
	GetEventByID(ctx context.Context, eventID string) *domain.EventSummary
	UpdateBookingCount(ctx context.Context, eventID string, increment bool) bool
}
