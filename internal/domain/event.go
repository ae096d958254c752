package domain

import "time"

// EventSummary is the Event service's view of an event. It is never
// persisted locally; capacity truth belongs to the Event service.
type EventSummary struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EventDate       time.Time `json:"eventDate"`
	Location        string    `json:"location"`
	Capacity        int       `json:"capacity"`
	CurrentBookings int       `json:"currentBookings"`
}

func (e *EventSummary) IsCapacityReached() bool {
	return e.CurrentBookings >= e.Capacity
}
