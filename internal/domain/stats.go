package domain

import "time"

// GlobalStats aggregates bookings across all events. Totals are computed
// over every booking row; EventStats only lists events with a resolvable
// date, so the detail list may carry fewer entries than the totals imply.
type GlobalStats struct {
	TotalEvents             int         `json:"totalEvents"`
	TotalBookings           int         `json:"totalBookings"`
	ConfirmedBookings       int         `json:"confirmedBookings"`
	CancelledBookings       int         `json:"cancelledBookings"`
	AverageBookingsPerEvent float64     `json:"averageBookingsPerEvent"`
	EventStats              []EventStat `json:"eventStats"`
}

type EventStat struct {
	EventID           string     `json:"eventId"`
	EventTitle        string     `json:"eventTitle"`
	TotalBookings     int        `json:"totalBookings"`
	ConfirmedBookings int        `json:"confirmedBookings"`
	CancelledBookings int        `json:"cancelledBookings"`
	BookingRate       float64    `json:"bookingRate"`
	Capacity          int        `json:"capacity"`
	AvailableSeats    int        `json:"availableSeats"`
	EventDate         *time.Time `json:"eventDate"`
}

// EventDetailStats buckets one event's bookings by calendar day. The
// booking rate is derived from the Event service's live counter, not from
// the ever-booked total.
type EventDetailStats struct {
	EventID           string            `json:"eventId"`
	EventTitle        string            `json:"eventTitle"`
	EventDescription  string            `json:"eventDescription"`
	EventDate         time.Time         `json:"eventDate"`
	Capacity          int               `json:"capacity"`
	CurrentBookings   int               `json:"currentBookings"`
	AvailableSeats    int               `json:"availableSeats"`
	BookingRate       float64           `json:"bookingRate"`
	TotalBookingsEver int               `json:"totalBookingsEver"`
	ConfirmedBookings int               `json:"confirmedBookings"`
	CancelledBookings int               `json:"cancelledBookings"`
	BookingsByDate    []BookingDateStat `json:"bookingsByDate"`
}

type BookingDateStat struct {
	Date           time.Time `json:"date"`
	BookingsCount  int       `json:"bookingsCount"`
	ConfirmedCount int       `json:"confirmedCount"`
	CancelledCount int       `json:"cancelledCount"`
}

type UserBookingStats struct {
	UserID            string             `json:"userId"`
	TotalBookings     int                `json:"totalBookings"`
	ConfirmedBookings int                `json:"confirmedBookings"`
	CancelledBookings int                `json:"cancelledBookings"`
	Bookings          []BookingWithEvent `json:"bookings"`
}

type BookingWithEvent struct {
	BookingID          int64      `json:"bookingId"`
	EventID            string     `json:"eventId"`
	EventTitle         string     `json:"eventTitle"`
	BookingDate        time.Time  `json:"bookingDate"`
	CreatedAt          time.Time  `json:"createdAt"`
	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	EventDate          *time.Time `json:"eventDate"`
}
