package service

import (
	"context"
	"testing"
	"time"

	"github.com/Campus-Events-Management/Management-BookingService/internal/domain"
	"github.com/Campus-Events-Management/Management-BookingService/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func namedEvent(id, title string, date time.Time, capacity, current int) *domain.EventSummary {
	return &domain.EventSummary{
		ID:              id,
		Title:           title,
		EventDate:       date,
		Capacity:        capacity,
		CurrentBookings: current,
	}
}

func TestAdminService_GlobalStats_RequiresAdmin(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	events := mocks.NewMockEventsClient(t)
	svc := NewAdminService(bookingRepo, events, newTestLogger(t))

	_, err := svc.GlobalStats(context.Background(), "u1", false)

	assert.ErrorIs(t, err, domain.ErrAdminOnly)
}

func TestAdminService_GlobalStats_Aggregates(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	events := mocks.NewMockEventsClient(t)
	svc := NewAdminService(bookingRepo, events, newTestLogger(t))

	all := []*domain.Booking{
		{ID: 1, EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed},
		{ID: 2, EventID: "e1", UserID: "u2", Status: domain.BookingStatusConfirmed},
		{ID: 3, EventID: "e1", UserID: "u3", Status: domain.BookingStatusCancelled},
		{ID: 4, EventID: "e2", UserID: "u1", Status: domain.BookingStatusConfirmed},
	}

	bookingRepo.EXPECT().ListAll(mock.Anything).Return(all, nil)
	events.EXPECT().GetEventByID(mock.Anything, "e1").
		Return(namedEvent("e1", "Later Event", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), 10, 2))
	events.EXPECT().GetEventByID(mock.Anything, "e2").
		Return(namedEvent("e2", "Sooner Event", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), 4, 1))

	stats, err := svc.GlobalStats(context.Background(), "admin1", true)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalEvents)
	assert.Equal(t, 4, stats.TotalBookings)
	assert.Equal(t, 3, stats.ConfirmedBookings)
	assert.Equal(t, 1, stats.CancelledBookings)
	assert.InDelta(t, 2.0, stats.AverageBookingsPerEvent, 1e-9)

	// Sorted ascending by event date.
	require.Len(t, stats.EventStats, 2)
	assert.Equal(t, "e2", stats.EventStats[0].EventID)
	assert.Equal(t, "Sooner Event", stats.EventStats[0].EventTitle)
	assert.Equal(t, "e1", stats.EventStats[1].EventID)

	e1 := stats.EventStats[1]
	assert.Equal(t, 3, e1.TotalBookings)
	assert.Equal(t, 2, e1.ConfirmedBookings)
	assert.Equal(t, 1, e1.CancelledBookings)
	assert.Equal(t, 10, e1.Capacity)
	assert.Equal(t, 8, e1.AvailableSeats)
	assert.InDelta(t, 20.0, e1.BookingRate, 1e-9)
}

func TestAdminService_GlobalStats_DatelessEventsKeptInTotals(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	events := mocks.NewMockEventsClient(t)
	svc := NewAdminService(bookingRepo, events, newTestLogger(t))

	all := []*domain.Booking{
		{ID: 1, EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed},
		{ID: 2, EventID: "ghost", UserID: "u2", Status: domain.BookingStatusConfirmed},
		{ID: 3, EventID: "ghost", UserID: "u3", Status: domain.BookingStatusCancelled},
	}

	bookingRepo.EXPECT().ListAll(mock.Anything).Return(all, nil)
	events.EXPECT().GetEventByID(mock.Anything, "e1").
		Return(namedEvent("e1", "Known", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), 10, 1))
	// The "ghost" event cannot be resolved: it falls out of the detail
	// list but its bookings stay in the totals.
	events.EXPECT().GetEventByID(mock.Anything, "ghost").Return(nil)

	stats, err := svc.GlobalStats(context.Background(), "admin1", true)

	require.NoError(t, err)
	require.Len(t, stats.EventStats, 1)
	assert.Equal(t, "e1", stats.EventStats[0].EventID)
	assert.Equal(t, 1, stats.TotalEvents)
	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 2, stats.ConfirmedBookings)
	assert.Equal(t, 1, stats.CancelledBookings)
}

func TestAdminService_GlobalStats_Empty(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	events := mocks.NewMockEventsClient(t)
	svc := NewAdminService(bookingRepo, events, newTestLogger(t))

	bookingRepo.EXPECT().ListAll(mock.Anything).Return(nil, nil)

	stats, err := svc.GlobalStats(context.Background(), "admin1", true)

	require.NoError(t, err)
	assert.Zero(t, stats.TotalEvents)
	assert.Zero(t, stats.TotalBookings)
	assert.Zero(t, stats.AverageBookingsPerEvent)
	assert.Empty(t, stats.EventStats)
}

func TestAdminService_EventStats_RequiresAdmin(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	events := mocks.NewMockEventsClient(t)
	svc := NewAdminService(bookingRepo, events, newTestLogger(t))

	_, err := svc.EventStats(context.Background(), "e1", "u1", false)

	assert.ErrorIs(t, err, domain.ErrAdminOnly)
}

func TestAdminService_EventStats_EventNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	events := mocks.NewMockEventsClient(t)
	svc := NewAdminService(bookingRepo, events, newTestLogger(t))

	events.EXPECT().GetEventByID(mock.Anything, "missing").Return(nil)

	_, err := svc.EventStats(context.Background(), "missing", "admin1", true)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestAdminService_EventStats_BucketsByDay(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	events := mocks.NewMockEventsClient(t)
	svc := NewAdminService(bookingRepo, events, newTestLogger(t))

	day1Morning := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	day1Evening := time.Date(2025, 8, 1, 21, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 8, 2, 10, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{ID: 1, EventID: "e1", UserID: "u1", BookingDate: day2, Status: domain.BookingStatusConfirmed},
		{ID: 2, EventID: "e1", UserID: "u2", BookingDate: day1Morning, Status: domain.BookingStatusConfirmed},
		{ID: 3, EventID: "e1", UserID: "u3", BookingDate: day1Evening, Status: domain.BookingStatusCancelled},
	}

	events.EXPECT().GetEventByID(mock.Anything, "e1").
		Return(namedEvent("e1", "Concert", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), 10, 4))
	bookingRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(bookings, nil)

	stats, err := svc.EventStats(context.Background(), "e1", "admin1", true)

	require.NoError(t, err)
	assert.Equal(t, "Concert", stats.EventTitle)
	assert.Equal(t, 3, stats.TotalBookingsEver)
	assert.Equal(t, 2, stats.ConfirmedBookings)
	assert.Equal(t, 1, stats.CancelledBookings)
	assert.Equal(t, 6, stats.AvailableSeats)
	// Rate derives from the live counter, not the ever-booked total.
	assert.InDelta(t, 40.0, stats.BookingRate, 1e-9)

	require.Len(t, stats.BookingsByDate, 2)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), stats.BookingsByDate[0].Date)
	assert.Equal(t, 2, stats.BookingsByDate[0].BookingsCount)
	assert.Equal(t, 1, stats.BookingsByDate[0].ConfirmedCount)
	assert.Equal(t, 1, stats.BookingsByDate[0].CancelledCount)
	assert.Equal(t, time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC), stats.BookingsByDate[1].Date)
	assert.Equal(t, 1, stats.BookingsByDate[1].BookingsCount)
}

func TestAdminService_EventStats_ZeroCapacity(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	events := mocks.NewMockEventsClient(t)
	svc := NewAdminService(bookingRepo, events, newTestLogger(t))

	events.EXPECT().GetEventByID(mock.Anything, "e1").
		Return(namedEvent("e1", "Closed", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), 0, 0))
	bookingRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(nil, nil)

	stats, err := svc.EventStats(context.Background(), "e1", "admin1", true)

	require.NoError(t, err)
	assert.Zero(t, stats.BookingRate)
}

func TestAdminService_UserStats_RequiresAdmin(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	events := mocks.NewMockEventsClient(t)
	svc := NewAdminService(bookingRepo, events, newTestLogger(t))

	_, err := svc.UserStats(context.Background(), "u1", "u1", false)

	assert.ErrorIs(t, err, domain.ErrAdminOnly)
}

func TestAdminService_UserStats_CountsAndOrdering(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	events := mocks.NewMockEventsClient(t)
	svc := NewAdminService(bookingRepo, events, newTestLogger(t))

	reason := "changed plans"
	bookings := []*domain.Booking{
		{ID: 1, EventID: "late", UserID: "u1", Status: domain.BookingStatusConfirmed},
		{ID: 2, EventID: "early", UserID: "u1", Status: domain.BookingStatusConfirmed},
		{ID: 3, EventID: "ghost", UserID: "u1", Status: domain.BookingStatusCancelled, CancellationReason: &reason},
	}

	bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)
	events.EXPECT().GetEventByID(mock.Anything, "late").
		Return(namedEvent("late", "Late Event", time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 10, 1))
	events.EXPECT().GetEventByID(mock.Anything, "early").
		Return(namedEvent("early", "Early Event", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), 10, 1))
	events.EXPECT().GetEventByID(mock.Anything, "ghost").Return(nil)

	stats, err := svc.UserStats(context.Background(), "u1", "admin1", true)

	require.NoError(t, err)
	assert.Equal(t, "u1", stats.UserID)
	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 2, stats.ConfirmedBookings)
	assert.Equal(t, 1, stats.CancelledBookings)

	// Absent event dates sort first, then ascending by date.
	require.Len(t, stats.Bookings, 3)
	assert.Equal(t, "ghost", stats.Bookings[0].EventID)
	assert.Equal(t, "Unknown Event", stats.Bookings[0].EventTitle)
	assert.Nil(t, stats.Bookings[0].EventDate)
	require.NotNil(t, stats.Bookings[0].CancellationReason)
	assert.Equal(t, "early", stats.Bookings[1].EventID)
	assert.Equal(t, "late", stats.Bookings[2].EventID)
}
