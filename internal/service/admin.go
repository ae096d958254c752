package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Campus-Events-Management/Management-BookingService/internal/domain"
	"github.com/Campus-Events-Management/Management-BookingService/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const unknownEventTitle = "Unknown Event"

// AdminService produces aggregate reports over bookings joined with event
// metadata fetched from the Event service. Every operation requires an
// administrator.
type AdminService struct {
	bookingRepo ports.BookingRepo
	events      ports.EventsClient
	logger      logger.Logger
}

func NewAdminService(
	bookingRepo ports.BookingRepo,
	events ports.EventsClient,
	logger logger.Logger,
) *AdminService {
	return &AdminService{
		bookingRepo: bookingRepo,
		events:      events,
		logger:      logger,
	}
}

// GlobalStats aggregates bookings across all events. Booking totals cover
// every row; the per-event detail list keeps only events with resolvable
// dates, and the event count and average follow that filtered list.
func (s *AdminService) GlobalStats(ctx context.Context, requesterID string, isAdmin bool) (*domain.GlobalStats, error) {
	if !isAdmin {
		s.logger.Warn("unauthorized access attempt to admin stats",
			logger.String("user_id", requesterID),
		)
		return nil, domain.ErrAdminOnly
	}

	all, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	byEvent := make(map[string][]*domain.Booking)
	eventIDs := make([]string, 0, len(all))
	for _, b := range all {
		if _, seen := byEvent[b.EventID]; !seen {
			eventIDs = append(eventIDs, b.EventID)
		}
		byEvent[b.EventID] = append(byEvent[b.EventID], b)
	}

	summaries := s.fetchEvents(ctx, eventIDs)

	eventStats := make([]domain.EventStat, 0, len(eventIDs))
	for i, eventID := range eventIDs {
		bookings := byEvent[eventID]
		event := summaries[i]

		stat := domain.EventStat{
			EventID:           eventID,
			EventTitle:        unknownEventTitle,
			TotalBookings:     len(bookings),
			ConfirmedBookings: countByStatus(bookings, domain.BookingStatusConfirmed),
			CancelledBookings: countByStatus(bookings, domain.BookingStatusCancelled),
		}

		if event != nil {
			eventDate := event.EventDate
			stat.EventTitle = event.Title
			stat.Capacity = event.Capacity
			stat.AvailableSeats = event.Capacity - event.CurrentBookings
			stat.EventDate = &eventDate
			if event.Capacity > 0 {
				stat.BookingRate = float64(stat.ConfirmedBookings) / float64(event.Capacity) * 100
			}
		}

		eventStats = append(eventStats, stat)
	}

	// Events without a resolvable date drop out of the detail list but keep
	// contributing to the booking totals below.
	dated := eventStats[:0]
	for _, stat := range eventStats {
		if stat.EventDate != nil {
			dated = append(dated, stat)
		}
	}
	eventStats = dated
	sort.SliceStable(eventStats, func(i, j int) bool {
		return eventStats[i].EventDate.Before(*eventStats[j].EventDate)
	})

	stats := &domain.GlobalStats{
		TotalEvents:       len(eventStats),
		TotalBookings:     len(all),
		ConfirmedBookings: countByStatus(all, domain.BookingStatusConfirmed),
		CancelledBookings: countByStatus(all, domain.BookingStatusCancelled),
		EventStats:        eventStats,
	}
	if stats.TotalEvents > 0 {
		stats.AverageBookingsPerEvent = float64(stats.TotalBookings) / float64(stats.TotalEvents)
	}

	return stats, nil
}

// EventStats buckets one event's bookings by calendar day. The booking rate
// comes from the Event service's live counter, not the ever-booked total.
func (s *AdminService) EventStats(ctx context.Context, eventID, requesterID string, isAdmin bool) (*domain.EventDetailStats, error) {
	if !isAdmin {
		s.logger.Warn("unauthorized access attempt to event detail stats",
			logger.String("user_id", requesterID),
		)
		return nil, domain.ErrAdminOnly
	}

	event := s.events.GetEventByID(ctx, eventID)
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	bookings, err := s.bookingRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	byDate := make(map[time.Time]*domain.BookingDateStat)
	for _, b := range bookings {
		day := calendarDay(b.BookingDate)
		bucket, ok := byDate[day]
		if !ok {
			bucket = &domain.BookingDateStat{Date: day}
			byDate[day] = bucket
		}
		bucket.BookingsCount++
		switch b.Status {
		case domain.BookingStatusConfirmed:
			bucket.ConfirmedCount++
		case domain.BookingStatusCancelled:
			bucket.CancelledCount++
		}
	}

	buckets := make([]domain.BookingDateStat, 0, len(byDate))
	for _, bucket := range byDate {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})

	stats := &domain.EventDetailStats{
		EventID:           eventID,
		EventTitle:        event.Title,
		EventDescription:  event.Description,
		EventDate:         event.EventDate,
		Capacity:          event.Capacity,
		CurrentBookings:   event.CurrentBookings,
		AvailableSeats:    event.Capacity - event.CurrentBookings,
		TotalBookingsEver: len(bookings),
		ConfirmedBookings: countByStatus(bookings, domain.BookingStatusConfirmed),
		CancelledBookings: countByStatus(bookings, domain.BookingStatusCancelled),
		BookingsByDate:    buckets,
	}
	if event.Capacity > 0 {
		stats.BookingRate = float64(event.CurrentBookings) / float64(event.Capacity) * 100
	}

	return stats, nil
}

// UserStats lists a user's bookings enriched with event titles, sorted
// ascending by event date. Bookings whose event cannot be resolved carry no
// date and sort first.
func (s *AdminService) UserStats(ctx context.Context, userID, requesterID string, isAdmin bool) (*domain.UserBookingStats, error) {
	if !isAdmin {
		s.logger.Warn("unauthorized access attempt to user bookings",
			logger.String("user_id", requesterID),
		)
		return nil, domain.ErrAdminOnly
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	eventIDs := make([]string, len(bookings))
	for i, b := range bookings {
		eventIDs[i] = b.EventID
	}
	summaries := s.fetchEvents(ctx, eventIDs)

	enriched := make([]domain.BookingWithEvent, len(bookings))
	for i, b := range bookings {
		row := domain.BookingWithEvent{
			BookingID:          b.ID,
			EventID:            b.EventID,
			EventTitle:         unknownEventTitle,
			BookingDate:        b.BookingDate,
			CreatedAt:          b.CreatedAt,
			Status:             string(b.Status),
			CancellationReason: b.CancellationReason,
		}
		if event := summaries[i]; event != nil {
			eventDate := event.EventDate
			row.EventTitle = event.Title
			row.EventDate = &eventDate
		}
		enriched[i] = row
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		return lessByEventDate(enriched[i].EventDate, enriched[j].EventDate)
	})

	return &domain.UserBookingStats{
		UserID:            userID,
		TotalBookings:     len(bookings),
		ConfirmedBookings: countByStatus(bookings, domain.BookingStatusConfirmed),
		CancelledBookings: countByStatus(bookings, domain.BookingStatusCancelled),
		Bookings:          enriched,
	}, nil
}

// fetchEvents resolves event metadata for each id concurrently. The result
// is positional; unresolvable events yield nil entries.
func (s *AdminService) fetchEvents(ctx context.Context, eventIDs []string) []*domain.EventSummary {
	summaries := make([]*domain.EventSummary, len(eventIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, id := range eventIDs {
		i, id := i, id
		g.Go(func() error {
			summaries[i] = s.events.GetEventByID(gctx, id)
			return nil
		})
	}
	_ = g.Wait() // goroutines never return an error

	return summaries
}

func countByStatus(bookings []*domain.Booking, status domain.BookingStatus) int {
	n := 0
	for _, b := range bookings {
		if b.Status == status {
			n++
		}
	}
	return n
}

// calendarDay truncates a timestamp to its UTC calendar date.
func calendarDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// lessByEventDate orders bookings by event date ascending, absent dates first.
func lessByEventDate(a, b *time.Time) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		return true
	case b == nil:
		return false
	default:
		return a.Before(*b)
	}
}
