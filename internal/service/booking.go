package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Campus-Events-Management/Management-BookingService/internal/domain"
	"github.com/Campus-Events-Management/Management-BookingService/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const enrichConcurrency = 8

const defaultCancelReason = "Cancelled by user"

type BookingService struct {
	bookingRepo ports.BookingRepo
	events      ports.EventsClient
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	events ports.EventsClient,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		events:      events,
		logger:      logger,
	}
}

// Create reserves a seat. Capacity is reserved on the Event service before
// the local row is written, so a failed reservation never leaves an orphaned
// booking; the reverse failure (local insert after a successful remote
// increment) leaves counter drift that is logged but not compensated.
func (s *BookingService) Create(ctx context.Context, userID string, input domain.CreateBookingInput) (*domain.EnrichedBooking, error) {
	event := s.events.GetEventByID(ctx, input.EventID)
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	if event.IsCapacityReached() {
		return nil, domain.ErrCapacityReached
	}

	existing, err := s.bookingRepo.GetByEventAndUser(ctx, input.EventID, userID)
	if err != nil && !errors.Is(err, domain.ErrBookingNotFound) {
		return nil, fmt.Errorf("check existing booking: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyBooked
	}

	if !s.events.UpdateBookingCount(ctx, input.EventID, true) {
		return nil, domain.ErrEventUpdateFailed
	}

	now := time.Now().UTC()
	bookingDate := now
	if input.BookingDate != nil {
		bookingDate = *input.BookingDate
	}

	booking := &domain.Booking{
		EventID:     input.EventID,
		UserID:      userID,
		BookingDate: bookingDate,
		CreatedAt:   now,
		Status:      domain.BookingStatusConfirmed,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		// The remote counter is already incremented at this point. The
		// drift is accepted and logged; there is no compensating call.
		s.logger.Error("booking insert failed after capacity reservation",
			logger.String("event_id", input.EventID),
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		if errors.Is(err, domain.ErrAlreadyBooked) {
			return nil, domain.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.String("event_id", booking.EventID),
		logger.String("user_id", booking.UserID),
	)

	eventDate := event.EventDate
	return &domain.EnrichedBooking{
		Booking:          booking,
		EventTitle:       event.Title,
		EventDescription: event.Description,
		EventDate:        &eventDate,
	}, nil
}

// Cancel transitions the booking to cancelled. The remote counter decrement
// is best-effort: a downstream outage never blocks a user's cancellation.
func (s *BookingService) Cancel(ctx context.Context, id int64, requesterID string, isAdmin bool, reason string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if booking.UserID != requesterID && !isAdmin {
		return domain.ErrNotOwner
	}

	if booking.Status == domain.BookingStatusCancelled {
		return domain.ErrAlreadyCancelled
	}

	if !s.events.UpdateBookingCount(ctx, booking.EventID, false) {
		s.logger.Warn("failed to update event booking count during cancellation",
			logger.Int64("booking_id", id),
			logger.String("event_id", booking.EventID),
		)
	}

	if reason == "" {
		reason = defaultCancelReason
	}

	ok, err := s.bookingRepo.Cancel(ctx, id, reason)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if !ok {
		return domain.ErrCancelFailed
	}

	s.logger.Info("booking cancelled",
		logger.Int64("booking_id", id),
		logger.String("event_id", booking.EventID),
		logger.String("user_id", booking.UserID),
	)

	return nil
}

func (s *BookingService) GetByID(ctx context.Context, id int64, requesterID string, isAdmin bool) (*domain.EnrichedBooking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != requesterID && !isAdmin {
		return nil, domain.ErrNotOwner
	}

	return s.enrich(ctx, booking), nil
}

// List returns the requester's bookings, or every booking for an event when
// the eventID filter is set (admin only). Enrichment lookups run
// concurrently; result order follows the store's order.
func (s *BookingService) List(ctx context.Context, eventID, requesterID string, isAdmin bool) ([]*domain.EnrichedBooking, error) {
	var (
		bookings []*domain.Booking
		err      error
	)

	if eventID != "" {
		if !isAdmin {
			return nil, domain.ErrAdminOnly
		}
		bookings, err = s.bookingRepo.ListByEvent(ctx, eventID)
	} else {
		bookings, err = s.bookingRepo.ListByUser(ctx, requesterID)
	}
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	res := make([]*domain.EnrichedBooking, len(bookings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, b := range bookings {
		i, b := i, b
		g.Go(func() error {
			res[i] = s.enrich(gctx, b)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// Exists reports whether the user holds an active booking for the event.
func (s *BookingService) Exists(ctx context.Context, eventID, userID string) (bool, error) {
	booking, err := s.bookingRepo.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check booking: %w", err)
	}

	return booking != nil, nil
}

// enrich attaches event metadata when the Event service can resolve it;
// an absent event leaves the fields empty rather than failing the call.
func (s *BookingService) enrich(ctx context.Context, b *domain.Booking) *domain.EnrichedBooking {
	eb := &domain.EnrichedBooking{Booking: b}

	if event := s.events.GetEventByID(ctx, b.EventID); event != nil {
		eventDate := event.EventDate
		eb.EventTitle = event.Title
		eb.EventDescription = event.Description
		eb.EventDate = &eventDate
	}

	return eb
}
