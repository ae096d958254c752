package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Campus-Events-Management/Management-BookingService/internal/domain"
	"github.com/Campus-Events-Management/Management-BookingService/internal/handler/dto"
	"github.com/Campus-Events-Management/Management-BookingService/internal/identity"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, userID string, input domain.CreateBookingInput) (*domain.EnrichedBooking, error)
	Cancel(ctx context.Context, id int64, requesterID string, isAdmin bool, reason string) error
	GetByID(ctx context.Context, id int64, requesterID string, isAdmin bool) (*domain.EnrichedBooking, error)
	List(ctx context.Context, eventID, requesterID string, isAdmin bool) ([]*domain.EnrichedBooking, error)
	Exists(ctx context.Context, eventID, userID string) (bool, error)
}

type AdminSvc interface {
	GlobalStats(ctx context.Context, requesterID string, isAdmin bool) (*domain.GlobalStats, error)
	EventStats(ctx context.Context, eventID, requesterID string, isAdmin bool) (*domain.EventDetailStats, error)
	UserStats(ctx context.Context, userID, requesterID string, isAdmin bool) (*domain.UserBookingStats, error)
}

type Handler struct {
	bookingService BookingSvc
	adminService   AdminSvc
}

func NewHandler(bookingService BookingSvc, adminService AdminSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		adminService:   adminService,
	}
}

// Bookings

func (h *Handler) ListBookings(c *ginext.Context) {
	userID, isAdmin := h.requester(c)

	bookings, err := h.bookingService.List(c.Request.Context(), c.Query("eventId"), userID, isAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToBookingResponses(bookings), ""))
}

func (h *Handler) CheckBooking(c *ginext.Context) {
	userID, _ := h.requester(c)
	eventID := c.Param("eventId")

	exists, err := h.bookingService.Exists(c.Request.Context(), eventID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	message := "You have not booked this event yet"
	if exists {
		message = "You have already booked this event"
	}

	c.JSON(http.StatusOK, dto.OK(exists, message))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	userID, isAdmin := h.requester(c)

	booking, err := h.bookingService.GetByID(c.Request.Context(), id, userID, isAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToBookingResponse(booking), ""))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
		return
	}
	userID, _ := h.requester(c)

	booking, err := h.bookingService.Create(c.Request.Context(), userID, domain.CreateBookingInput{
		EventID:     req.EventID,
		BookingDate: req.BookingDate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToBookingResponse(booking), "Booking created successfully"))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	userID, isAdmin := h.requester(c)

	err := h.bookingService.Cancel(c.Request.Context(), id, userID, isAdmin, c.Query("reason"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(true, "Booking cancelled successfully"))
}

// Admin

func (h *Handler) GlobalStats(c *ginext.Context) {
	userID, isAdmin := h.requester(c)

	stats, err := h.adminService.GlobalStats(c.Request.Context(), userID, isAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(stats, ""))
}

func (h *Handler) EventStats(c *ginext.Context) {
	userID, isAdmin := h.requester(c)

	stats, err := h.adminService.EventStats(c.Request.Context(), c.Param("eventId"), userID, isAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(stats, ""))
}

func (h *Handler) UserBookings(c *ginext.Context) {
	userID, isAdmin := h.requester(c)

	stats, err := h.adminService.UserStats(c.Request.Context(), c.Param("userId"), userID, isAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(stats, ""))
}

// requester resolves the authenticated principal from the verified claims
// the auth middleware stored on the request.
func (h *Handler) requester(c *ginext.Context) (string, bool) {
	claims := identity.Claims{}
	if v, ok := c.Get(identity.ClaimsContextKey); ok {
		if parsed, ok := v.(identity.Claims); ok {
			claims = parsed
		}
	}
	return identity.UserID(claims), identity.IsAdmin(claims)
}

func bookingID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid booking id"))
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrAdminOnly):
		c.JSON(http.StatusForbidden, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrCapacityReached),
		errors.Is(err, domain.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))

	case errors.Is(err, domain.ErrEventUpdateFailed):
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to update event capacity. Please try again later."))

	case errors.Is(err, domain.ErrCancelFailed):
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to cancel booking"))

	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("An error occurred while processing your request"))
	}
}
