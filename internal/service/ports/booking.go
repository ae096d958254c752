package ports

import (
	"context"

	"github.com/Campus-Events-Management/Management-BookingService/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) (bool, error)
}
