package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Campus-Events-Management/Management-BookingService/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, event_id, user_id, booking_date, created_at, status, cancellation_reason`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create persists the booking and assigns its surrogate id. A partial unique
// index on (event_id, user_id) over confirmed rows is the safety net against
// two concurrent creations racing past the duplicate pre-check.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (event_id, user_id, booking_date, created_at, status, cancellation_reason)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	err := r.db.Master.QueryRowContext(
		ctx, query,
		b.EventID, b.UserID, b.BookingDate, b.CreatedAt, b.Status, b.CancellationReason,
	).Scan(&b.ID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return scanBooking(row)
}

// GetByEventAndUser returns the user's active booking for the event, if any.
// Cancelled rows are ignored so a cancelled booking does not block a new one.
func (r *BookingRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE event_id = $1 AND user_id = $2 AND status = $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("get booking by event and user: %w", err)
	}

	return scanBooking(row)
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  ORDER BY created_at`

	return r.list(ctx, query)
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE event_id = $1
			  ORDER BY created_at`

	return r.list(ctx, query, eventID)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at`

	return r.list(ctx, query, userID)
}

// Cancel transitions a confirmed booking to cancelled, recording the reason.
// Returns false when no confirmed row with this id exists.
func (r *BookingRepository) Cancel(ctx context.Context, id int64, reason string) (bool, error) {
	query := `UPDATE bookings
			  SET status = $2, cancellation_reason = $3
			  WHERE id = $1 AND status = $4`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStatusCancelled, reason, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return false, fmt.Errorf("cancel booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("cancel booking rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.EventID, &b.UserID, &b.BookingDate,
			&b.CreatedAt, &b.Status, &b.CancellationReason,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.EventID, &b.UserID, &b.BookingDate,
		&b.CreatedAt, &b.Status, &b.CancellationReason,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}
