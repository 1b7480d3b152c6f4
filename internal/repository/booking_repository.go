package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-ticketing/internal/model"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingCounts 某活動目前的 ledger 統計
type BookingCounts struct {
	Confirmed int
	Waiting   int
}

type BookingRepository interface {
	ListByUserID(ctx context.Context, userID int) ([]*model.Booking, error)

	// Transaction methods；tx 為 nil 時使用連接池
	Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error)
	FindActive(ctx context.Context, tx pgx.Tx, eventID int, userID int) (*model.Booking, error)
	NextWaiting(ctx context.Context, tx pgx.Tx, eventID int) (*model.Booking, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id int, status model.BookingStatus) (*model.Booking, error)
	Delete(ctx context.Context, tx pgx.Tx, id int) error
	CountByEvent(ctx context.Context, tx pgx.Tx, eventID int) (BookingCounts, error)
	ListUserIDs(ctx context.Context, tx pgx.Tx, eventID int, status model.BookingStatus) ([]int, error)
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

const bookingColumns = `id, event_id, user_id, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var booking model.Booking
	err := row.Scan(
		&booking.ID,
		&booking.EventID,
		&booking.UserID,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error) {
	if !booking.Status.IsValid() {
		return nil, apperrors.ErrInvalidBookingStatus
	}

	query := `
		INSERT INTO bookings (event_id, user_id, status)
		VALUES ($1, $2, $3)
		RETURNING ` + bookingColumns

	created, err := scanBooking(conn(r.pool, tx).QueryRow(ctx, query,
		booking.EventID, booking.UserID, booking.Status,
	))
	if err != nil {
		if code, constraint := pgErrorCode(err); code == uniqueViolation && constraint == "bookings_event_user_key" {
			return nil, apperrors.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return created, nil
}

func (r *BookingRepositoryImpl) FindActive(ctx context.Context, tx pgx.Tx, eventID int, userID int) (*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE event_id = $1 AND user_id = $2
	`

	booking, err := scanBooking(conn(r.pool, tx).QueryRow(ctx, query, eventID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	return booking, nil
}

// NextWaiting 回傳候補名單最前面的一筆（id 即排入順序）
func (r *BookingRepositoryImpl) NextWaiting(ctx context.Context, tx pgx.Tx, eventID int) (*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE event_id = $1 AND status = $2
		ORDER BY id ASC
		LIMIT 1
		FOR UPDATE
	`

	booking, err := scanBooking(conn(r.pool, tx).QueryRow(ctx, query, eventID, model.BookingStatusWaiting))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("next waiting booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepositoryImpl) UpdateStatus(ctx context.Context, tx pgx.Tx, id int, status model.BookingStatus) (*model.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + bookingColumns

	booking, err := scanBooking(conn(r.pool, tx).QueryRow(ctx, query, status, time.Now().UTC(), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	return booking, nil
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	result, err := conn(r.pool, tx).Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepositoryImpl) CountByEvent(ctx context.Context, tx pgx.Tx, eventID int) (BookingCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3)
		FROM bookings
		WHERE event_id = $1
	`

	var counts BookingCounts
	err := conn(r.pool, tx).QueryRow(ctx, query, eventID,
		model.BookingStatusConfirmed, model.BookingStatusWaiting,
	).Scan(&counts.Confirmed, &counts.Waiting)
	if err != nil {
		return BookingCounts{}, fmt.Errorf("count bookings: %w", err)
	}

	return counts, nil
}

// ListUserIDs 依排入順序列出某狀態的使用者
func (r *BookingRepositoryImpl) ListUserIDs(ctx context.Context, tx pgx.Tx, eventID int, status model.BookingStatus) ([]int, error) {
	query := `
		SELECT user_id
		FROM bookings
		WHERE event_id = $1 AND status = $2
		ORDER BY id ASC
	`

	rows, err := conn(r.pool, tx).Query(ctx, query, eventID, status)
	if err != nil {
		return nil, fmt.Errorf("list booking users: %w", err)
	}
	defer rows.Close()

	userIDs := make([]int, 0)
	for rows.Next() {
		var userID int
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, userID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return userIDs, nil
}

func (r *BookingRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.Booking, error) {
	query := `
		SELECT b.id, b.event_id, b.user_id, b.status, b.created_at, b.updated_at,
		       e.event_id, e.name, e.venue, e.event_date
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC, b.id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*model.Booking, 0)
	for rows.Next() {
		var booking model.Booking
		var summary model.EventSummary
		err := rows.Scan(
			&booking.ID,
			&booking.EventID,
			&booking.UserID,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
			&summary.EventID,
			&summary.Name,
			&summary.Venue,
			&summary.Date,
		)
		if err != nil {
			return nil, err
		}
		booking.Event = &summary
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
