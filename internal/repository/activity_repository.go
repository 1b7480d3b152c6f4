package repository

import (
	"context"
	"fmt"

	"event-ticketing/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *model.BookingActivity) (*model.BookingActivity, error)
	ListByEventID(ctx context.Context, eventID uuid.UUID, limit int) ([]*model.BookingActivity, error)
}

type ActivityRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &ActivityRepositoryImpl{pool: pool}
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *model.BookingActivity) (*model.BookingActivity, error) {
	query := `
		INSERT INTO booking_activities (
			event_uuid, user_id, booking_id, action,
			available_tickets, waiting_list_count, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		activity.EventID, activity.UserID, activity.BookingID, activity.Action,
		activity.AvailableTickets, activity.WaitingListCount, activity.OccurredAt,
	).Scan(&activity.ID)
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	return activity, nil
}

// ListByEventID 由新到舊列出，limit <= 0 時預設 100
func (r *ActivityRepositoryImpl) ListByEventID(ctx context.Context, eventID uuid.UUID, limit int) ([]*model.BookingActivity, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, event_uuid, user_id, booking_id, action,
		       available_tickets, waiting_list_count, occurred_at
		FROM booking_activities
		WHERE event_uuid = $1
		ORDER BY occurred_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, eventID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	activities := make([]*model.BookingActivity, 0)
	for rows.Next() {
		var a model.BookingActivity
		err := rows.Scan(
			&a.ID,
			&a.EventID,
			&a.UserID,
			&a.BookingID,
			&a.Action,
			&a.AvailableTickets,
			&a.WaitingListCount,
			&a.OccurredAt,
		)
		if err != nil {
			return nil, err
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}
