package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"event-ticketing/internal/model"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)

	// Transaction methods
	FindByEventIDTx(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) (*model.Event, error)
	FindByEventIDWithLock(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) (*model.Event, error)
	Update(ctx context.Context, tx pgx.Tx, id int, params model.UpdateEventParams) (*model.Event, error)
	SetCapacity(ctx context.Context, tx pgx.Tx, id int, total int, available int) (int64, error)
	Delete(ctx context.Context, tx pgx.Tx, id int) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, event_id, name, venue, event_date, price, description,
		total_tickets, available_tickets, status, created_by, version, created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.EventID,
		&event.Name,
		&event.Venue,
		&event.Date,
		&event.Price,
		&event.Description,
		&event.TotalTickets,
		&event.AvailableTickets,
		&event.Status,
		&event.CreatedBy,
		&event.Version,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// mapEventWriteError 將唯一鍵與容量 CHECK 錯誤轉為 app error
func mapEventWriteError(err error) error {
	code, constraint := pgErrorCode(err)
	switch {
	case code == uniqueViolation && constraint == "events_name_venue_key":
		return apperrors.ErrEventAlreadyExists
	case code == checkViolation && constraint == "events_capacity_check":
		return apperrors.ErrCapacityInvariant
	}
	return err
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (
			event_id, name, venue, event_date, price, description,
			total_tickets, available_tickets, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + eventColumns

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.EventID, event.Name, event.Venue, event.Date, event.Price, event.Description,
		event.TotalTickets, event.AvailableTickets, event.Status, event.CreatedBy,
	))
	if err != nil {
		if mapped := mapEventWriteError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("insert event: %w", err)
	}

	return created, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY event_date ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepositoryImpl) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	return r.FindByEventIDTx(ctx, nil, eventID)
}

// FindByEventIDTx tx 為 nil 時直接使用連接池
func (r *EventRepositoryImpl) FindByEventIDTx(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE event_id = $1
	`

	event, err := scanEvent(conn(r.pool, tx).QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	return event, nil
}

// FindByEventIDWithLock 取得活動列鎖，同一活動的名額變更因此序列化
func (r *EventRepositoryImpl) FindByEventIDWithLock(ctx context.Context, tx pgx.Tx, eventID uuid.UUID) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE event_id = $1
		FOR UPDATE
	`

	event, err := scanEvent(tx.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	return event, nil
}

// Update 只更新描述性欄位；容量請用 SetCapacity
func (r *EventRepositoryImpl) Update(ctx context.Context, tx pgx.Tx, id int, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Venue != nil {
		add("venue", *params.Venue)
	}
	if params.Date != nil {
		add("event_date", *params.Date)
	}
	if params.Price != nil {
		add("price", *params.Price)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.Status != nil {
		add("status", *params.Status)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	add("updated_at", time.Now().UTC())

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s, version = version + 1
		WHERE id = $%d
		RETURNING `+eventColumns, strings.Join(sets, ", "), argPos)

	event, err := scanEvent(tx.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		if mapped := mapEventWriteError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

// SetCapacity 寫入總名額與剩餘名額並遞增 version；回傳新的 version
func (r *EventRepositoryImpl) SetCapacity(ctx context.Context, tx pgx.Tx, id int, total int, available int) (int64, error) {
	query := `
		UPDATE events
		SET total_tickets = $1, available_tickets = $2, version = version + 1, updated_at = $3
		WHERE id = $4
		RETURNING version
	`

	var version int64
	err := tx.QueryRow(ctx, query, total, available, time.Now().UTC(), id).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrEventNotFound
		}
		if mapped := mapEventWriteError(err); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("set capacity: %w", err)
	}

	return version, nil
}

// Delete 刪除活動；bookings 透過 ON DELETE CASCADE 一併刪除
func (r *EventRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	result, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
