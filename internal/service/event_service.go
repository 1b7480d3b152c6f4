package service

import (
	"context"

	"event-ticketing/internal/cache"
	"event-ticketing/internal/model"
	"event-ticketing/internal/queue"
	"event-ticketing/internal/repository"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EventService interface {
	List(ctx context.Context) ([]*model.Event, error)
	// GetByEventID 回傳活動以及由 ledger 推導的 bookings / waitingList
	GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	Create(ctx context.Context, params model.CreateEventParams, createdBy int) (*model.Event, error)
	// Update 部分更新；調整總名額時保留已確認的訂位並遞補候補
	Update(ctx context.Context, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error)
	// Remove 刪除活動與其所有訂位
	Remove(ctx context.Context, eventID uuid.UUID, removedBy int) (*model.Event, error)
	ListActivity(ctx context.Context, eventID uuid.UUID, limit int) ([]*model.BookingActivity, error)
}

type EventServiceImpl struct {
	ledger
	txManager    repository.TxManager
	activityRepo repository.ActivityRepository
}

func NewEventService(
	txManager repository.TxManager,
	eventRepo repository.EventRepository,
	bookingRepo repository.BookingRepository,
	activityRepo repository.ActivityRepository,
	statusCache cache.EventStatusCache,
	activityQueue queue.ActivityQueue,
	opts ...Option,
) EventService {
	return &EventServiceImpl{
		ledger:       newLedger(eventRepo, bookingRepo, statusCache, activityQueue, opts),
		txManager:    txManager,
		activityRepo: activityRepo,
	}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *EventServiceImpl) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	var event *model.Event
	err := s.txManager.WithReadOnlyTx(ctx, func(tx pgx.Tx) error {
		var err error
		event, err = s.eventRepo.FindByEventIDTx(ctx, tx, eventID)
		if err != nil {
			return err
		}
		return s.fillLedger(ctx, tx, event)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventServiceImpl) fillLedger(ctx context.Context, tx pgx.Tx, event *model.Event) error {
	var err error
	event.Bookings, err = s.bookingRepo.ListUserIDs(ctx, tx, event.ID, model.BookingStatusConfirmed)
	if err != nil {
		return err
	}
	event.WaitingList, err = s.bookingRepo.ListUserIDs(ctx, tx, event.ID, model.BookingStatusWaiting)
	return err
}

func (s *EventServiceImpl) Create(ctx context.Context, params model.CreateEventParams, createdBy int) (*model.Event, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	event := &model.Event{
		EventID:          uuid.New(),
		Name:             params.Name,
		Venue:            params.Venue,
		Date:             params.Date.UTC(),
		Price:            params.Price,
		Description:      params.Description,
		TotalTickets:     params.TotalTickets,
		AvailableTickets: params.TotalTickets,
		Status:           model.EventStatusActive,
	}
	if createdBy > 0 {
		event.CreatedBy = &createdBy
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	created.Bookings = []int{}
	created.WaitingList = []int{}
	return created, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, eventID uuid.UUID, params model.UpdateEventParams) (*model.Event, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var (
		event    *model.Event
		promoted []*model.Booking
		status   model.EventStatusSnapshot
	)

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		event, err = s.eventRepo.FindByEventIDWithLock(ctx, tx, eventID)
		if err != nil {
			return err
		}

		if params.HasDetails() {
			event, err = s.eventRepo.Update(ctx, tx, event.ID, params)
			if err != nil {
				return err
			}
		}

		// 總名額調整：已確認的訂位保留，剩餘名額 = 新總名額 - 已確認
		if params.TotalTickets != nil && *params.TotalTickets != event.TotalTickets {
			confirmed := event.ConfirmedCount()
			if *params.TotalTickets < confirmed {
				return apperrors.ErrCapacityBelowBookings
			}
			if err := s.setCapacity(ctx, tx, event, *params.TotalTickets, *params.TotalTickets-confirmed); err != nil {
				return err
			}
		}

		// 釋出名額或重新開放時依序遞補
		for event.AvailableTickets > 0 && !event.IsCancelled() {
			next, err := s.promoteNext(ctx, tx, event)
			if err != nil {
				return err
			}
			if next == nil {
				break
			}
			promoted = append(promoted, next)
		}

		if err := s.fillLedger(ctx, tx, event); err != nil {
			return err
		}
		status, err = s.snapshot(ctx, tx, event)
		return err
	})
	if err != nil {
		return nil, err
	}

	activities := make([]*model.BookingActivity, 0, len(promoted))
	for _, booking := range promoted {
		activities = append(activities, newActivity(event, booking, booking.UserID, model.ActionPromoted, status))
	}
	s.afterCommit(ctx, event, status, activities...)

	return event, nil
}

func (s *EventServiceImpl) Remove(ctx context.Context, eventID uuid.UUID, removedBy int) (*model.Event, error) {
	var event *model.Event

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		event, err = s.eventRepo.FindByEventIDWithLock(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if err := s.fillLedger(ctx, tx, event); err != nil {
			return err
		}
		// bookings 由 ON DELETE CASCADE 一併刪除
		return s.eventRepo.Delete(ctx, tx, event.ID)
	})
	if err != nil {
		return nil, err
	}

	bg, cancel := s.sideEffectContext(ctx)
	defer cancel()
	// 留下刪除標記，較晚抵達的 snapshot 不會把已刪除的活動寫回快取
	if err := s.statusCache.MarkRemoved(bg, event.EventID); err != nil {
		s.log.Warn("failed to mark status cache removed",
			zap.String("event_id", event.EventID.String()), zap.Error(err))
	}
	s.publish(bg, newActivity(event, nil, removedBy, model.ActionEventRemoved, model.EventStatusSnapshot{}))

	return event, nil
}

func (s *EventServiceImpl) ListActivity(ctx context.Context, eventID uuid.UUID, limit int) ([]*model.BookingActivity, error) {
	// 活動已刪除後 event_removed 紀錄仍可查詢，這裡不檢查 events 表
	return s.activityRepo.ListByEventID(ctx, eventID, limit)
}
