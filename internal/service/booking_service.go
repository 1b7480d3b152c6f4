package service

import (
	"context"
	"errors"

	"event-ticketing/internal/cache"
	"event-ticketing/internal/model"
	"event-ticketing/internal/queue"
	"event-ticketing/internal/repository"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingService interface {
	// 訂票：有名額即確認，否則加入候補名單
	RequestBooking(ctx context.Context, eventID uuid.UUID, userID int) (*model.BookingResult, error)
	// 取消訂票：釋出的名額由候補名單第一位遞補
	CancelBooking(ctx context.Context, eventID uuid.UUID, userID int) (*model.CancellationResult, error)
	GetStatus(ctx context.Context, eventID uuid.UUID) (*model.EventStatusSnapshot, error)
}

type BookingServiceImpl struct {
	ledger
	txManager repository.TxManager
	userRepo  repository.UserRepository
}

func NewBookingService(
	txManager repository.TxManager,
	eventRepo repository.EventRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	statusCache cache.EventStatusCache,
	activityQueue queue.ActivityQueue,
	opts ...Option,
) BookingService {
	return &BookingServiceImpl{
		ledger:    newLedger(eventRepo, bookingRepo, statusCache, activityQueue, opts),
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func (s *BookingServiceImpl) RequestBooking(ctx context.Context, eventID uuid.UUID, userID int) (*model.BookingResult, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	var (
		event  *model.Event
		result model.BookingResult
	)

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		// 1. 鎖住活動列，同一活動的訂票/取消依序執行
		event, err = s.eventRepo.FindByEventIDWithLock(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if event.IsCancelled() {
			return apperrors.ErrEventCancelled
		}

		// 2. 每位使用者每個活動只能有一筆
		existing, err := s.bookingRepo.FindActive(ctx, tx, event.ID, userID)
		if err == nil && existing != nil {
			return apperrors.ErrAlreadyBooked
		}
		if err != nil && !errors.Is(err, apperrors.ErrBookingNotFound) {
			return err
		}

		// 3. 有名額就確認，否則排入候補
		booking := &model.Booking{
			EventID: event.ID,
			UserID:  userID,
			Status:  model.BookingStatusWaiting,
		}
		result.Outcome = model.OutcomeWaitlisted
		if event.AvailableTickets > 0 {
			if err := s.setCapacity(ctx, tx, event, event.TotalTickets, event.AvailableTickets-1); err != nil {
				return err
			}
			booking.Status = model.BookingStatusConfirmed
			result.Outcome = model.OutcomeBooked
		} else if err := s.touch(ctx, tx, event); err != nil {
			return err
		}

		result.Booking, err = s.bookingRepo.Create(ctx, tx, booking)
		if err != nil {
			return err
		}

		result.Status, err = s.snapshot(ctx, tx, event)
		return err
	})
	if err != nil {
		return nil, err
	}

	action := model.ActionBooked
	if result.Outcome == model.OutcomeWaitlisted {
		action = model.ActionWaitlisted
	}
	s.afterCommit(ctx, event, result.Status, newActivity(event, result.Booking, userID, action, result.Status))

	return &result, nil
}

func (s *BookingServiceImpl) CancelBooking(ctx context.Context, eventID uuid.UUID, userID int) (*model.CancellationResult, error) {
	var (
		event  *model.Event
		result model.CancellationResult
	)

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		event, err = s.eventRepo.FindByEventIDWithLock(ctx, tx, eventID)
		if err != nil {
			return err
		}

		booking, err := s.bookingRepo.FindActive(ctx, tx, event.ID, userID)
		if err != nil {
			return err
		}

		if err := s.bookingRepo.Delete(ctx, tx, booking.ID); err != nil {
			return err
		}
		result.Cancelled = booking

		// 候補者離開名單不影響名額
		if booking.Status == model.BookingStatusConfirmed {
			err = s.setCapacity(ctx, tx, event, event.TotalTickets, event.AvailableTickets+1)
		} else {
			err = s.touch(ctx, tx, event)
		}
		if err != nil {
			return err
		}

		// 每次取消最多遞補一位
		result.Promoted, err = s.promoteNext(ctx, tx, event)
		if err != nil {
			return err
		}

		result.Status, err = s.snapshot(ctx, tx, event)
		return err
	})
	if err != nil {
		return nil, err
	}

	activities := []*model.BookingActivity{
		newActivity(event, result.Cancelled, userID, model.ActionCancelled, result.Status),
	}
	if result.Promoted != nil {
		activities = append(activities,
			newActivity(event, result.Promoted, result.Promoted.UserID, model.ActionPromoted, result.Status))
	}
	s.afterCommit(ctx, event, result.Status, activities...)

	return &result, nil
}

// GetStatus 優先讀快取；未命中時以唯讀交易讀取並回寫
func (s *BookingServiceImpl) GetStatus(ctx context.Context, eventID uuid.UUID) (*model.EventStatusSnapshot, error) {
	cached, err := s.statusCache.Get(ctx, eventID)
	if err == nil {
		return cached, nil
	}
	if errors.Is(err, apperrors.ErrEventNotFound) {
		return nil, err
	}
	if !errors.Is(err, apperrors.ErrCacheMiss) {
		s.log.Warn("status cache read failed", zap.String("event_id", eventID.String()), zap.Error(err))
	}

	var status model.EventStatusSnapshot
	err = s.txManager.WithReadOnlyTx(ctx, func(tx pgx.Tx) error {
		event, err := s.eventRepo.FindByEventIDTx(ctx, tx, eventID)
		if err != nil {
			return err
		}
		status, err = s.snapshot(ctx, tx, event)
		return err
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.statusCache.Set(ctx, eventID, status); err != nil {
		s.log.Warn("failed to cache status", zap.String("event_id", eventID.String()), zap.Error(err))
	}

	return &status, nil
}
