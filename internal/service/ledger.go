package service

import (
	"context"
	"errors"
	"time"

	"event-ticketing/internal/cache"
	"event-ticketing/internal/model"
	"event-ticketing/internal/queue"
	"event-ticketing/internal/repository"
	apperrors "event-ticketing/pkg/app_errors"
	"event-ticketing/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ledger 是 booking 與 event 兩個 service 共用的名額操作；呼叫者必須持有活動列鎖
type ledger struct {
	eventRepo     repository.EventRepository
	bookingRepo   repository.BookingRepository
	statusCache   cache.EventStatusCache
	activityQueue queue.ActivityQueue
	// 提交後的快取與隊列操作上限，不讓已提交的請求卡住
	sideEffectTimeout time.Duration
	log               *zap.Logger
}

// DefaultSideEffectTimeout 未設定時提交後副作用的等待上限
const DefaultSideEffectTimeout = 2 * time.Second

// Option 調整 service 的可選設定
type Option func(*ledger)

// WithSideEffectTimeout 設定提交後快取更新與 activity 發送的等待上限
func WithSideEffectTimeout(d time.Duration) Option {
	return func(l *ledger) {
		if d > 0 {
			l.sideEffectTimeout = d
		}
	}
}

func newLedger(
	eventRepo repository.EventRepository,
	bookingRepo repository.BookingRepository,
	statusCache cache.EventStatusCache,
	activityQueue queue.ActivityQueue,
	opts []Option,
) ledger {
	l := ledger{
		eventRepo:         eventRepo,
		bookingRepo:       bookingRepo,
		statusCache:       statusCache,
		activityQueue:     activityQueue,
		sideEffectTimeout: DefaultSideEffectTimeout,
		log:               logger.WithComponent("service"),
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// setCapacity 所有名額變更的唯一入口：先過容量檢查再寫入，成功後同步更新 event
func (l ledger) setCapacity(ctx context.Context, tx pgx.Tx, event *model.Event, total int, available int) error {
	guard := *event
	guard.TotalTickets = total
	if err := guard.CheckAvailable(available); err != nil {
		return err
	}

	version, err := l.eventRepo.SetCapacity(ctx, tx, event.ID, total, available)
	if err != nil {
		return err
	}

	event.TotalTickets = total
	event.AvailableTickets = available
	event.Version = version
	return nil
}

// touch 名額不變但候補名單有變動時遞增 version，讓快取接受新的 snapshot
func (l ledger) touch(ctx context.Context, tx pgx.Tx, event *model.Event) error {
	return l.setCapacity(ctx, tx, event, event.TotalTickets, event.AvailableTickets)
}

// promoteNext 把候補名單最前面的一筆轉正；沒有候補時回傳 nil, nil
func (l ledger) promoteNext(ctx context.Context, tx pgx.Tx, event *model.Event) (*model.Booking, error) {
	if event.IsCancelled() || event.AvailableTickets <= 0 {
		return nil, nil
	}

	next, err := l.bookingRepo.NextWaiting(ctx, tx, event.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if !next.Status.CanTransitionTo(model.BookingStatusConfirmed) {
		return nil, apperrors.ErrInvalidBookingStatus
	}

	if err := l.setCapacity(ctx, tx, event, event.TotalTickets, event.AvailableTickets-1); err != nil {
		return nil, err
	}

	return l.bookingRepo.UpdateStatus(ctx, tx, next.ID, model.BookingStatusConfirmed)
}

// snapshot 在同一交易內讀出提交後的狀態
func (l ledger) snapshot(ctx context.Context, tx pgx.Tx, event *model.Event) (model.EventStatusSnapshot, error) {
	counts, err := l.bookingRepo.CountByEvent(ctx, tx, event.ID)
	if err != nil {
		return model.EventStatusSnapshot{}, err
	}
	return model.EventStatusSnapshot{
		AvailableTickets: event.AvailableTickets,
		WaitingListCount: counts.Waiting,
		BookingsCount:    counts.Confirmed,
		Version:          event.Version,
	}, nil
}

// afterCommit 更新快取並發送 activity；交易已提交，失敗只記 log 不影響回應
func (l ledger) afterCommit(ctx context.Context, event *model.Event, status model.EventStatusSnapshot, activities ...*model.BookingActivity) {
	// 請求被取消也要寫完，但最多等 sideEffectTimeout
	bg, cancel := l.sideEffectContext(ctx)
	defer cancel()

	if _, err := l.statusCache.Set(bg, event.EventID, status); err != nil {
		l.log.Warn("failed to refresh status cache",
			zap.String("event_id", event.EventID.String()), zap.Error(err))
		// 舊的 snapshot 不能留著，刪掉讓下次讀取回到資料庫
		if err := l.statusCache.Invalidate(bg, event.EventID); err != nil {
			l.log.Warn("failed to invalidate stale status",
				zap.String("event_id", event.EventID.String()), zap.Error(err))
		}
	}

	l.publish(bg, activities...)
}

func (l ledger) sideEffectContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), l.sideEffectTimeout)
}

func (l ledger) publish(ctx context.Context, activities ...*model.BookingActivity) {
	for _, activity := range activities {
		if err := l.activityQueue.PublishActivity(ctx, activity); err != nil {
			l.log.Warn("failed to publish booking activity",
				zap.String("event_id", activity.EventID.String()),
				zap.String("action", string(activity.Action)),
				zap.Error(err))
		}
	}
}

func newActivity(event *model.Event, booking *model.Booking, userID int, action model.BookingAction, status model.EventStatusSnapshot) *model.BookingActivity {
	activity := &model.BookingActivity{
		EventID:          event.EventID,
		UserID:           userID,
		Action:           action,
		AvailableTickets: status.AvailableTickets,
		WaitingListCount: status.WaitingListCount,
		OccurredAt:       time.Now().UTC(),
	}
	if booking != nil {
		id := booking.ID
		activity.BookingID = &id
	}
	return activity
}
