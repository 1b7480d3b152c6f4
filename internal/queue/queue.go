package queue

import (
	"context"

	"event-ticketing/internal/model"
	"event-ticketing/pkg/logger"

	"go.uber.org/zap"
)

type Delivery struct {
	Data *model.BookingActivity
	Ack  func()
	Nack func(requeue bool)
}

// ActivityQueue 傳遞已提交的名額變化；實作有 memory、Redis Stream 與 RabbitMQ
type ActivityQueue interface {
	// 發送 activity 到隊列
	PublishActivity(ctx context.Context, activity *model.BookingActivity) error
	// 訂閱 activity 隊列
	SubscribeActivities(ctx context.Context) (<-chan Delivery, error)
	Close() error
}

type MemoryActivityQueue struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch chan *model.BookingActivity
}

func NewMemoryActivityQueue(bufferSize int) ActivityQueue {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &MemoryActivityQueue{
		ch: make(chan *model.BookingActivity, bufferSize),
	}
}

func (q *MemoryActivityQueue) PublishActivity(ctx context.Context, activity *model.BookingActivity) error {
	select {
	case q.ch <- activity:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryActivityQueue) SubscribeActivities(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case activity := <-q.ch:
				d := Delivery{
					Data: activity,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if !requeue {
							return
						}
						// 隊列已滿時丟棄，避免 consumer 自己卡住
						select {
						case q.ch <- activity:
						default:
							logger.WithComponent("mq").Warn("memory queue full, dropping requeued activity",
								zap.String("event_id", activity.EventID.String()))
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (q *MemoryActivityQueue) Close() error {
	return nil
}
