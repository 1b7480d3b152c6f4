package worker

import (
	"context"

	"event-ticketing/internal/queue"
	"event-ticketing/internal/repository"
	"event-ticketing/pkg/logger"

	"go.uber.org/zap"
)

type ActivityWorker interface {
	// 訂閱 activity 隊列並寫入資料庫；ctx 結束時停止
	Start(ctx context.Context) error
	// Done 在訂閱 channel 關閉、worker 結束後關閉
	Done() <-chan struct{}
}

type ActivityWorkerImpl struct {
	repo  repository.ActivityRepository
	queue queue.ActivityQueue
	done  chan struct{}
}

func NewActivityWorker(repo repository.ActivityRepository, queue queue.ActivityQueue) ActivityWorker {
	return &ActivityWorkerImpl{
		repo:  repo,
		queue: queue,
		done:  make(chan struct{}),
	}
}

func (w *ActivityWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeActivities(ctx)
	if err != nil {
		close(w.done)
		return err
	}

	log := logger.WithComponent("worker")

	go func() {
		defer close(w.done)
		for msg := range msgs {
			// 把「訊息」變成資料庫中的稽核紀錄
			_, err := w.repo.Create(ctx, msg.Data)
			if err != nil {
				// 資料庫暫時連不上，交回隊列重試
				log.Warn("failed to persist booking activity",
					zap.String("event_id", msg.Data.EventID.String()),
					zap.String("action", string(msg.Data.Action)),
					zap.Error(err))
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
	}()
	return nil
}

func (w *ActivityWorkerImpl) Done() <-chan struct{} {
	return w.done
}
