package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"event-ticketing/internal/model"
	"event-ticketing/internal/queue"
	"event-ticketing/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 簡單的 repository 替身：前 failures 次回傳錯誤
type fakeActivityRepo struct {
	repository.ActivityRepository // 嵌入介面

	mu       sync.Mutex
	failures int
	saved    chan *model.BookingActivity
}

func (r *fakeActivityRepo) Create(ctx context.Context, a *model.BookingActivity) (*model.BookingActivity, error) {
	r.mu.Lock()
	if r.failures > 0 {
		r.failures--
		r.mu.Unlock()
		return nil, errors.New("db unavailable")
	}
	r.mu.Unlock()
	r.saved <- a
	return a, nil
}

func TestActivityWorker_PersistsActivity(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// 1. 準備 Memory Queue 與 repository 替身
	q := queue.NewMemoryActivityQueue(10)
	repo := &fakeActivityRepo{saved: make(chan *model.BookingActivity, 1)}

	// 2. 啟動 Worker
	w := NewActivityWorker(repo, q)
	require.NoError(t, w.Start(ctx))

	// 3. 模擬 service 提交後發送 activity
	activity := &model.BookingActivity{EventID: uuid.New(), UserID: 7, Action: model.ActionBooked}
	require.NoError(t, q.PublishActivity(ctx, activity))

	// 4. 驗證寫入
	select {
	case saved := <-repo.saved:
		assert.Equal(t, activity.EventID, saved.EventID)
		assert.Equal(t, model.ActionBooked, saved.Action)
	case <-time.After(time.Second):
		t.Fatal("超時！Worker 沒有在時間內處理 activity")
	}
}

func TestActivityWorker_RetriesOnFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewMemoryActivityQueue(10)
	repo := &fakeActivityRepo{failures: 2, saved: make(chan *model.BookingActivity, 1)}

	w := NewActivityWorker(repo, q)
	require.NoError(t, w.Start(ctx))

	require.NoError(t, q.PublishActivity(ctx, &model.BookingActivity{EventID: uuid.New(), Action: model.ActionCancelled}))

	// Nack(true) 後重新投遞，第三次成功
	select {
	case saved := <-repo.saved:
		assert.Equal(t, model.ActionCancelled, saved.Action)
	case <-time.After(time.Second):
		t.Fatal("超時！Nack 後沒有重試")
	}
}

func TestActivityWorker_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	w := NewActivityWorker(&fakeActivityRepo{saved: make(chan *model.BookingActivity, 1)}, queue.NewMemoryActivityQueue(1))
	require.NoError(t, w.Start(ctx))

	cancel()
	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("worker 沒有在 ctx 結束後停止")
	}
}
