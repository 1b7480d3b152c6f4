package repository_test

import (
	"context"
	"testing"
	"time"

	"event-ticketing/internal/model"
	"event-ticketing/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2026, 12, 24, 19, 0, 0, 0, time.UTC)

// createTestEvent 輔助函數：建立 total 名額全數可訂的活動
func createTestEvent(t *testing.T, pool *pgxpool.Pool, name string, total int) *model.Event {
	t.Helper()
	event, err := repository.NewEventRepository(pool).Create(context.Background(), &model.Event{
		EventID:          uuid.New(),
		Name:             name,
		Venue:            "Main Hall",
		Date:             testDate,
		Price:            800,
		Description:      "integration",
		TotalTickets:     total,
		AvailableTickets: total,
		Status:           model.EventStatusActive,
	})
	require.NoError(t, err)
	return event
}

// inTx 在交易內執行 fn，測試結束前提交
func inTx(t *testing.T, pool *pgxpool.Pool, fn func(tx pgx.Tx)) {
	t.Helper()
	err := repository.NewTxManager(pool).WithTx(context.Background(), func(tx pgx.Tx) error {
		fn(tx)
		return nil
	})
	require.NoError(t, err)
}
