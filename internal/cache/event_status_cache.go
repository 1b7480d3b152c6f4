package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"event-ticketing/internal/model"
	apperrors "event-ticketing/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type EventStatusCache interface {
	// 讀取快取中的名額狀態，不存在時回傳 ErrCacheMiss，活動已刪除時回傳 ErrEventNotFound
	Get(ctx context.Context, eventID uuid.UUID) (*model.EventStatusSnapshot, error)
	// 寫入名額狀態；只有 version 比現有的新才會覆蓋 (Lua 腳本確保原子性)
	Set(ctx context.Context, eventID uuid.UUID, status model.EventStatusSnapshot) (bool, error)
	// 刪除快取，下次讀取回到資料庫
	Invalidate(ctx context.Context, eventID uuid.UUID) error
	// 活動刪除後寫入刪除標記，之後的 Set 都不會生效
	MarkRemoved(ctx context.Context, eventID uuid.UUID) error
}

type RedisEventStatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

const defaultStatusTTL = 5 * time.Minute

func NewRedisEventStatusCache(client *redis.Client, ttl time.Duration) EventStatusCache {
	if ttl <= 0 {
		ttl = defaultStatusTTL
	}
	return &RedisEventStatusCache{
		client: client,
		ttl:    ttl,
	}
}

// 名額狀態 key
func (c *RedisEventStatusCache) getStatusKey(eventID uuid.UUID) string {
	return fmt.Sprintf("event:%s:status", eventID)
}

func (c *RedisEventStatusCache) Get(ctx context.Context, eventID uuid.UUID) (*model.EventStatusSnapshot, error) {
	result, err := c.client.HGetAll(ctx, c.getStatusKey(eventID)).Result()
	if err != nil {
		return nil, err
	}

	// 檢查 key 是否存在
	if len(result) == 0 {
		return nil, apperrors.ErrCacheMiss
	}
	if result["removed"] == "1" {
		return nil, apperrors.ErrEventNotFound
	}

	fields := []string{"available", "waiting", "bookings", "version"}
	values := make([]int64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseInt(result[field], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", field, err)
		}
		values[i] = v
	}

	return &model.EventStatusSnapshot{
		AvailableTickets: int(values[0]),
		WaitingListCount: int(values[1]),
		BookingsCount:    int(values[2]),
		Version:          values[3],
	}, nil
}

/*
寫入名額狀態 (使用Lua腳本確保原子性)
 1. 已有刪除標記時不寫入
 2. 目前的 version >= 新 version 時不覆蓋，避免較舊的 snapshot 蓋掉較新的
 3. 寫入並設定 TTL
*/
func (c *RedisEventStatusCache) Set(ctx context.Context, eventID uuid.UUID, status model.EventStatusSnapshot) (bool, error) {
	script := `
		local key = KEYS[1]
		local version = tonumber(ARGV[1])

		if redis.call('HGET', key, 'removed') == '1' then
			return 0
		end

		local current = redis.call('HGET', key, 'version')
		if current and tonumber(current) >= version then
			return 0
		end

		redis.call('HSET', key,
			'version', ARGV[1],
			'available', ARGV[2],
			'waiting', ARGV[3],
			'bookings', ARGV[4])
		redis.call('PEXPIRE', key, ARGV[5])

		return 1
	`

	result, err := c.client.Eval(ctx, script, []string{c.getStatusKey(eventID)},
		status.Version,
		status.AvailableTickets,
		status.WaitingListCount,
		status.BookingsCount,
		c.ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return false, err
	}

	switch result {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, errors.New("unexpected result")
	}
}

func (c *RedisEventStatusCache) Invalidate(ctx context.Context, eventID uuid.UUID) error {
	return c.client.Del(ctx, c.getStatusKey(eventID)).Err()
}

// MarkRemoved 以刪除標記取代舊狀態並保留 TTL；在此之前提交的請求若晚到也無法寫回
func (c *RedisEventStatusCache) MarkRemoved(ctx context.Context, eventID uuid.UUID) error {
	key := c.getStatusKey(eventID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, "removed", "1")
		pipe.PExpire(ctx, key, c.ttl)
		return nil
	})
	return err
}
