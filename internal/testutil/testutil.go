// Package testutil 提供整合測試用的 Postgres / Redis / RabbitMQ 連線；連不上時跳過測試
package testutil

import (
	"context"
	"sync"
	"testing"

	"event-ticketing/config"
	"event-ticketing/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

var migrateOnce sync.Once
var migrateErr error

// SetupDB 連線測試資料庫、套用 migration 並清空資料表
func SetupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	cfg := config.LoadTestConfig()
	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(pool.Close)

	migrateOnce.Do(func() {
		migrateErr = database.RunMigrations(&cfg.Database)
	})
	if migrateErr != nil {
		t.Fatalf("Failed to run migrations: %v", migrateErr)
	}

	Truncate(t, pool)
	return pool
}

// Truncate 清空所有資料表並重設 id
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		"TRUNCATE booking_activities, bookings, events, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// SetupRedis 連線測試 Redis；各測試自行清理使用到的 key
func SetupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	cfg := config.LoadTestConfig()
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		t.Skipf("test redis unavailable: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

// SetupAMQP 連線測試 RabbitMQ；只嘗試一次，連不上就跳過
func SetupAMQP(t *testing.T) *amqp.Connection {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping rabbitmq integration test in short mode")
	}

	cfg := config.LoadTestConfig()
	conn, err := amqp.Dial(cfg.Queue.AMQPURL)
	if err != nil {
		t.Skipf("test rabbitmq unavailable: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// CreateUser 直接寫入一筆使用者，回傳 id
func CreateUser(t *testing.T, pool *pgxpool.Pool, username string, isAdmin bool) int {
	t.Helper()

	query := `
		INSERT INTO users (username, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int
	err := pool.QueryRow(context.Background(), query, username, username+"@example.com", "x", isAdmin).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}
