package database

import (
	"event-ticketing/config"
	"event-ticketing/pkg/logger"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// InitAMQP 連線 RabbitMQ，broker 啟動較慢時以指數退避重試
func InitAMQP(config *config.QueueConfig) (*amqp.Connection, error) {
	backoff := time.Second
	var lastErr error
	for attempt := 1; attempt <= 5; attempt++ {
		conn, err := amqp.Dial(config.AMQPURL)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		logger.WithComponent("database").Warn("rabbitmq dial failed",
			zap.Int("attempt", attempt), zap.Duration("retry_in", backoff), zap.Error(err))
		time.Sleep(backoff)
		backoff *= 2
	}
	return nil, fmt.Errorf("dial rabbitmq: %w", lastErr)
}
