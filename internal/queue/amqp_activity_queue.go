package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"event-ticketing/internal/model"
	"event-ticketing/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPActivityQueue RabbitMQ 版 ActivityQueue：durable queue、persistent message、手動 ack
type AMQPActivityQueue struct {
	conn      *amqp.Connection
	pubCh     *amqp.Channel
	queueName string
	prefetch  int

	// amqp channel 不可同時 publish
	mu sync.Mutex
}

func NewAMQPActivityQueue(conn *amqp.Connection, queueName string) (ActivityQueue, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("channel open: %w", err)
	}
	if err := declareQueue(ch, queueName); err != nil {
		_ = ch.Close()
		return nil, err
	}
	return &AMQPActivityQueue{
		conn:      conn,
		pubCh:     ch,
		queueName: queueName,
		prefetch:  50,
	}, nil
}

func declareQueue(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(
		name,  // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	return nil
}

func (q *AMQPActivityQueue) PublishActivity(ctx context.Context, activity *model.BookingActivity) error {
	body, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("marshal activity: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	err = q.pubCh.PublishWithContext(ctx,
		"",          // default exchange
		q.queueName, // routing key = queue name
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

func (q *AMQPActivityQueue) SubscribeActivities(ctx context.Context) (<-chan Delivery, error) {
	ch, err := q.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("channel open: %w", err)
	}
	if err := declareQueue(ch, q.queueName); err != nil {
		_ = ch.Close()
		return nil, err
	}
	if err := ch.Qos(q.prefetch, 0, false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("set qos: %w", err)
	}
	msgs, err := ch.Consume(q.queueName, "", false, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("queue consume: %w", err)
	}

	log := logger.WithComponent("mq")
	out := make(chan Delivery)
	go func() {
		defer close(out)
		defer ch.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-msgs:
				if !ok {
					log.Warn("amqp deliveries channel closed")
					return
				}
				var activity model.BookingActivity
				if err := json.Unmarshal(d.Body, &activity); err != nil {
					log.Warn("unmarshal activity failed", zap.Error(err))
					// reject, do not requeue to avoid tight loops
					_ = d.Nack(false, false)
					continue
				}
				delivery := Delivery{
					Data: &activity,
					Ack: func() {
						if err := d.Ack(false); err != nil {
							log.Error("amqp ack failed", zap.Error(err))
						}
					},
					Nack: func(requeue bool) {
						if err := d.Nack(false, requeue); err != nil {
							log.Error("amqp nack failed", zap.Error(err))
						}
					},
				}
				select {
				case out <- delivery:
				case <-ctx.Done():
					_ = d.Nack(false, true)
					return
				}
			}
		}
	}()

	return out, nil
}

func (q *AMQPActivityQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pubCh.Close()
}
