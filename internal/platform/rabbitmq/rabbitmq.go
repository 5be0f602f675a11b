package rabbitmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"legalassist/internal/platform"
)

// New dials the broker and declares queueName as a durable queue so both the
// publisher and the consumer can rely on it.
func New(ctx context.Context, logger *zap.Logger, url, queueName string) (*amqp.Connection, error) {
	var conn *amqp.Connection
	err := platform.Connect(ctx, logger, "rabbitmq", func() error {
		c, err := amqp.Dial(url)
		if err != nil {
			return fmt.Errorf("dial rabbitmq failed: %w", err)
		}
		if err := declareQueue(c, queueName); err != nil {
			_ = c.Close()
			return err
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func declareQueue(conn *amqp.Connection, queueName string) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}
	return nil
}
