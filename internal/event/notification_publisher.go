package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agency-service/internal/models"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationPublisher publishes notification events to RabbitMQ
type NotificationPublisher struct {
	conn *RabbitMQConnection
}

// NewNotificationPublisher creates a new notification event publisher
func NewNotificationPublisher(conn *RabbitMQConnection) *NotificationPublisher {
	return &NotificationPublisher{conn: conn}
}

// PublishNotification publishes a notification event to the push_noti_events queue
func (p *NotificationPublisher) PublishNotification(ctx context.Context, event NotificationEventPushModel) error {
	_, err := p.conn.Channel.QueueDeclare(
		PushNotiQueue, // queue name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",            // exchange
		PushNotiQueue, // routing key (queue name)
		false,         // mandatory
		false,         // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification event: %w", err)
	}

	return nil
}

// NotifyImportCompleted sends the end-of-batch summary notification to the
// operator who started the import.
func (p *NotificationPublisher) NotifyImportCompleted(ctx context.Context, userID string, summary models.ImportSummary) error {
	event := NotificationEventPushModel{
		Title: "Policy Import Completed",
		Body: fmt.Sprintf("%d policies imported, %d failed, %d skipped (no insurer match).",
			summary.Succeeded, summary.Errored, summary.Skipped),
		Data: map[string]interface{}{
			"succeeded": summary.Succeeded,
			"errored":   summary.Errored,
			"skipped":   summary.Skipped,
		},
	}
	if userID != "" {
		event.LstUserIds = []string{userID}
	}
	return p.PublishNotification(ctx, event)
}
