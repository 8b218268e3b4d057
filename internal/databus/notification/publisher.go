//go:generate mockgen -destination=mock_publisher_test.go -package=${GOPACKAGE} -source=publisher.go
package notification

import (
	"context"
	"fmt"

	"github.com/s21platform/stream-service/internal/model"
)

// KafkaProducer is satisfied by the kafka-lib producer.
type KafkaProducer interface {
	ProduceMessage(ctx context.Context, message interface{}, key interface{}) error
}

// Publisher pushes admission notifications onto the notification topic.
// Delivery is fire-and-forget from the caller's point of view.
type Publisher struct {
	producer KafkaProducer
}

func New(producer KafkaProducer) *Publisher {
	return &Publisher{
		producer: producer,
	}
}

func (p *Publisher) Publish(ctx context.Context, notification model.Notification) error {
	err := p.producer.ProduceMessage(ctx, notification, notification.RecipientID.String())
	if err != nil {
		return fmt.Errorf("failed to produce notification: %w", err)
	}

	return nil
}
