package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Notification is the message published to the notifications topic.
type Notification struct {
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}

type kafkaNotifier struct {
	writer *kafka.Writer
}

// NewKafkaNotifier returns a Notifier that publishes notifications to a
// Kafka topic for a downstream delivery worker to consume.
func NewKafkaNotifier(brokers []string, topic string) Notifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &kafkaNotifier{writer: writer}
}

func (n *kafkaNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(Notification{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(recipient),
		Value: payload,
	}); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}

func (n *kafkaNotifier) Close() error { return n.writer.Close() }
