// pkg/kafka/activity_producer.go
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

const TopicUserActivity = "user.activity"

// ActivityEvent is the record published for every authentication-relevant
// request. Persistence and querying of the log live in a separate service.
type ActivityEvent struct {
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId,omitempty"`
	IP        string    `json:"ip"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type ActivityProducer struct {
	producer sarama.SyncProducer
}

func NewActivityProducer(brokers []string) (*ActivityProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Return.Errors = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return &ActivityProducer{producer: producer}, nil
}

// Publish sends one activity event, partitioned by event ID.
func (p *ActivityProducer) Publish(ctx context.Context, event *ActivityEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: TopicUserActivity,
		Key:   sarama.StringEncoder(event.EventID),
		Value: sarama.ByteEncoder(data),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to send event: %w", err)
	}
	return nil
}

func (p *ActivityProducer) Close() error {
	return p.producer.Close()
}
