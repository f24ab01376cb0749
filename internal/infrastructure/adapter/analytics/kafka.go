package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/integration"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/config"
)

// KafkaPublisher implements the AnalyticsPublisher port with a Kafka topic.
// Events are best effort; a slow or unreachable broker must not stall the
// request path, so the writer is async with a short batch timeout.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger coreport.Logger
}

type eventPayload struct {
	Name     string         `json:"name"`
	ActorID  string         `json:"actor_id"`
	TargetID string         `json:"target_id,omitempty"`
	Fields   map[string]any `json:"fields,omitempty"`
	At       time.Time      `json:"at"`
}

// NewKafkaPublisher creates a new KafkaPublisher instance
func NewKafkaPublisher(cfg config.KafkaConfig, logger coreport.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 100 * time.Millisecond,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warn("Failed to deliver analytics events", map[string]any{
					"count": len(messages),
					"error": err.Error(),
				})
			}
		},
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// Publish sends one event, keyed by actor so a user's events stay ordered
func (p *KafkaPublisher) Publish(ctx context.Context, event integration.Event) error {
	payload, err := json.Marshal(eventPayload{
		Name:     event.Name,
		ActorID:  event.ActorID,
		TargetID: event.TargetID,
		Fields:   event.Fields,
		At:       event.At,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal analytics event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ActorID),
		Value: payload,
	})
}

// Close flushes and releases the writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
