package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/JP-maker/gamegauge-api/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// eventPublisher emits activity events. A nil writer disables publishing.
type eventPublisher struct {
	writer KafkaWriter
	now    func() time.Time
}

// publish never fails the caller: the action it reports is already committed.
func (p eventPublisher) publish(ctx context.Context, eventType, email string, boardID, entityID int64) {
	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: p.now().Unix(),
		UserEmail: email,
		BoardID:   boardID,
		EntityID:  entityID,
	}

	if p.writer == nil {
		logger.FromContext(ctx).Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.FromContext(ctx).Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.FromContext(ctx).Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType)
	}
}
