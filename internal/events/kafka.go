package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/second-brain/internal/logger"
	"github.com/sbilibin2017/second-brain/internal/models"
)

//go:generate mockgen -source=kafka.go -destination=mock_kafka.go -package=events

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaPublisher sends link events to Kafka, one JSON message per event
// keyed by the link hash so events of a link stay ordered.
type KafkaPublisher struct {
	writer KafkaWriter
}

func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish is best effort: failures are logged and never reach the caller.
func (p *KafkaPublisher) Publish(ctx context.Context, event models.LinkEvent) {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal link event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Hash),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish link event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
		return
	}
	logger.Log.Infow("Link event published to Kafka", "event_id", event.EventID, "type", event.Type, "hash", event.Hash)
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
