package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/psiarze/internal/logger"
	"github.com/sbilibin2017/psiarze/internal/models"
)

// Transactor runs fn inside one unit of work.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventObserver is told the outcome of every write attempt.
type EventObserver interface {
	ObserveEvent(eventType string, err error)
}

// ActivityPublisher publishes activity events to Kafka. A nil publisher or a
// publisher without a writer drops events.
type ActivityPublisher struct {
	writer   KafkaWriter
	observer EventObserver
	now      func() time.Time
}

// NewActivityPublisher creates a publisher over writer, which may be nil.
func NewActivityPublisher(writer KafkaWriter) *ActivityPublisher {
	return &ActivityPublisher{writer: writer, now: time.Now}
}

// WithObserver attaches o and returns p.
func (p *ActivityPublisher) WithObserver(o EventObserver) *ActivityPublisher {
	p.observer = o
	return p
}

// Publish sends one event keyed by actorID. Failures are logged, never returned:
// the state change the event describes is already committed.
func (p *ActivityPublisher) Publish(ctx context.Context, eventType string, actorID, subjectID uuid.UUID) {
	if p == nil || p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType)
		return
	}

	event := models.ActivityEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID.String(),
		SubjectID: subjectID.String(),
		Timestamp: p.now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ActorID),
		Value: data,
	}

	err = p.writer.WriteMessages(context.WithoutCancel(ctx), msg)
	if p.observer != nil {
		p.observer.ObserveEvent(eventType, err)
	}
	if err != nil {
		logger.Log.Errorw("Failed to publish activity event", "event_id", event.EventID, "type", eventType, "error", err)
		return
	}
	logger.Log.Infow("Activity event published", "event_id", event.EventID, "type", eventType)
}
