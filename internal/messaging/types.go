package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Envelope is the wire format for queued gateway notifications. Key carries
// the order ID so all messages for one order land on the same partition, and
// Type routes the payload to the right consumer.
type Envelope struct {
	EventID   string          `json:"event_id"`
	Key       string          `json:"key"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope marshals the payload and stamps a fresh event ID.
func NewEnvelope(key, msgType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:   uuid.New().String(),
		Key:       key,
		Type:      msgType,
		Payload:   data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Publisher hands envelopes to the broker.
type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}

// MessageHandler processes one raw message. A non-nil return leaves the
// offset uncommitted so the middleware chain decides between retry and DLQ.
type MessageHandler func(ctx context.Context, key, value []byte) error

// Worker pulls messages from the broker and feeds them to a handler.
type Worker interface {
	Start(ctx context.Context, handler MessageHandler) error
	Close() error
}
