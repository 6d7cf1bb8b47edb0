// Package consumers holds the Kafka message handlers.
package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"paygate/internal/messaging"
	"paygate/internal/webhook"
	"paygate/pkg/logger"
	"paygate/pkg/metrics"
)

// NotificationConsumer drains queued gateway notifications and feeds them
// through the webhook adapter.
type NotificationConsumer struct {
	logger  *logger.Logger
	adapter *webhook.Adapter
	topic   string
	group   string
}

func NewNotificationConsumer(l *logger.Logger, adapter *webhook.Adapter, topic, group string) *NotificationConsumer {
	return &NotificationConsumer{
		logger:  l,
		adapter: adapter,
		topic:   topic,
		group:   group,
	}
}

// HandleMessage processes a single queued notification.
func (c *NotificationConsumer) HandleMessage(ctx context.Context, key, value []byte) error {
	start := time.Now()

	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		c.logger.Error("Failed to unmarshal envelope: key=%s error=%v", string(key), err)
		c.observe(start, "malformed")
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	if env.Type != webhook.MsgTypeNotification {
		c.logger.Warn("Unexpected message type, skipping: event_id=%s type=%s", env.EventID, env.Type)
		c.observe(start, "skipped")
		return nil
	}

	c.logger.DebugCtx(ctx, "Processing queued notification: event_id=%s", env.EventID)

	// The adapter owns all failure handling for notification mode: parse
	// failures, unknown orders, and declines all resolve to a terminal
	// outcome, so nothing is returned for redelivery.
	c.adapter.HandleInboundResponse(ctx, env.Payload, webhook.ModeNotification)

	c.observe(start, "success")
	return nil
}

func (c *NotificationConsumer) observe(start time.Time, status string) {
	metrics.KafkaMessagesProcessed.WithLabelValues(c.topic, c.group, status).Inc()
	metrics.KafkaProcessingDuration.WithLabelValues(c.topic, c.group, status).Observe(time.Since(start).Seconds())
}
