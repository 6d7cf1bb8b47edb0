package kafka

import (
	"context"
	"encoding/json"

	"paygate/internal/messaging"
	"paygate/pkg/correlation"
	"paygate/pkg/logger"
	"paygate/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// Publisher implements messaging.Publisher using Kafka.
type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

// NewPublisher creates a new Kafka publisher.
func NewPublisher(l *logger.Logger, brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{
		writer: writer,
		logger: l,
	}
}

// Publish sends an envelope to Kafka. The request's correlation ID rides
// along as a message header.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
	}
	if id := correlation.FromContext(ctx); id != "" {
		msg.Headers = append(msg.Headers, kafka.Header{
			Key:   correlation.KafkaHeaderName,
			Value: []byte(id),
		})
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.KafkaPublishErrors.WithLabelValues(p.writer.Topic).Inc()
		p.logger.Error("Failed to publish message: topic=%s key=%s error=%v",
			p.writer.Topic, env.Key, err)
		return err
	}

	metrics.KafkaMessagesPublished.WithLabelValues(p.writer.Topic).Inc()
	p.logger.Debug("Message published: topic=%s key=%s event_id=%s",
		p.writer.Topic, env.Key, env.EventID)
	return nil
}

// Close closes the Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
