package app

import (
	"context"

	"paygate/config"
	"paygate/internal/consumers"
	"paygate/internal/external/kafka"
	"paygate/internal/messaging"
	"paygate/internal/webhook"
	"paygate/pkg/logger"
)

// StartWorkers starts the Kafka consumer draining queued gateway
// notifications. It stops when ctx is cancelled.
func StartWorkers(
	ctx context.Context,
	l *logger.Logger,
	cfg config.Config,
	adapter *webhook.Adapter,
) {
	controller := consumers.NewNotificationConsumer(l, adapter,
		cfg.KafkaNotificationsTopic, cfg.KafkaNotificationsConsumerGroup)

	consumer := kafka.NewConsumer(
		l,
		cfg.KafkaBrokers,
		cfg.KafkaNotificationsTopic,
		cfg.KafkaNotificationsConsumerGroup,
	)

	dlq := kafka.NewDLQPublisher(l, cfg.KafkaBrokers, cfg.KafkaNotificationsDLQTopic)
	handler := messaging.WithDLQ(
		messaging.WithRetry(controller.HandleMessage, messaging.DefaultRetryConfig()),
		dlq,
	)

	runner := messaging.NewRunner(l, []messaging.Worker{consumer}, handler)

	go func() {
		l.Info("Starting notification consumer: topic=%s group=%s",
			cfg.KafkaNotificationsTopic, cfg.KafkaNotificationsConsumerGroup)
		if err := runner.Start(ctx); err != nil {
			l.Error("Notification runner failed: error=%v", err)
		}
	}()
}
