package health

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// KafkaChecker reports whether the notification broker is reachable.
type KafkaChecker struct {
	brokers []string
}

func NewKafkaChecker(brokers []string) *KafkaChecker {
	return &KafkaChecker{brokers: brokers}
}

func (c *KafkaChecker) Name() string {
	return "kafka"
}

// Check dials brokers in order and reports up on the first successful
// connection. One reachable broker is enough to publish.
func (c *KafkaChecker) Check(ctx context.Context) Result {
	for _, broker := range c.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err == nil {
			_ = conn.Close()
			return Result{Status: StatusUp}
		}
	}
	return Result{Status: StatusDown, Message: "all brokers unreachable"}
}
