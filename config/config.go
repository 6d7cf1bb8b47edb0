package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	AcmePayBaseURL       string        `env:"ACMEPAY_BASE_URL" required:"true"`
	AcmePayCapturePath   string        `env:"ACMEPAY_CAPTURE_PATH" envDefault:"/v1/captures"`
	AcmePayQueryPath     string        `env:"ACMEPAY_QUERY_PATH" envDefault:"/v1/transactions"`
	AcmePayClientTimeout time.Duration `env:"ACMEPAY_CLIENT_TIMEOUT" envDefault:"20s"`

	// Gateway capability flags.
	AuthorizationOnly       bool     `env:"AUTHORIZATION_ONLY" envDefault:"false"`
	SupportsCapture         bool     `env:"SUPPORTS_CAPTURE" envDefault:"true"`
	SupportsPartialCapture  bool     `env:"SUPPORTS_PARTIAL_CAPTURE" envDefault:"true"`
	PartialCaptureEnabled   bool     `env:"PARTIAL_CAPTURE_ENABLED" envDefault:"true"`
	AuthorizationTimeWindow int      `env:"AUTHORIZATION_TIME_WINDOW_HOURS" envDefault:"720"`
	DetailedDeclineMessages bool     `env:"DETAILED_DECLINE_MESSAGES" envDefault:"false"`
	HeldOrderStatus         string   `env:"HELD_ORDER_STATUS" envDefault:"on-hold"`
	CaptureOnStatuses       []string `env:"CAPTURE_ON_STATUSES" envSeparator:","`

	// Customer-facing destinations for redirect mode.
	ThankYouURL string `env:"THANK_YOU_URL" required:"true"`
	RetryURL    string `env:"RETRY_URL" required:"true"`
	HomeURL     string `env:"HOME_URL" required:"true"`

	// Response cache. An empty RedisAddr falls back to the in-process store.
	RedisAddr     string        `env:"REDIS_ADDR"`
	CacheLifetime time.Duration `env:"CACHE_LIFETIME" envDefault:"5m"`

	OpensearchUrls          []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexPayments string   `env:"OPENSEARCH_INDEX_PAYMENTS" envDefault:"payments"`

	// Webhook processing mode: "sync" (inline) or "kafka" (async via Kafka)
	WebhookMode string `env:"WEBHOOK_MODE" envDefault:"sync"`

	// Kafka configuration
	KafkaBrokers                    []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaNotificationsTopic         string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"gateway.notifications"`
	KafkaNotificationsDLQTopic      string   `env:"KAFKA_NOTIFICATIONS_DLQ_TOPIC" envDefault:"gateway.notifications.dlq"`
	KafkaNotificationsConsumerGroup string   `env:"KAFKA_NOTIFICATIONS_CONSUMER_GROUP" envDefault:"paygate-notifications"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
