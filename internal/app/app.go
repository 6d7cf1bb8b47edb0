// Package app wires the service together.
package app

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"paygate/config"
	"paygate/internal/cache"
	"paygate/internal/controller/rest"
	"paygate/internal/controller/rest/handlers"
	"paygate/internal/domain/capture"
	"paygate/internal/domain/order"
	"paygate/internal/domain/payment"
	"paygate/internal/external/acmepay"
	"paygate/internal/external/kafka"
	"paygate/internal/external/opensearch"
	order_repo "paygate/internal/repo/order"
	"paygate/internal/webhook"
	"paygate/pkg/health"
	"paygate/pkg/logger"
	"paygate/pkg/postgres"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := NewGinEngine(l)

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	if err = ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	orderRepo := order_repo.NewPgOrderRepo(pool)

	checkers := []health.Checker{health.NewPostgresChecker(pool.Pool)}

	// Response cache: Redis when configured, in-process otherwise.
	var cacheStore cache.Store = cache.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - cache.NewRedisClient: %w", err))
		}
		defer rdb.Close()
		cacheStore = cache.NewRedisStore(rdb)
		checkers = append(checkers, health.NewRedisChecker(rdb))
	}
	respCache := cache.New(cacheStore, l)

	acmeClient := acmepay.New(
		cfg.AcmePayBaseURL,
		cfg.AcmePayCapturePath,
		cfg.AcmePayQueryPath,
		&http.Client{Timeout: cfg.AcmePayClientTimeout},
		respCache,
		cfg.CacheLifetime,
	)

	events := payment.NewEvents()

	processor := payment.NewProcessor(orderRepo, payment.Config{
		AuthorizationOnly:       cfg.AuthorizationOnly,
		HeldOrderStatus:         order.Status(cfg.HeldOrderStatus),
		DetailedDeclineMessages: cfg.DetailedDeclineMessages,
	}, events, l)

	captureEngine := capture.NewEngine(orderRepo, acmeClient, capture.Config{
		SupportsCapture:         cfg.SupportsCapture,
		SupportsPartialCapture:  cfg.SupportsPartialCapture,
		PartialCaptureEnabled:   cfg.PartialCaptureEnabled,
		AuthorizationTimeWindow: cfg.AuthorizationTimeWindow,
	}, events, l)

	if len(cfg.CaptureOnStatuses) > 0 {
		statuses := make([]order.Status, 0, len(cfg.CaptureOnStatuses))
		for _, raw := range cfg.CaptureOnStatuses {
			status, err := order.NewStatus(raw)
			if err != nil {
				l.Fatal(fmt.Errorf("app - Run - invalid capture-on status %q", raw))
			}
			statuses = append(statuses, status)
		}
		events.OnOrderStatusChanged(captureEngine.StatusHook(statuses))
	}

	if len(cfg.OpensearchUrls) > 0 {
		exporter, err := opensearch.NewPaymentExporter(ctx, l, cfg.OpensearchUrls, cfg.OpensearchIndexPayments)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - opensearch.NewPaymentExporter: %w", err))
		}
		events.OnPaymentProcessed(exporter.Hook(events))
	}

	adapter := webhook.NewAdapter(acmeClient, processor, orderRepo, webhook.URLs{
		ThankYou: cfg.ThankYouURL,
		Retry:    cfg.RetryURL,
		Home:     cfg.HomeURL,
	}, l)

	syncIngestor := webhook.NewSyncIngestor(adapter)
	var ingestor webhook.Ingestor = syncIngestor
	if cfg.WebhookMode == "kafka" {
		l.Info("Webhook mode: kafka - notifications processed asynchronously")
		publisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaNotificationsTopic)
		defer publisher.Close()
		ingestor = webhook.NewAsyncIngestor(syncIngestor, publisher, l)
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))
		StartWorkers(ctx, l, cfg, adapter)
	}

	orderHandler := handlers.NewOrderHandler(orderRepo, captureEngine)
	gatewayHandler := handlers.NewGatewayHandler(ingestor, acmeClient, orderRepo, cfg.AuthorizationOnly)

	router := rest.NewRouter(orderHandler, gatewayHandler)
	router.SetUp(engine)
	setUpObservability(engine, health.NewRegistry(checkers...))

	go func() {
		l.Info("Starting HTTP server: port=%d", cfg.Port)
		if err := engine.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			l.Error("HTTP server error: error=%v", err)
		}
	}()

	<-ctx.Done()
	l.Info("Shutting down gracefully...")
}
