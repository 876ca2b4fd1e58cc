package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payswitch/config"
	"payswitch/internal/api/handlers"
	"payswitch/internal/connectors/checkout"
	"payswitch/internal/domain/blocklist"
	"payswitch/internal/external/kafka"
	"payswitch/internal/ingest"
	blocklist_repo "payswitch/internal/repo/blocklist"
	"payswitch/pkg/health"
	"payswitch/pkg/logger"
	"payswitch/pkg/postgres"
)

const shutdownTimeout = 5 * time.Second

// Run bootstraps and runs the webhook ingestion service.
func Run(cfg config.Config) error {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.LogFormat == "console"})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := ApplyMigrations(cfg.PgURL, MigrationFS); err != nil {
		return fmt.Errorf("api - Run - ApplyMigrations: %w", err)
	}

	pg, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		return fmt.Errorf("api - Run - postgres.New: %w", err)
	}
	defer pg.Close()

	slog.Info("initializing kafka publisher",
		"brokers", cfg.KafkaBrokers, "topic", cfg.KafkaEventsTopic)
	publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaEventsTopic)
	defer func() { _ = publisher.Close() }()

	ingestService := ingest.NewService(map[string]ingest.Registration{
		"checkout": {Hook: checkout.New(), Secret: []byte(cfg.CheckoutWebhookSecret)},
	}, publisher)

	blocklistService := blocklist.NewService(blocklist_repo.NewPgBlocklistRepo(pg))

	webhookHandler := handlers.NewWebhookHandler(ingestService)
	blocklistHandler := handlers.NewBlocklistHandler(blocklistService)

	healthRegistry := health.NewRegistry(
		health.NewPostgresChecker(pg.Pool),
		health.NewKafkaChecker(cfg.KafkaBrokers),
	)

	engine := NewGinEngine()
	router := NewRouter(&webhookHandler, &blocklistHandler, healthRegistry)
	router.SetUp(engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	go func() {
		slog.Info("webhook ingestion service started", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down webhook ingestion service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api - Run - server.Shutdown: %w", err)
	}

	slog.Info("webhook ingestion service stopped")
	return nil
}
