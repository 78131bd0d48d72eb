package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"

	"github.com/dskvich/image-api/pkg/database"
	"github.com/dskvich/image-api/pkg/llm/gemini"
	"github.com/dskvich/image-api/pkg/llm/replicate"
	"github.com/dskvich/image-api/pkg/logger"
	"github.com/dskvich/image-api/pkg/poller"
	"github.com/dskvich/image-api/pkg/repository"
	"github.com/dskvich/image-api/pkg/server"
	"github.com/dskvich/image-api/pkg/services"
)

type Config struct {
	Port              string `env:"PORT" envDefault:"8080"`
	GeminiAPIKey      string `env:"GEMINI_API_KEY"`
	ReplicateAPIToken string `env:"REPLICATE_API_TOKEN"`
	PgURL             string `env:"DATABASE_URL"`
	PgHost            string `env:"DB_HOST" envDefault:"localhost:5432"`

	// Missing AI credentials do not abort startup: the affected endpoints
	// answer 500 until the operator supplies them.

	HistoryImagePrefixLen int           `env:"HISTORY_IMAGE_PREFIX_LEN" envDefault:"100"`
	PollInterval          time.Duration `env:"GENERATION_POLL_INTERVAL" envDefault:"1s"`
	PollMaxAttempts       int           `env:"GENERATION_POLL_MAX_ATTEMPTS" envDefault:"30"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	svcGroup, cleanup, err := setupServices()
	if err != nil {
		return err
	}
	defer cleanup()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return svcGroup.Start(ctx)
}

func setupServices() (services.Group, func(), error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing env config: %w", err)
	}

	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY is not set, /api/describe will fail")
	}
	if cfg.ReplicateAPIToken == "" {
		slog.Warn("REPLICATE_API_TOKEN is not set, /api/generate will fail")
	}

	db, err := database.NewDB(cfg.PgURL, cfg.PgHost)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing database: %w", err)
	}
	cleanup := func() {
		if err := db.Close(); err != nil {
			slog.Error("closing database", logger.Err(err))
		}
	}

	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, "")
	replicateClient := replicate.NewClient(cfg.ReplicateAPIToken, "")
	historyRepository := repository.NewHistoryRepository(db)

	router := server.NewRouter(
		server.Config{
			ImagePrefixLen: cfg.HistoryImagePrefixLen,
			Poller: poller.Poller{
				Interval:    cfg.PollInterval,
				MaxAttempts: cfg.PollMaxAttempts,
			},
		},
		geminiClient,
		replicateClient,
		historyRepository,
		db,
	)

	var svcGroup services.Group

	svc, err := services.NewHTTPServer(":"+cfg.Port, router)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("creating http server: %w", err)
	}
	svcGroup = append(svcGroup, svc)

	return svcGroup, cleanup, nil
}
