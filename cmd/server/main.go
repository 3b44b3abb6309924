package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	redisstorage "github.com/gofiber/storage/redis/v3"
	"go.uber.org/zap"

	"marketai/internal/activity"
	"marketai/internal/completion"
	"marketai/internal/config"
	"marketai/internal/jobs"
	"marketai/internal/logger"
	"marketai/internal/metrics"
	"marketai/internal/server"
	"marketai/internal/tracing"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load YAML config: %v", err)
	}
	cfg.ApplyYAML(yamlCfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zapLog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zapLog.Sync() }()

	tp, err := tracing.Setup(cfg.TracesExporter, os.Stderr, cfg.AppName, cfg.AppVersion)
	if err != nil {
		zapLog.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer tracing.Shutdown(tp, zapLog)

	// Activity store and session storage. Redis shares both across replicas.
	var (
		store          activity.Store
		sessionStorage fiber.Storage
	)
	if cfg.UsesRedis() {
		storage := redisstorage.New(redisstorage.Config{URL: cfg.RedisURL})
		defer storage.Close()

		sessionStorage = storage
		store = activity.NewRedisStore(storage.Conn(), cfg.SessionIdleTimeout)
		metrics.Init(nil)
		zapLog.Info("using redis for sessions and activity logs")
	} else {
		memStore := activity.NewMemoryStore()
		store = memStore
		metrics.Init(memStore)

		janitor := jobs.NewJanitor(memStore, cfg.JanitorInterval, cfg.SessionIdleTimeout, zapLog)
		go janitor.Start(ctx)
	}
	activityLog := activity.NewLog(store)

	client, err := newCompletionClient(ctx, cfg)
	if errors.Is(err, completion.ErrNotConfigured) {
		// Pages stay up; generation requests report the missing credentials.
		zapLog.Warn("completion provider not configured", zap.String("provider", cfg.AIProvider), zap.Error(err))
		notConfigured := err
		client = completion.ClientFunc(func(context.Context, completion.Request) (string, error) {
			return "", notConfigured
		})
	} else if err != nil {
		zapLog.Fatal("failed to initialize completion provider", zap.String("provider", cfg.AIProvider), zap.Error(err))
	}
	client = completion.Instrument(client, cfg.AIProvider, cfg.ModelID(), zapLog)

	srv := server.New(cfg, zapLog, sessionStorage)
	srv.RegisterRoutes(client, activityLog)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			zapLog.Error("server error", zap.Error(err))
		}
	}()

	zapLog.Info("server started",
		zap.String("addr", cfg.ServerAddr),
		zap.String("provider", cfg.AIProvider),
		zap.String("model", cfg.ModelID()),
		zap.String("traces_exporter", cfg.TracesExporter),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(10 * time.Second); err != nil {
		zapLog.Fatal("server forced to shutdown", zap.Error(err))
	}
	zapLog.Info("server exited")
}

// newCompletionClient builds the configured provider client.
func newCompletionClient(ctx context.Context, cfg *config.Config) (completion.Client, error) {
	switch cfg.AIProvider {
	case config.ProviderGemini:
		gemini, err := completion.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return gemini, nil
	default:
		return completion.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel, cfg.CompletionTimeout), nil
	}
}
