// Command server starts the AI tools HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/aviniti/ai-tools-api/internal/adapter/ai/gemini"
	httpserver "github.com/aviniti/ai-tools-api/internal/adapter/httpserver"
	"github.com/aviniti/ai-tools-api/internal/adapter/observability"
	"github.com/aviniti/ai-tools-api/internal/adapter/repo/postgres"
	"github.com/aviniti/ai-tools-api/internal/app"
	"github.com/aviniti/ai-tools-api/internal/config"
	"github.com/aviniti/ai-tools-api/internal/domain"
	"github.com/aviniti/ai-tools-api/internal/service/pricing"
	"github.com/aviniti/ai-tools-api/internal/service/ratelimiter"
	"github.com/aviniti/ai-tools-api/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)
	observability.InitMetrics()

	catalog, err := pricing.LoadCatalog()
	if err != nil {
		slog.Error("feature catalog load failed", slog.Any("error", err))
		os.Exit(1)
	}
	calc := pricing.NewCalculator(catalog)

	ctx := context.Background()

	// Submissions repo. Optional: without DB_URL nothing is persisted.
	var repo domain.SubmissionRepository
	var dbCheck func(context.Context) error
	if cfg.DBURL != "" {
		pool, perr := postgres.NewPool(ctx, cfg.DBURL)
		if perr != nil {
			slog.Error("db connect failed", slog.Any("error", perr))
			os.Exit(1)
		}
		defer pool.Close()
		repo = postgres.NewSubmissionRepo(pool)
		dbCheck = pool.Ping
	}

	// Rate limit store. Redis when configured, per-process memory otherwise.
	var store ratelimiter.Store
	var redisCheck func(context.Context) error
	if cfg.RedisURL != "" {
		opts, rerr := redis.ParseURL(cfg.RedisURL)
		if rerr != nil {
			slog.Error("invalid redis url", slog.Any("error", rerr))
			os.Exit(1)
		}
		rdb := redis.NewClient(opts)
		defer func() { _ = rdb.Close() }()
		store = ratelimiter.NewRedisStore(rdb)
		redisCheck = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	} else {
		mem := ratelimiter.NewMemoryStore()
		mem.StartSweep(cfg.RateLimitSweep)
		defer mem.Close()
		store = mem
	}
	limiter := ratelimiter.NewLimiter(store, map[domain.Tool]ratelimiter.Quota{
		domain.ToolIdeaDiscovery: {Limit: cfg.DiscoverRateLimit, Window: cfg.DiscoverRateWindow},
		domain.ToolIdeaAnalysis:  {Limit: cfg.AnalyzeRateLimit, Window: cfg.AnalyzeRateWindow},
		domain.ToolEstimate:      {Limit: cfg.EstimateRateLimit, Window: cfg.EstimateRateWindow},
		domain.ToolROI:           {Limit: cfg.ROIRateLimit, Window: cfg.ROIRateWindow},
	})

	aicl := gemini.New(cfg)
	tools := usecase.NewToolsService(aicl, calc, repo, cfg.GeminiModel, cfg.AIMaxAttempts)

	srv := httpserver.NewServer(cfg, tools, limiter)
	srv.DBCheck = dbCheck
	srv.RedisCheck = redisCheck

	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
