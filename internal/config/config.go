// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// Gemini upstream
	GeminiAPIKey        string        `env:"GEMINI_API_KEY"`
	GeminiBaseURL       string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiModel         string        `env:"GEMINI_MODEL" envDefault:"gemini-3-flash-preview"`
	GeminiFallbackModel string        `env:"GEMINI_FALLBACK_MODEL" envDefault:"gemini-2.5-flash"`
	AIMaxRetries        int           `env:"AI_MAX_RETRIES" envDefault:"2"`
	AIMaxAttempts       int           `env:"AI_MAX_ATTEMPTS" envDefault:"2"`
	AIBackoffInitial    time.Duration `env:"AI_BACKOFF_INITIAL" envDefault:"1s"`
	AIBackoffMax        time.Duration `env:"AI_BACKOFF_MAX" envDefault:"5s"`
	AIBackoffMultiplier float64       `env:"AI_BACKOFF_MULTIPLIER" envDefault:"2.0"`

	// Persistence / rate-limit stores. Both optional: without DB_URL
	// submissions are not persisted, without REDIS_URL the limiter uses
	// the in-process store.
	DBURL    string `env:"DB_URL"`
	RedisURL string `env:"REDIS_URL"`

	// Per-tool fixed-window budgets.
	DiscoverRateLimit  int           `env:"DISCOVER_RATE_LIMIT" envDefault:"6"`
	DiscoverRateWindow time.Duration `env:"DISCOVER_RATE_WINDOW" envDefault:"24h"`
	AnalyzeRateLimit   int           `env:"ANALYZE_RATE_LIMIT" envDefault:"3"`
	AnalyzeRateWindow  time.Duration `env:"ANALYZE_RATE_WINDOW" envDefault:"24h"`
	EstimateRateLimit  int           `env:"ESTIMATE_RATE_LIMIT" envDefault:"5"`
	EstimateRateWindow time.Duration `env:"ESTIMATE_RATE_WINDOW" envDefault:"24h"`
	ROIRateLimit       int           `env:"ROI_RATE_LIMIT" envDefault:"3"`
	ROIRateWindow      time.Duration `env:"ROI_RATE_WINDOW" envDefault:"24h"`
	RateLimitSweep     time.Duration `env:"RATE_LIMIT_SWEEP" envDefault:"5m"`

	// HTTP server
	MaxBodyBytes          int64         `env:"MAX_BODY_BYTES" envDefault:"65536"`
	CORSAllowOrigins      string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	GlobalRatePerMin      int           `env:"GLOBAL_RATE_PER_MIN" envDefault:"60"`
	RequestTimeout        time.Duration `env:"REQUEST_TIMEOUT" envDefault:"90s"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"120s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`

	ServiceName string `env:"SERVICE_NAME" envDefault:"ai-tools-api"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the app is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }

// BackoffConfig returns retry backoff knobs appropriate for the environment.
// Test mode shrinks the intervals so suites run fast.
func (c Config) BackoffConfig() (initial, max time.Duration, multiplier float64) {
	if c.IsTest() {
		return 10 * time.Millisecond, 100 * time.Millisecond, 2.0
	}
	return c.AIBackoffInitial, c.AIBackoffMax, c.AIBackoffMultiplier
}
