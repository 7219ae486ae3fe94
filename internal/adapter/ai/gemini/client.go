// Package gemini implements domain.AIClient against the Gemini REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/aviniti/ai-tools-api/internal/adapter/observability"
	"github.com/aviniti/ai-tools-api/internal/config"
	"github.com/aviniti/ai-tools-api/internal/domain"
)

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 4096
	defaultTimeout     = 30 * time.Second
)

// Client calls the generateContent endpoint directly over HTTP. The primary
// model is retried with backoff; when it is exhausted the configured fallback
// model gets one attempt before the call fails.
type Client struct {
	cfg config.Config
	hc  *http.Client
}

func New(cfg config.Config) *Client {
	return &Client{
		cfg: cfg,
		// Per-call deadlines come from GenerateOptions.Timeout; the client
		// timeout is only a hard ceiling.
		hc: &http.Client{Timeout: 2 * time.Minute},
	}
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// GenerateJSON sends the prompt to Gemini and returns the raw response text.
// JSON extraction and schema validation happen upstream.
func (c *Client) GenerateJSON(ctx context.Context, spec domain.PromptSpec, opts domain.GenerateOptions) ([]byte, error) {
	if c.cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY missing", domain.ErrAIUnavailable)
	}

	raw, err := c.generateWithModel(ctx, c.cfg.GeminiModel, spec, opts)
	if err == nil {
		return raw, nil
	}
	if c.cfg.GeminiFallbackModel == "" || c.cfg.GeminiFallbackModel == c.cfg.GeminiModel {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, err
	}

	slog.Warn("primary model exhausted, trying fallback",
		slog.String("model", c.cfg.GeminiModel),
		slog.String("fallback", c.cfg.GeminiFallbackModel),
		slog.Any("error", err))
	observability.AIFallbacksTotal.Inc()

	raw, fbErr := c.attempt(ctx, c.cfg.GeminiFallbackModel, spec, opts)
	if fbErr != nil {
		return nil, fmt.Errorf("fallback model failed: %w", errors.Join(err, fbErr))
	}
	return raw, nil
}

// generateWithModel retries a single model with exponential backoff. 429 and
// 5xx are retryable, other 4xx are permanent.
func (c *Client) generateWithModel(ctx context.Context, model string, spec domain.PromptSpec, opts domain.GenerateOptions) ([]byte, error) {
	var out []byte
	op := func() error {
		raw, err := c.attempt(ctx, model, spec, opts)
		if err != nil {
			return err
		}
		out = raw
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	initial, max, multiplier := c.cfg.BackoffConfig()
	expo.InitialInterval = initial
	expo.MaxInterval = max
	expo.Multiplier = multiplier
	expo.MaxElapsedTime = 0

	retries := opts.MaxRetries
	if retries <= 0 {
		retries = c.cfg.AIMaxRetries
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(retries)), ctx)

	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) attempt(ctx context.Context, model string, spec domain.PromptSpec, opts domain.GenerateOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	temperature := opts.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	maxTokens := opts.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	userText := spec.User
	if spec.SchemaHint != "" {
		userText += "\n\n" + spec.SchemaHint
	}
	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: userText}}}},
		GenerationConfig: &generationConfig{
			Temperature:      temperature,
			MaxOutputTokens:  maxTokens,
			ResponseMIMEType: "application/json",
		},
	}
	if spec.System != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: spec.System}}}
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", domain.ErrInternal, err)
	}

	url := c.cfg.GeminiBaseURL + "/models/" + model + ":generateContent"

	start := time.Now()
	// Recreate the request each attempt so a consumed body is never reused.
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrInternal, err)
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("x-goog-api-key", c.cfg.GeminiAPIKey)

	resp, err := c.hc.Do(r)
	observability.AIRequestDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())
	if err != nil {
		observability.AIRequestsTotal.WithLabelValues(model, "transport_error").Inc()
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			slog.Warn("model request timed out", slog.String("model", model), slog.Duration("timeout", timeout))
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		observability.AIRequestsTotal.WithLabelValues(model, "read_error").Inc()
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrAIUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		observability.AIRequestsTotal.WithLabelValues(model, "rate_limited").Inc()
		slog.Warn("model provider rate limited", slog.String("model", model), slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: provider status 429", domain.ErrAIUnavailable)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		observability.AIRequestsTotal.WithLabelValues(model, "client_error").Inc()
		slog.Error("model provider 4xx", slog.String("model", model), slog.Int("status", resp.StatusCode),
			slog.String("body", snippet(bodyBytes, 512)))
		return nil, backoff.Permanent(fmt.Errorf("%w: provider status %d", domain.ErrAIUnavailable, resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		observability.AIRequestsTotal.WithLabelValues(model, "server_error").Inc()
		slog.Error("model provider non-2xx", slog.String("model", model), slog.Int("status", resp.StatusCode),
			slog.String("body", snippet(bodyBytes, 512)))
		return nil, fmt.Errorf("%w: provider status %d", domain.ErrAIUnavailable, resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(bodyBytes, &out); err != nil {
		observability.AIRequestsTotal.WithLabelValues(model, "decode_error").Inc()
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrMalformedOutput, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		observability.AIRequestsTotal.WithLabelValues(model, "empty").Inc()
		return nil, fmt.Errorf("%w: empty candidates", domain.ErrMalformedOutput)
	}

	var text string
	for _, p := range out.Candidates[0].Content.Parts {
		text += p.Text
	}
	if text == "" {
		observability.AIRequestsTotal.WithLabelValues(model, "empty").Inc()
		return nil, fmt.Errorf("%w: empty text", domain.ErrMalformedOutput)
	}

	observability.AIRequestsTotal.WithLabelValues(model, "ok").Inc()
	slog.Debug("model call succeeded",
		slog.String("model", model),
		slog.String("finish_reason", out.Candidates[0].FinishReason),
		slog.Int("text_length", len(text)))
	return []byte(text), nil
}

func snippet(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
