// Package usecase orchestrates the tool pipelines: sanitize, build the
// prompt, call the model, validate the payload, merge deterministic pricing,
// and persist the submission.
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/aviniti/ai-tools-api/internal/adapter/ai"
	"github.com/aviniti/ai-tools-api/internal/adapter/observability"
	"github.com/aviniti/ai-tools-api/internal/domain"
	"github.com/aviniti/ai-tools-api/internal/service/pricing"
	"github.com/aviniti/ai-tools-api/pkg/textx"
)

// Per-tool generation budgets. Creative tools run hotter; analytical tools
// run cold for consistency.
var toolBudgets = map[domain.Tool]domain.GenerateOptions{
	domain.ToolIdeaDiscovery: {Temperature: 0.7, MaxOutputTokens: 2048, Timeout: 45 * time.Second},
	domain.ToolIdeaAnalysis:  {Temperature: 0.3, MaxOutputTokens: 4096, Timeout: 60 * time.Second},
	domain.ToolEstimate:      {Temperature: 0.3, MaxOutputTokens: 4096, Timeout: 45 * time.Second},
	domain.ToolROI:           {Temperature: 0.3, MaxOutputTokens: 8192, Timeout: 60 * time.Second},
}

const persistTimeout = 10 * time.Second

// ToolsService runs the four generative tool pipelines.
type ToolsService struct {
	ai          domain.AIClient
	schema      *ai.SchemaValidator
	calc        *pricing.Calculator
	repo        domain.SubmissionRepository
	model       string
	maxAttempts int
}

// NewToolsService wires the pipeline. repo may be nil, in which case
// submissions are not persisted.
func NewToolsService(client domain.AIClient, calc *pricing.Calculator, repo domain.SubmissionRepository, model string, maxAttempts int) *ToolsService {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &ToolsService{
		ai:          client,
		schema:      ai.NewSchemaValidator(),
		calc:        calc,
		repo:        repo,
		model:       model,
		maxAttempts: maxAttempts,
	}
}

// generate runs the call-extract-decode loop. A schema or extraction failure
// burns one attempt and the whole call is reissued; transport failures are
// already retried inside the client, so they fail the call immediately.
func generate[T any](ctx context.Context, s *ToolsService, tool domain.Tool, spec domain.PromptSpec, decode func(json.RawMessage) (*T, error)) (*T, error) {
	opts := toolBudgets[tool]
	opts.MaxRetries = 0 // client default

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		raw, err := s.ai.GenerateJSON(ctx, spec, opts)
		if err != nil {
			return nil, err
		}

		obj, err := ai.ExtractJSON(string(raw))
		if err == nil {
			var out *T
			out, err = decode(obj)
			if err == nil {
				return out, nil
			}
		}

		lastErr = err
		if errors.Is(err, domain.ErrSchemaInvalid) {
			observability.SchemaRejectionsTotal.WithLabelValues(string(tool)).Inc()
		}
		slog.Warn("model payload rejected",
			slog.String("tool", string(tool)),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", s.maxAttempts),
			slog.Any("error", err))
	}
	return nil, fmt.Errorf("all %d attempts rejected: %w", s.maxAttempts, lastErr)
}

// requireText rejects required free text that sanitized down to nothing.
// Whitespace-only or injection-only input must fail before any model call.
func requireText(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidArgument, field)
	}
	return nil
}

// resolveLang picks the response language. The script the user actually
// typed in decides; the locale flag only breaks the tie when the sample has
// no alphabetic signal at all.
func resolveLang(locale, sample string) textx.Lang {
	for _, r := range sample {
		if unicode.IsLetter(r) {
			return textx.DetectLanguage(sample)
		}
	}
	if locale == "ar" {
		return textx.LangArabic
	}
	return textx.LangEnglish
}

// persist saves a submission off the request path. Storage failures are
// logged and swallowed; the user already has their response.
func (s *ToolsService) persist(tool domain.Tool, req, resp any, lang textx.Lang, started time.Time) {
	if s.repo == nil {
		return
	}

	reqJSON, err := json.Marshal(req)
	if err != nil {
		slog.Error("marshal submission request", slog.String("tool", string(tool)), slog.Any("error", err))
		return
	}
	respJSON, err := json.Marshal(resp)
	if err != nil {
		slog.Error("marshal submission response", slog.String("tool", string(tool)), slog.Any("error", err))
		return
	}

	sub := domain.Submission{
		Tool:         tool,
		Request:      reqJSON,
		Response:     respJSON,
		Model:        s.model,
		Locale:       string(lang),
		ProcessingMS: time.Since(started).Milliseconds(),
		CreatedAt:    time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if _, err := s.repo.Save(ctx, sub); err != nil {
			slog.Error("persist submission failed", slog.String("tool", string(tool)), slog.Any("error", err))
		}
	}()
}
