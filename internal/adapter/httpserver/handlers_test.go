package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviniti/ai-tools-api/internal/adapter/httpserver"
	"github.com/aviniti/ai-tools-api/internal/config"
	"github.com/aviniti/ai-tools-api/internal/domain"
	"github.com/aviniti/ai-tools-api/internal/service/pricing"
	"github.com/aviniti/ai-tools-api/internal/service/ratelimiter"
	"github.com/aviniti/ai-tools-api/internal/usecase"
)

type stubAI struct {
	response string
	err      error
	calls    int
}

func (s *stubAI) GenerateJSON(_ context.Context, _ domain.PromptSpec, _ domain.GenerateOptions) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.response), nil
}

func testConfig() config.Config {
	return config.Config{
		AppEnv:       "test",
		MaxBodyBytes: 65536,
	}
}

func newTestServer(t *testing.T, client domain.AIClient, quotas map[domain.Tool]ratelimiter.Quota) *httpserver.Server {
	t.Helper()
	catalog, err := pricing.LoadCatalog()
	require.NoError(t, err)
	tools := usecase.NewToolsService(client, pricing.NewCalculator(catalog), nil, "gemini-3-flash-preview", 2)
	limiter := ratelimiter.NewLimiter(ratelimiter.NewMemoryStore(), quotas)
	return httpserver.NewServer(testConfig(), tools, limiter)
}

func validDiscoverJSON() string {
	idea := map[string]any{
		"id":                "idea-1",
		"name":              "Fleet Tracker",
		"description":       "Real-time delivery fleet tracking for small logistics firms.",
		"features":          []string{"Live map", "Driver app", "Route history"},
		"estimatedCost":     map[string]any{"min": 8000, "max": 15000},
		"estimatedTimeline": "10-14 weeks",
		"matchedSolution":   nil,
	}
	ideas := make([]any, 5)
	for i := range ideas {
		ideas[i] = idea
	}
	b, _ := json.Marshal(map[string]any{"ideas": ideas})
	return string(b)
}

func discoverBody() string {
	b, _ := json.Marshal(map[string]any{
		"background": "entrepreneur",
		"industry":   "logistics-delivery",
		"problem":    "Local pharmacies cannot offer same-day delivery to their customers.",
	})
	return string(b)
}

func postJSON(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:51234"
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestDiscover_SuccessEnvelope(t *testing.T) {
	srv := newTestServer(t, &stubAI{response: validDiscoverJSON()}, nil)

	rec := postJSON(srv.Discover, discoverBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			Ideas []json.RawMessage `json:"ideas"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Len(t, env.Data.Ideas, 5)
}

func TestDiscover_InvalidJSONBody(t *testing.T) {
	srv := newTestServer(t, &stubAI{response: validDiscoverJSON()}, nil)

	rec := postJSON(srv.Discover, "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestDiscover_MissingRequiredField(t *testing.T) {
	ai := &stubAI{response: validDiscoverJSON()}
	srv := newTestServer(t, ai, nil)

	body := `{"background":"entrepreneur","industry":"logistics-delivery"}`
	rec := postJSON(srv.Discover, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Zero(t, ai.calls)
}

func TestDiscover_PayloadTooLarge(t *testing.T) {
	srv := newTestServer(t, &stubAI{response: validDiscoverJSON()}, nil)
	srv.Cfg.MaxBodyBytes = 64

	rec := postJSON(srv.Discover, discoverBody())
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAYLOAD_TOO_LARGE")
}

func TestDiscover_RateLimited(t *testing.T) {
	quotas := map[domain.Tool]ratelimiter.Quota{
		domain.ToolIdeaDiscovery: {Limit: 2, Window: time.Hour},
	}
	srv := newTestServer(t, &stubAI{response: validDiscoverJSON()}, quotas)

	for i := 0; i < 2; i++ {
		rec := postJSON(srv.Discover, discoverBody())
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := postJSON(srv.Discover, discoverBody())
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var env struct {
		Success bool `json:"success"`
		Error   struct {
			Code       string `json:"code"`
			RetryAfter int    `json:"retryAfter"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "RATE_LIMITED", env.Error.Code)
	assert.Positive(t, env.Error.RetryAfter)
}

func TestDiscover_RateLimitHeadersOnSuccess(t *testing.T) {
	quotas := map[domain.Tool]ratelimiter.Quota{
		domain.ToolIdeaDiscovery: {Limit: 5, Window: time.Hour},
	}
	srv := newTestServer(t, &stubAI{response: validDiscoverJSON()}, quotas)

	rec := postJSON(srv.Discover, discoverBody())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestDiscover_UpstreamFailureMapsToAIUnavailable(t *testing.T) {
	srv := newTestServer(t, &stubAI{err: domain.ErrAIUnavailable}, nil)

	rec := postJSON(srv.Discover, discoverBody())
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI_UNAVAILABLE")
	assert.NotContains(t, rec.Body.String(), "gemini")
}

func TestEstimate_EndToEnd(t *testing.T) {
	creative := map[string]any{
		"projectName":    "GymBill",
		"projectSummary": "A subscription billing portal for regional gyms with member self-service.",
		"approach":       "custom",
		"keyInsights":    []string{"Payments need PCI scope review", "Start with a single market first", "Web first, mobile later on"},
		"techStack":      []string{"Go", "PostgreSQL", "Stripe"},
		"estimatedTimeline": map[string]any{
			"weeks": 8,
			"phases": []any{
				map[string]any{"phase": 1, "name": "Discovery", "duration": "1 week", "description": "Workshops and scope lock."},
				map[string]any{"phase": 2, "name": "Design", "duration": "1 week", "description": "Flows and a shared UI kit."},
				map[string]any{"phase": 3, "name": "Backend", "duration": "3 weeks", "description": "APIs and billing integrations."},
				map[string]any{"phase": 4, "name": "Frontend", "duration": "2 weeks", "description": "Customer-facing screens."},
				map[string]any{"phase": 5, "name": "Testing", "duration": "1 week", "description": "QA passes and hardening."},
			},
		},
		"strategicInsights": []any{
			map[string]any{"type": "recommendation", "title": "Launch narrow", "description": "One vertical first keeps the catalog small."},
			map[string]any{"type": "challenge", "title": "Billing edge cases", "description": "Proration and dunning need explicit rules."},
		},
	}
	b, _ := json.Marshal(creative)
	srv := newTestServer(t, &stubAI{response: string(b)}, nil)

	body, _ := json.Marshal(map[string]any{
		"projectType":        "web",
		"description":        "A subscription billing portal for regional gyms with member self-service.",
		"selectedFeatureIds": []string{"auth-email-password", "pay-stripe"},
	})
	rec := postJSON(srv.Estimate, string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Success bool `json:"success"`
		Data    struct {
			Pricing struct {
				Total int64 `json:"total"`
			} `json:"pricing"`
			EstimatedCost struct {
				Min      int64  `json:"min"`
				Max      int64  `json:"max"`
				Currency string `json:"currency"`
			} `json:"estimatedCost"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Positive(t, env.Data.Pricing.Total)
	assert.Equal(t, env.Data.Pricing.Total, env.Data.EstimatedCost.Min)
	assert.Equal(t, env.Data.Pricing.Total, env.Data.EstimatedCost.Max)
	assert.Equal(t, "USD", env.Data.EstimatedCost.Currency)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubAI{}, nil)
	rec := httptest.NewRecorder()
	srv.Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestReady_DegradedWhenCheckFails(t *testing.T) {
	srv := newTestServer(t, &stubAI{}, nil)
	srv.DBCheck = func(context.Context) error { return assert.AnError }

	rec := httptest.NewRecorder()
	srv.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}

func TestReady_OKWithoutChecks(t *testing.T) {
	srv := newTestServer(t, &stubAI{}, nil)
	rec := httptest.NewRecorder()
	srv.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ready")
}
