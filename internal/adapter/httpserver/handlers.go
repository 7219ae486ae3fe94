package httpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aviniti/ai-tools-api/internal/adapter/observability"
	"github.com/aviniti/ai-tools-api/internal/config"
	"github.com/aviniti/ai-tools-api/internal/domain"
	"github.com/aviniti/ai-tools-api/internal/service/ratelimiter"
	"github.com/aviniti/ai-tools-api/internal/usecase"
)

// Server aggregates the dependencies the HTTP handlers need.
type Server struct {
	Cfg     config.Config
	Tools   *usecase.ToolsService
	Limiter *ratelimiter.Limiter

	// Optional readiness probes for external dependencies.
	DBCheck    func(ctx context.Context) error
	RedisCheck func(ctx context.Context) error
}

func NewServer(cfg config.Config, tools *usecase.ToolsService, limiter *ratelimiter.Limiter) *Server {
	return &Server{Cfg: cfg, Tools: tools, Limiter: limiter}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// decodeBody reads and decodes the JSON request body into dst, enforcing the
// configured body size cap and the request's validate tags.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.Cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("%w: body exceeds %d bytes", domain.ErrPayloadTooLarge, maxErr.Limit)
		}
		return fmt.Errorf("%w: invalid JSON body", domain.ErrInvalidArgument)
	}
	if err := getValidator().Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%w: field %s failed %s validation", domain.ErrInvalidArgument, f.Field(), f.Tag())
		}
		return fmt.Errorf("%w: invalid request", domain.ErrInvalidArgument)
	}
	return nil
}

// checkLimit consumes rate-limit quota for the caller and writes the standard
// X-RateLimit headers. It returns false when the request was rejected and a
// response has already been written.
func (s *Server) checkLimit(w http.ResponseWriter, r *http.Request, tool domain.Tool) bool {
	res, _ := s.Limiter.Check(r.Context(), tool, callerKey(r))
	if res.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
	}
	if res.Allowed {
		return true
	}
	retryAfter := int(time.Until(res.ResetAt).Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	observability.RateLimitedTotal.WithLabelValues(string(tool)).Inc()
	LoggerFrom(r).Warn("rate limit exceeded", "tool", string(tool))
	writeRateLimited(w, retryAfter)
	return false
}

// callerKey derives an anonymous caller identity from the client IP. The IP is
// hashed so counters and logs never store the address itself.
func callerKey(r *http.Request) string {
	ip := clientIP(r)
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, ok := strings.Cut(xff, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}
	if xr := r.Header.Get("X-Real-Ip"); xr != "" {
		return strings.TrimSpace(xr)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Discover handles POST /v1/ai/idea-lab/discover.
func (s *Server) Discover(w http.ResponseWriter, r *http.Request) {
	var req domain.DiscoverRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if !s.checkLimit(w, r, domain.ToolIdeaDiscovery) {
		return
	}
	resp, err := s.Tools.Discover(r.Context(), req)
	if err != nil {
		LoggerFrom(r).Error("discover failed", "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

// Analyze handles POST /v1/ai/analyzer.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if !s.checkLimit(w, r, domain.ToolIdeaAnalysis) {
		return
	}
	resp, err := s.Tools.Analyze(r.Context(), req)
	if err != nil {
		LoggerFrom(r).Error("analyze failed", "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

// Estimate handles POST /v1/ai/estimate.
func (s *Server) Estimate(w http.ResponseWriter, r *http.Request) {
	var req domain.EstimateRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if !s.checkLimit(w, r, domain.ToolEstimate) {
		return
	}
	resp, err := s.Tools.Estimate(r.Context(), req)
	if err != nil {
		LoggerFrom(r).Error("estimate failed", "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

// ROI handles POST /v1/ai/roi-calculator.
func (s *Server) ROI(w http.ResponseWriter, r *http.Request) {
	var req domain.ROIRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if !s.checkLimit(w, r, domain.ToolROI) {
		return
	}
	resp, err := s.Tools.ROI(r.Context(), req)
	if err != nil {
		LoggerFrom(r).Error("roi failed", "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, resp)
}

// Health handles GET /healthz. It reports process liveness only.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /readyz. It verifies the optional external dependencies
// that were configured at startup.
func (s *Server) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true
	if s.DBCheck != nil {
		if err := s.DBCheck(ctx); err != nil {
			checks["db"] = err.Error()
			healthy = false
		} else {
			checks["db"] = "ok"
		}
	}
	if s.RedisCheck != nil {
		if err := s.RedisCheck(ctx); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}
	}
	status := http.StatusOK
	state := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	writeJSON(w, status, map[string]any{"status": state, "checks": checks})
}
