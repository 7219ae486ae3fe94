// Package app wires configuration, adapters and the HTTP router together.
package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpserver "github.com/aviniti/ai-tools-api/internal/adapter/httpserver"
	"github.com/aviniti/ai-tools-api/internal/adapter/observability"
	"github.com/aviniti/ai-tools-api/internal/config"
)

// ParseOrigins splits a comma-separated origin list into a slice, trimming spaces.
// If the input is empty, returns ["*"].
func ParseOrigins(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return []string{"*"}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// BuildRouter constructs the HTTP handler with all middlewares and routes.
func BuildRouter(cfg config.Config, srv *httpserver.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(httpserver.Recoverer())
	r.Use(httpserver.RequestID())
	r.Use(httpserver.TimeoutMiddleware(cfg.RequestTimeout))
	r.Use(httpserver.AccessLog())
	r.Use(observability.HTTPMetricsMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ParseOrigins(cfg.CORSAllowOrigins),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Tool endpoints carry two layers of limiting: a coarse per-IP guard here
	// and the per-tool quota inside the handlers.
	r.Group(func(tr chi.Router) {
		tr.Use(httprate.LimitByIP(cfg.GlobalRatePerMin, 1*time.Minute))
		tr.Post("/v1/ai/idea-lab/discover", srv.Discover)
		tr.Post("/v1/ai/analyzer", srv.Analyze)
		tr.Post("/v1/ai/estimate", srv.Estimate)
		tr.Post("/v1/ai/roi-calculator", srv.ROI)
	})

	r.Get("/healthz", srv.Health)
	r.Get("/readyz", srv.Ready)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) { promhttp.Handler().ServeHTTP(w, r) })

	return httpserver.SecurityHeaders(r)
}
