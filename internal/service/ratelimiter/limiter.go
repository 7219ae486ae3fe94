// Package ratelimiter enforces fixed-window request quotas per tool and
// caller. Counters live in a pluggable Store so a single instance can use
// process memory while multi-instance deployments share Redis.
package ratelimiter

import (
	"context"
	"log/slog"
	"time"

	"github.com/aviniti/ai-tools-api/internal/domain"
)

// Quota is a fixed-window budget: at most Limit requests per Window.
type Quota struct {
	Limit  int
	Window time.Duration
}

// Result reports the outcome of a quota check. Remaining and ResetAt are
// surfaced to clients via rate-limit response headers.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Store increments and reads fixed-window counters. Incr returns the counter
// value after incrementing and the moment the current window expires.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}

type Limiter struct {
	store  Store
	quotas map[domain.Tool]Quota
}

func NewLimiter(store Store, quotas map[domain.Tool]Quota) *Limiter {
	if quotas == nil {
		quotas = map[domain.Tool]Quota{}
	}
	return &Limiter{store: store, quotas: quotas}
}

// Check consumes one unit of the tool's quota for the given caller key.
// Unknown tools and store failures fail open so a counter outage never takes
// the API down with it.
func (l *Limiter) Check(ctx context.Context, tool domain.Tool, key string) (Result, error) {
	if l == nil || l.store == nil {
		return Result{Allowed: true}, nil
	}
	q, ok := l.quotas[tool]
	if !ok || q.Limit <= 0 || q.Window <= 0 {
		return Result{Allowed: true}, nil
	}

	count, resetAt, err := l.store.Incr(ctx, string(tool)+":"+key, q.Window)
	if err != nil {
		slog.Error("rate limit store error, failing open",
			slog.String("tool", string(tool)), slog.Any("error", err))
		return Result{Allowed: true, Limit: q.Limit, Remaining: q.Limit}, nil
	}

	remaining := q.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= int64(q.Limit),
		Limit:     q.Limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
