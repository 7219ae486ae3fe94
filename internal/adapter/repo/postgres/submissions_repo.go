package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aviniti/ai-tools-api/internal/domain"
)

// SubmissionRepo persists tool submissions using a minimal pgx pool.
type SubmissionRepo struct{ Pool PgxPool }

// NewSubmissionRepo constructs a SubmissionRepo with the given pool.
func NewSubmissionRepo(p PgxPool) *SubmissionRepo { return &SubmissionRepo{Pool: p} }

// Save stores a submission and returns its id (generates one if empty).
func (r *SubmissionRepo) Save(ctx context.Context, s domain.Submission) (string, error) {
	id := s.ID
	if id == "" {
		id = uuid.New().String()
	}
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	q := `INSERT INTO submissions (id, tool, request, response, model, locale, processing_ms, created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := r.Pool.Exec(ctx, q, id, string(s.Tool), s.Request, s.Response, s.Model, s.Locale, s.ProcessingMS, createdAt)
	if err != nil {
		return "", fmt.Errorf("op=submission.save: %w", err)
	}
	return id, nil
}
