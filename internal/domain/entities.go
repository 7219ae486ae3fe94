// Package domain holds the core entities and ports for the AI tools API.
package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Tool enumerates the four user-facing generative tools.
type Tool string

const (
	ToolIdeaDiscovery Tool = "idea-discovery"
	ToolIdeaAnalysis  Tool = "idea-analysis"
	ToolEstimate      Tool = "estimate"
	ToolROI           Tool = "roi"
)

// PromptSpec is the immutable prompt for one generation request.
// Built once per request and never mutated afterwards.
type PromptSpec struct {
	System     string
	User       string
	SchemaHint string
}

// GenerateOptions bound a single generation call.
type GenerateOptions struct {
	Temperature     float64
	MaxOutputTokens int
	Timeout         time.Duration
	MaxRetries      int
}

// AIClient (port). GenerateJSON returns the extracted JSON payload of a
// model response; implementations own retry, fallback and timeout policy.
type AIClient interface {
	GenerateJSON(ctx context.Context, spec PromptSpec, opts GenerateOptions) ([]byte, error)
}

// Submission is one persisted record per successful generation.
// Persistence is fire-and-confirm: a failed save never fails the request.
type Submission struct {
	ID           string
	Tool         Tool
	Request      json.RawMessage
	Response     json.RawMessage
	Model        string
	Locale       string
	ProcessingMS int64
	CreatedAt    time.Time
}

// SubmissionRepository (port)
type SubmissionRepository interface {
	Save(ctx context.Context, s Submission) (string, error)
}
