package usecase

import (
	"context"
	"time"

	"github.com/aviniti/ai-tools-api/internal/adapter/observability"
	"github.com/aviniti/ai-tools-api/internal/domain"
	"github.com/aviniti/ai-tools-api/internal/prompt"
	"github.com/aviniti/ai-tools-api/pkg/textx"
)

const (
	maxProblemLen  = 500
	maxIdeaNameLen = 100
)

// Discover generates app ideas for the visitor's problem statement.
func (s *ToolsService) Discover(ctx context.Context, req domain.DiscoverRequest) (*domain.DiscoverResponse, error) {
	started := time.Now()

	req.Problem = textx.Sanitize(req.Problem, maxProblemLen)
	if err := requireText("problem", req.Problem); err != nil {
		return nil, err
	}
	for i, idea := range req.ExistingIdeas {
		req.ExistingIdeas[i] = textx.Sanitize(idea, maxIdeaNameLen)
	}
	lang := resolveLang(req.Locale, req.Problem)

	spec := prompt.BuildDiscover(req, lang)
	resp, err := generate(ctx, s, domain.ToolIdeaDiscovery, spec, s.schema.DecodeDiscover)
	if err != nil {
		observability.ToolRequestsTotal.WithLabelValues(string(domain.ToolIdeaDiscovery), "error").Inc()
		return nil, err
	}

	observability.ToolRequestsTotal.WithLabelValues(string(domain.ToolIdeaDiscovery), "ok").Inc()
	s.persist(domain.ToolIdeaDiscovery, req, resp, lang, started)
	return resp, nil
}
