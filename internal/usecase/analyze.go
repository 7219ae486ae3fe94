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
	maxIdeaLen     = 2000
	maxAudienceLen = 200
)

// Analyze scores an app idea across market, technical, monetization, and
// competition dimensions.
func (s *ToolsService) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalysisResponse, error) {
	started := time.Now()

	req.Idea = textx.Sanitize(req.Idea, maxIdeaLen)
	if err := requireText("idea", req.Idea); err != nil {
		return nil, err
	}
	req.TargetAudience = textx.Sanitize(req.TargetAudience, maxAudienceLen)
	lang := resolveLang(req.Locale, req.Idea)

	spec := prompt.BuildAnalyze(req, lang)
	resp, err := generate(ctx, s, domain.ToolIdeaAnalysis, spec, s.schema.DecodeAnalysis)
	if err != nil {
		observability.ToolRequestsTotal.WithLabelValues(string(domain.ToolIdeaAnalysis), "error").Inc()
		return nil, err
	}

	observability.ToolRequestsTotal.WithLabelValues(string(domain.ToolIdeaAnalysis), "ok").Inc()
	s.persist(domain.ToolIdeaAnalysis, req, resp, lang, started)
	return resp, nil
}
