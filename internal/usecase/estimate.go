package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/aviniti/ai-tools-api/internal/adapter/observability"
	"github.com/aviniti/ai-tools-api/internal/domain"
	"github.com/aviniti/ai-tools-api/internal/prompt"
	"github.com/aviniti/ai-tools-api/internal/service/pricing"
	"github.com/aviniti/ai-tools-api/pkg/textx"
)

const maxDescriptionLen = 2000

// Estimate prices the selected features deterministically and asks the model
// only for the narrative around them.
func (s *ToolsService) Estimate(ctx context.Context, req domain.EstimateRequest) (*domain.EstimateResponse, error) {
	started := time.Now()

	breakdown := s.calc.Calculate(req.SelectedFeatureIDs)
	if len(breakdown.Features) == 0 {
		return nil, fmt.Errorf("%w: no recognized feature ids in selection", domain.ErrInvalidArgument)
	}

	req.Description = textx.Sanitize(req.Description, maxDescriptionLen)
	if err := requireText("description", req.Description); err != nil {
		return nil, err
	}
	for i, q := range req.Questions {
		req.Questions[i].Question = textx.Sanitize(q.Question, 300)
		req.Questions[i].Context = textx.Sanitize(q.Context, 300)
	}
	lang := resolveLang(req.Locale, req.Description)

	spec := prompt.BuildEstimate(req, breakdown.Total, breakdown.TotalTimelineDays, lang)
	creative, err := generate(ctx, s, domain.ToolEstimate, spec, s.schema.DecodeEstimateCreative)
	if err != nil {
		observability.ToolRequestsTotal.WithLabelValues(string(domain.ToolEstimate), "error").Inc()
		return nil, err
	}

	fillPhaseCosts(creative.EstimatedTimeline.Phases, breakdown.Total)

	resp := &domain.EstimateResponse{
		EstimateCreative: *creative,
		EstimatedCost: domain.EstimateCost{
			Min:      breakdown.Total,
			Max:      breakdown.Total,
			Currency: breakdown.Currency,
		},
		Pricing: breakdown,
	}

	observability.ToolRequestsTotal.WithLabelValues(string(domain.ToolEstimate), "ok").Inc()
	s.persist(domain.ToolEstimate, req, resp, lang, started)
	return resp, nil
}

// fillPhaseCosts assigns the deterministic phase distribution onto the
// model's phases by position. The last phase absorbs whatever the earlier
// positions did not cover, so the costs always sum to the total even when
// the model returns fewer or more phases than the ratio table.
func fillPhaseCosts(phases []domain.EstimatePhase, total int64) {
	if len(phases) == 0 {
		return
	}
	dist := pricing.DistributeAcrossPhases(total)
	var assigned int64
	last := len(phases) - 1
	for i := 0; i < last; i++ {
		if i < len(dist) {
			phases[i].Cost = dist[i].Cost
			assigned += dist[i].Cost
		}
	}
	phases[last].Cost = total - assigned
}
