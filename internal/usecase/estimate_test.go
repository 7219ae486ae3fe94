package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviniti/ai-tools-api/internal/domain"
)

func validEstimateCreativeJSON(t *testing.T) string {
	t.Helper()
	return estimateCreativeJSON(t, []string{"Discovery & Planning", "UI/UX Design", "Backend Development", "Frontend Development", "Testing & QA", "Deployment & Launch"})
}

func estimateCreativeJSON(t *testing.T, names []string) string {
	t.Helper()
	phases := make([]map[string]any, len(names))
	for i, n := range names {
		phases[i] = map[string]any{
			"phase":       i + 1,
			"name":        n,
			"description": "Work package covering the " + n + " stage.",
			"duration":    "1-2 weeks",
		}
	}
	b, err := json.Marshal(map[string]any{
		"projectName":    "BrewPoints",
		"projectSummary": "A loyalty app for a coffee chain with stamp cards and rewards.",
		"estimatedTimeline": map[string]any{
			"weeks":  8,
			"phases": phases,
		},
		"approach":        "custom",
		"matchedSolution": nil,
		"keyInsights": []string{
			"Loyalty redemption flows drive repeat visits.",
			"A simple MVP can launch within one quarter.",
			"Push notifications materially lift engagement.",
		},
	})
	require.NoError(t, err)
	return string(b)
}

func estimateReq() domain.EstimateRequest {
	return domain.EstimateRequest{
		ProjectType:        "mobile",
		Description:        "A loyalty app for a coffee shop chain with rewards.",
		SelectedFeatureIDs: []string{"auth-email-password", "pay-stripe", "notif-basic-push"},
	}
}

func TestEstimate_MergesDeterministicPricing(t *testing.T) {
	client := &scriptedAI{responses: []string{validEstimateCreativeJSON(t)}}
	svc := newTestService(t, client, nil)

	resp, err := svc.Estimate(context.Background(), estimateReq())
	require.NoError(t, err)

	// 400 + 800 + 500 = 1700 subtotal, 340 surcharge, no discount
	assert.Equal(t, int64(1700), resp.Pricing.Subtotal)
	assert.Equal(t, int64(340), resp.Pricing.DesignSurcharge)
	assert.Equal(t, int64(0), resp.Pricing.BundleDiscount)
	assert.Equal(t, int64(2040), resp.Pricing.Total)
	assert.Equal(t, "USD", resp.Pricing.Currency)

	assert.Equal(t, resp.Pricing.Total, resp.EstimatedCost.Min)
	assert.Equal(t, resp.Pricing.Total, resp.EstimatedCost.Max)
	assert.Equal(t, "BrewPoints", resp.ProjectName)
}

func TestEstimate_PhaseCostsSumToTotal(t *testing.T) {
	client := &scriptedAI{responses: []string{validEstimateCreativeJSON(t)}}
	svc := newTestService(t, client, nil)

	resp, err := svc.Estimate(context.Background(), estimateReq())
	require.NoError(t, err)

	var sum int64
	for _, p := range resp.EstimatedTimeline.Phases {
		sum += p.Cost
	}
	assert.Equal(t, resp.Pricing.Total, sum)
}

func TestEstimate_PromptCarriesDeterministicTotals(t *testing.T) {
	client := &scriptedAI{responses: []string{validEstimateCreativeJSON(t)}}
	svc := newTestService(t, client, nil)

	_, err := svc.Estimate(context.Background(), estimateReq())
	require.NoError(t, err)

	require.Len(t, client.specs, 1)
	assert.Contains(t, client.specs[0].User, "$2040 USD")
}

func TestEstimate_UnknownFeatureIDsSkipped(t *testing.T) {
	client := &scriptedAI{responses: []string{validEstimateCreativeJSON(t)}}
	svc := newTestService(t, client, nil)

	req := estimateReq()
	req.SelectedFeatureIDs = append(req.SelectedFeatureIDs, "does-not-exist")

	resp, err := svc.Estimate(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Pricing.Features, 3)
}

func TestEstimate_AllUnknownFeatureIDs(t *testing.T) {
	client := &scriptedAI{}
	svc := newTestService(t, client, nil)

	req := estimateReq()
	req.SelectedFeatureIDs = []string{"bogus-1", "bogus-2"}

	_, err := svc.Estimate(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, client.specs, "model must not be called without priced features")
}

func TestEstimate_FivePhaseResponseSumsToTotal(t *testing.T) {
	five := estimateCreativeJSON(t, []string{"Discovery & Planning", "UI/UX Design", "Development", "Testing & QA", "Deployment & Launch"})
	client := &scriptedAI{responses: []string{five}}
	svc := newTestService(t, client, nil)

	resp, err := svc.Estimate(context.Background(), estimateReq())
	require.NoError(t, err)
	require.Len(t, resp.EstimatedTimeline.Phases, 5)

	var sum int64
	for _, p := range resp.EstimatedTimeline.Phases {
		sum += p.Cost
	}
	assert.Equal(t, resp.Pricing.Total, sum)
}

func TestEstimate_WhitespaceOnlyDescriptionRejected(t *testing.T) {
	client := &scriptedAI{responses: []string{validEstimateCreativeJSON(t)}}
	svc := newTestService(t, client, nil)

	req := estimateReq()
	req.Description = "   \n\t   "

	_, err := svc.Estimate(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, client.specs)
}

func TestROI_OtherProcessRequiresDescription(t *testing.T) {
	client := &scriptedAI{}
	svc := newTestService(t, client, nil)

	_, err := svc.ROI(context.Background(), domain.ROIRequest{
		ProcessType:          "other",
		CustomProcess:        "```  ```",
		HoursPerWeek:         10,
		Employees:            2,
		HourlyCost:           8,
		Currency:             "USD",
		CustomerGrowth:       domain.GrowthEstimate{Answer: "no"},
		RetentionImprovement: domain.GrowthEstimate{Answer: "no"},
	})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, client.specs)
}

func TestROI_Success(t *testing.T) {
	client := &scriptedAI{responses: []string{validROIResponseJSON(t)}}
	svc := newTestService(t, client, nil)

	resp, err := svc.ROI(context.Background(), domain.ROIRequest{
		ProcessType:          "orders",
		HoursPerWeek:         25,
		Employees:            4,
		HourlyCost:           12.5,
		Currency:             "JOD",
		CustomerGrowth:       domain.GrowthEstimate{Answer: "yes", Percentage: 30},
		RetentionImprovement: domain.GrowthEstimate{Answer: "unsure"},
	})
	require.NoError(t, err)
	assert.Len(t, resp.YearlyProjection, 12)
	assert.Contains(t, client.specs[0].User, "JOD")
}

func validROIResponseJSON(t *testing.T) string {
	t.Helper()
	projection := make([]map[string]any, 12)
	for i := range projection {
		projection[i] = map[string]any{
			"month":             i + 1,
			"cumulativeSavings": float64(i+1) * 2500,
			"cumulativeCost":    12000,
			"netROI":            float64(i+1)*2500 - 12000,
		}
	}
	b, err := json.Marshal(map[string]any{
		"annualROI":           30000,
		"paybackPeriodMonths": 5,
		"roiPercentage":       150,
		"breakdown": map[string]any{
			"laborSavings":    18000,
			"errorReduction":  6000,
			"revenueIncrease": 4000,
			"timeRecovered":   2000,
		},
		"yearlyProjection": projection,
		"costVsReturn": map[string]any{
			"appCost":     map[string]any{"min": 10000, "max": 14000},
			"year1Return": 30000,
			"year3Return": 95000,
		},
		"aiInsight": "Automation frees up roughly one headcount of manual work across the year. Start with order intake.",
	})
	require.NoError(t, err)
	return string(b)
}
