package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aviniti/ai-tools-api/internal/domain"
	"github.com/aviniti/ai-tools-api/pkg/textx"
)

func discoverRequest() domain.DiscoverRequest {
	return domain.DiscoverRequest{
		Background: "entrepreneur",
		Industry:   "logistics-delivery",
		Problem:    "Local pharmacies cannot offer same-day delivery.",
	}
}

func TestBuildDiscover(t *testing.T) {
	spec := BuildDiscover(discoverRequest(), textx.LangEnglish)

	assert.Contains(t, spec.System, "product strategist")
	assert.Contains(t, spec.User, "Entrepreneur / Business Owner")
	assert.Contains(t, spec.User, "Logistics and Delivery")
	assert.Contains(t, spec.User, "same-day delivery")
	assert.Contains(t, spec.User, "Language: English")
	assert.Contains(t, spec.SchemaHint, `"ideas"`)
	assert.NotContains(t, spec.User, "already seen these ideas")
}

func TestBuildDiscover_ExcludesSeenIdeas(t *testing.T) {
	req := discoverRequest()
	req.ExistingIdeas = []string{"MedDrop", "PharmaDash"}

	spec := BuildDiscover(req, textx.LangEnglish)
	assert.Contains(t, spec.User, "MedDrop, PharmaDash")
	assert.Contains(t, spec.User, "Do NOT suggest any of these again")
}

func TestBuildDiscover_ArabicLabels(t *testing.T) {
	spec := BuildDiscover(discoverRequest(), textx.LangArabic)

	assert.Contains(t, spec.User, "رائد أعمال")
	assert.Contains(t, spec.User, "Language: Arabic")
	assert.Contains(t, spec.User, "Respond in Arabic.")
}

func TestBuildDiscover_Deterministic(t *testing.T) {
	a := BuildDiscover(discoverRequest(), textx.LangEnglish)
	b := BuildDiscover(discoverRequest(), textx.LangEnglish)
	assert.Equal(t, a, b)
}

func TestBuildAnalyze_PlaceholdersForMissingFields(t *testing.T) {
	spec := BuildAnalyze(domain.AnalyzeRequest{
		Idea: "An app that matches home cooks with nearby customers for daily meal subscriptions.",
	}, textx.LangEnglish)

	assert.Contains(t, spec.User, "Target Audience: Not provided")
	assert.Contains(t, spec.User, "Industry: Not provided")
	assert.Contains(t, spec.User, "Preferred Revenue Model: Not provided")
	assert.Contains(t, spec.SchemaHint, `"overallScore"`)
}

func TestBuildAnalyze_OptionalFieldsRendered(t *testing.T) {
	spec := BuildAnalyze(domain.AnalyzeRequest{
		Idea:           "A marketplace connecting freelance tutors with parents.",
		TargetAudience: "Parents of school-age children",
		Industry:       "education-learning",
		RevenueModel:   "subscription",
	}, textx.LangEnglish)

	assert.Contains(t, spec.User, "Parents of school-age children")
	assert.Contains(t, spec.User, "Education and Learning")
	assert.Contains(t, spec.User, "subscription")
	assert.NotContains(t, spec.User, "Not provided")
}

func TestBuildEstimate(t *testing.T) {
	req := domain.EstimateRequest{
		ProjectType: "mobile",
		Description: "A loyalty app for a coffee shop chain.",
		Questions: []domain.ClarifyingQuestion{
			{ID: "q1", Question: "Do you need user accounts?", Context: "Determines auth scope."},
			{ID: "q2", Question: "Do you need payments?", Context: "Determines payment scope."},
		},
		Answers:            map[string]bool{"q1": true},
		SelectedFeatureIDs: []string{"auth-email-password", "pay-stripe"},
	}

	spec := BuildEstimate(req, 14400, 38, textx.LangEnglish)

	assert.Contains(t, spec.User, "Do you need user accounts?: YES")
	assert.Contains(t, spec.User, "Do you need payments?: NO")
	assert.Contains(t, spec.User, "auth-email-password")
	assert.Contains(t, spec.User, "$14400 USD")
	assert.Contains(t, spec.User, "~8 weeks (38 business days)")
	assert.Contains(t, spec.User, "do NOT estimate costs")
	assert.Contains(t, spec.SchemaHint, `"projectName"`)
}

func TestBuildEstimate_MinimumFourWeeks(t *testing.T) {
	req := domain.EstimateRequest{
		ProjectType:        "web",
		Description:        "A tiny landing page builder.",
		SelectedFeatureIDs: []string{"auth-email-password"},
	}

	spec := BuildEstimate(req, 480, 3, textx.LangEnglish)
	assert.Contains(t, spec.User, "~4 weeks (3 business days)")
	assert.Contains(t, spec.User, "Clarifying Questions & Answers: Not provided")
}

func TestBuildROI(t *testing.T) {
	req := domain.ROIRequest{
		ProcessType:          "orders",
		HoursPerWeek:         25,
		Employees:            4,
		HourlyCost:           12.5,
		Currency:             "JOD",
		Issues:               []string{"errors-rework", "delayed-deliveries"},
		CustomerGrowth:       domain.GrowthEstimate{Answer: "yes", Percentage: 30},
		RetentionImprovement: domain.GrowthEstimate{Answer: "unsure"},
		MonthlyRevenue:       20000,
	}

	spec := BuildROI(req, textx.LangEnglish)

	assert.Contains(t, spec.User, "Hours per week on this process: 25")
	assert.Contains(t, spec.User, "JOD 12.50")
	assert.Contains(t, spec.User, "errors-rework, delayed-deliveries")
	assert.Contains(t, spec.User, "yes (30%)")
	assert.Contains(t, spec.User, "Could improve retention with an app: unsure")
	assert.Contains(t, spec.User, "All monetary values must be in JOD.")
	assert.Contains(t, spec.SchemaHint, `"yearlyProjection"`)
}

func TestBuildROI_Placeholders(t *testing.T) {
	req := domain.ROIRequest{
		ProcessType:          "other",
		CustomProcess:        "Manual reconciliation of supplier invoices",
		HoursPerWeek:         10,
		Employees:            2,
		HourlyCost:           8,
		Currency:             "USD",
		CustomerGrowth:       domain.GrowthEstimate{Answer: "no"},
		RetentionImprovement: domain.GrowthEstimate{Answer: "no"},
	}

	spec := BuildROI(req, textx.LangEnglish)

	assert.Contains(t, spec.User, "other (Manual reconciliation of supplier invoices)")
	assert.Contains(t, spec.User, "Current issues: Not provided")
	assert.Contains(t, spec.User, "Monthly revenue: Not provided")
}
