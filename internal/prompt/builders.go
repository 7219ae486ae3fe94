// Package prompt builds the per-tool instruction text sent to the model.
// Builders are pure: the same request always yields the same PromptSpec, and
// all free-text inputs are sanitized before they arrive here.
package prompt

import (
	"fmt"
	"strings"

	"github.com/aviniti/ai-tools-api/internal/domain"
	"github.com/aviniti/ai-tools-api/pkg/textx"
)

const notProvided = "Not provided"

const companyPersona = "Aviniti, an AI and app development company based in Amman, Jordan"

// readyMadeSolutions is the fixed product list the model may match against.
const readyMadeSolutions = `- delivery-app: Delivery App ($10,000 / 35 days)
- kindergarten-management: Kindergarten Management ($8,000 / 35 days)
- hypermarket-system: Hypermarket System ($15,000 / 35 days)
- office-suite: Office Suite ($8,000 / 35 days)
- gym-management: Gym Management ($25,000 / 60 days)
- airbnb-clone: Airbnb Clone ($15,000 / 35 days)
- hair-transplant-ai: Hair Transplant AI ($18,000 / 35 days)`

// BuildDiscover produces the idea-discovery prompt.
func BuildDiscover(req domain.DiscoverRequest, lang textx.Lang) domain.PromptSpec {
	var b strings.Builder

	fmt.Fprintf(&b, "A visitor has described their background, industry interest, and a problem they want to solve. Generate 5-6 unique, creative, and viable app ideas that address their problem.\n\n")
	b.WriteString("USER CONTEXT:\n")
	fmt.Fprintf(&b, "- Background: %s\n", backgroundLabel(req.Background, lang))
	fmt.Fprintf(&b, "- Industry: %s\n", industryLabel(req.Industry, lang))
	fmt.Fprintf(&b, "- Problem/Opportunity: %s\n", req.Problem)
	fmt.Fprintf(&b, "- Language: %s\n", languageDirective(lang))

	if len(req.ExistingIdeas) > 0 {
		fmt.Fprintf(&b, "\nIMPORTANT: The user has already seen these ideas: %s. Do NOT suggest any of these again. Generate completely different concepts that approach the problem from new angles.\n", strings.Join(req.ExistingIdeas, ", "))
	}

	b.WriteString(`
INSTRUCTIONS:
1. Generate exactly 5-6 app ideas.
2. Each idea must have a creative, memorable name (2-3 words), a concise 1-2 sentence description, 3-5 key features, an estimated cost range in USD, and an estimated timeline in weeks.
3. Ideas should be diverse and cover different approaches to the problem.
4. At least one idea should be a simpler MVP (lower cost, faster timeline) and at least one should be more ambitious.
5. If any idea closely matches one of our Ready-Made Solutions, note the match:
` + readyMadeSolutions + `
6. Cost estimates should range from $5,000 to $50,000 depending on complexity.
7. Timeline estimates should range from 4 to 20 weeks.
`)
	fmt.Fprintf(&b, "8. Respond in %s.\n", languageDirective(lang))

	return domain.PromptSpec{
		System:     "You are a creative AI product strategist for " + companyPersona + ".",
		User:       b.String(),
		SchemaHint: discoverSchemaHint,
	}
}

// BuildAnalyze produces the idea-analysis prompt.
func BuildAnalyze(req domain.AnalyzeRequest, lang textx.Lang) domain.PromptSpec {
	var b strings.Builder

	b.WriteString("A visitor has described an app idea they want validated. Perform a comprehensive analysis covering market potential, technical feasibility, monetization strategies, and competitive landscape. Provide an overall viability score from 0-100.\n\n")
	b.WriteString("USER INPUT:\n")
	fmt.Fprintf(&b, "- Idea Description: %s\n", req.Idea)
	fmt.Fprintf(&b, "- Target Audience: %s\n", orPlaceholder(req.TargetAudience))
	if req.Industry != "" {
		fmt.Fprintf(&b, "- Industry: %s\n", industryLabel(req.Industry, lang))
	} else {
		fmt.Fprintf(&b, "- Industry: %s\n", notProvided)
	}
	fmt.Fprintf(&b, "- Preferred Revenue Model: %s\n", orPlaceholder(req.RevenueModel))
	fmt.Fprintf(&b, "- Language: %s\n", languageDirective(lang))

	b.WriteString(`
SCORING GUIDELINES:
- 80-100: Excellent, strong market and clear differentiation with manageable complexity
- 60-79: Good, promising but needs refinement in some areas
- 40-59: Possible, significant challenges to overcome
- Below 40: Reconsider, fundamental issues with viability

ANALYSIS REQUIREMENTS:
1. Market Potential (score 0-100): assess market size, growth trends, demand signals, and target demographic viability.
2. Technical Feasibility (score 0-100): evaluate complexity, suggest a tech stack, identify key challenges.
3. Monetization (score 0-100): recommend 2-3 revenue models with pros and cons for each.
4. Competition (score 0-100): identify 3-5 existing or potential competitors and assess competition intensity.
5. Overall Score: weighted average (Market 30%, Technical 25%, Monetization 20%, Competition 25%).
6. Generate 3-5 actionable, prioritized recommendations.
7. Write a 2-3 sentence executive summary.
8. Give the idea a concise, memorable name.
`)
	fmt.Fprintf(&b, "\nRespond in %s.\n", languageDirective(lang))

	return domain.PromptSpec{
		System:     "You are an expert startup and app idea analyst for " + companyPersona + ".",
		User:       b.String(),
		SchemaHint: analyzeSchemaHint,
	}
}

// BuildEstimate produces the estimate narrative prompt. Pricing is computed
// beforehand and injected so the model never invents monetary figures.
func BuildEstimate(req domain.EstimateRequest, totalCost int64, totalTimelineDays int, lang textx.Lang) domain.PromptSpec {
	totalWeeks := (totalTimelineDays + 4) / 5
	if totalWeeks < 4 {
		totalWeeks = 4
	}

	var b strings.Builder
	b.WriteString("You are generating the CREATIVE content for a Project Blueprint report. Pricing has already been calculated deterministically; you do NOT estimate costs. Focus on naming, strategy, and insights.\n\n")
	b.WriteString("PROJECT CONTEXT:\n")
	fmt.Fprintf(&b, "- Project Type: %s\n", req.ProjectType)
	fmt.Fprintf(&b, "- Client's Description: %s\n", req.Description)

	if len(req.Questions) > 0 {
		b.WriteString("- Clarifying Questions & Answers:\n")
		for _, q := range req.Questions {
			answer := "NO"
			if req.Answers[q.ID] {
				answer = "YES"
			}
			fmt.Fprintf(&b, "  - %s: %s\n", q.Question, answer)
		}
	} else {
		fmt.Fprintf(&b, "- Clarifying Questions & Answers: %s\n", notProvided)
	}

	b.WriteString("- Selected Feature IDs (from the official catalog):\n")
	for _, id := range req.SelectedFeatureIDs {
		fmt.Fprintf(&b, "  - %s\n", id)
	}
	fmt.Fprintf(&b, "- Pre-calculated Total: $%d USD\n", totalCost)
	fmt.Fprintf(&b, "- Pre-calculated Timeline: ~%d weeks (%d business days)\n", totalWeeks, totalTimelineDays)
	fmt.Fprintf(&b, "- Language: %s\n", languageDirective(lang))

	b.WriteString(`
YOUR TASK:
1. Give the project a creative, memorable name (2-4 words).
2. Generate 3-4 alternative project names that are modern and catchy.
3. Write a 2-3 sentence project summary.
4. Break the schedule into exactly 6 phases (Discovery & Planning, UI/UX Design, Backend Development, Frontend Development, Testing & QA, Deployment & Launch) with names, descriptions, and durations. NO costs; costs are calculated separately.
`)
	fmt.Fprintf(&b, "   Distribute the %d weeks logically across phases.\n", totalWeeks)
	b.WriteString(`5. Check whether the project matches any of our Ready-Made Solutions:
` + readyMadeSolutions + `
6. Suggest a tech stack (3-6 technologies).
7. Generate 3-5 key insights (risks, recommendations, opportunities).
8. Recommend an approach: "custom", "ready-made" (over 80% feature match), or "hybrid".
9. Generate 3 strategic insights (one strength, one challenge, one recommendation).
`)
	fmt.Fprintf(&b, "\nRespond in %s.\n", languageDirective(lang))

	return domain.PromptSpec{
		System:     "You are an expert software project consultant for " + companyPersona + ".",
		User:       b.String(),
		SchemaHint: estimateSchemaHint,
	}
}

// BuildROI produces the roi-calculator prompt.
func BuildROI(req domain.ROIRequest, lang textx.Lang) domain.PromptSpec {
	var b strings.Builder

	b.WriteString("A business visitor wants to understand the potential return on investment from building an app to replace a manual process. Using the data they provided, calculate a comprehensive ROI analysis.\n\n")
	b.WriteString("BUSINESS DATA:\n")
	process := req.ProcessType
	if req.CustomProcess != "" {
		process += " (" + req.CustomProcess + ")"
	}
	fmt.Fprintf(&b, "- Process to replace: %s\n", process)
	fmt.Fprintf(&b, "- Hours per week on this process: %d\n", req.HoursPerWeek)
	fmt.Fprintf(&b, "- Employees involved: %d\n", req.Employees)
	fmt.Fprintf(&b, "- Hourly cost per employee: %s %.2f\n", req.Currency, req.HourlyCost)
	if len(req.Issues) > 0 {
		fmt.Fprintf(&b, "- Current issues: %s\n", strings.Join(req.Issues, ", "))
	} else {
		fmt.Fprintf(&b, "- Current issues: %s\n", notProvided)
	}
	fmt.Fprintf(&b, "- Could serve more customers with an app: %s\n", growthAnswer(req.CustomerGrowth))
	fmt.Fprintf(&b, "- Could improve retention with an app: %s\n", growthAnswer(req.RetentionImprovement))
	if req.MonthlyRevenue > 0 {
		fmt.Fprintf(&b, "- Monthly revenue: %s %.2f\n", req.Currency, req.MonthlyRevenue)
	} else {
		fmt.Fprintf(&b, "- Monthly revenue: %s\n", notProvided)
	}
	fmt.Fprintf(&b, "- Currency: %s\n", req.Currency)
	fmt.Fprintf(&b, "- Language: %s\n", languageDirective(lang))

	b.WriteString(`
CALCULATION METHODOLOGY:
1. Labor Savings: assume app automation replaces 60-80% of manual hours; calculate annual labor cost savings.
2. Error Reduction: based on the issues selected, estimate 10-25% additional savings from reduced errors, rework, and missed opportunities.
3. Revenue Increase: if customer growth or retention is "yes", calculate the projected revenue increase from the provided percentages and monthly revenue.
4. Time Recovery: calculate total hours per year recovered from automation.
5. Payback Period: estimate app development cost from process complexity and calculate months until cumulative savings exceed cost.
6. ROI Percentage: (Annual Savings / App Cost) * 100.
7. Monthly projections: month-by-month cumulative savings vs cumulative cost for 12 months.
8. AI Insight: a 2-4 sentence summary highlighting the biggest opportunity and an actionable next step.

APP COST ESTIMATION (for payback calculation):
- Simple process automation: $8,000-$15,000
- Medium complexity (with integrations): $15,000-$25,000
- Complex (AI/ML, multiple systems): $25,000-$45,000
Use the midpoint for the payback calculation.
`)
	fmt.Fprintf(&b, "\nAll monetary values must be in %s.\n", req.Currency)
	fmt.Fprintf(&b, "Respond in %s.\n", languageDirective(lang))

	return domain.PromptSpec{
		System:     "You are an expert business analyst and ROI calculator for " + companyPersona + ".",
		User:       b.String(),
		SchemaHint: roiSchemaHint,
	}
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return notProvided
	}
	return s
}

func growthAnswer(g domain.GrowthEstimate) string {
	if g.Percentage > 0 {
		return fmt.Sprintf("%s (%d%%)", g.Answer, g.Percentage)
	}
	return g.Answer
}
