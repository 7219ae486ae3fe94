package domain

// Tool response variants. These mirror the structured output schemas the
// prompt builders declare; the validate tags are enforced on every decoded
// model payload before a value of these types ever reaches a caller.

// CostRange is a min/max pair in whole currency units. Invariant: Min <= Max.
type CostRange struct {
	Min float64 `json:"min" validate:"gt=0"`
	Max float64 `json:"max" validate:"gt=0,gtefield=Min"`
}

// MatchedSolution links a generated idea or estimate to a ready-made product.
type MatchedSolution struct {
	Slug                   string  `json:"slug" validate:"required"`
	Name                   string  `json:"name" validate:"required"`
	StartingPrice          float64 `json:"startingPrice" validate:"gt=0"`
	DeploymentTimeline     string  `json:"deploymentTimeline" validate:"required"`
	FeatureMatchPercentage float64 `json:"featureMatchPercentage" validate:"gte=0,lte=100"`
}

// Idea is one generated app concept from the idea-discovery tool.
type Idea struct {
	ID                string           `json:"id" validate:"required"`
	Name              string           `json:"name" validate:"min=1,max=100"`
	Description       string           `json:"description" validate:"min=10,max=500"`
	Features          []string         `json:"features" validate:"min=3,max=5,dive,min=1,max=100"`
	EstimatedCost     CostRange        `json:"estimatedCost"`
	EstimatedTimeline string           `json:"estimatedTimeline" validate:"min=1,max=50"`
	MatchedSolution   *MatchedSolution `json:"matchedSolution" validate:"omitempty"`
}

// DiscoverResponse carries the generated idea list.
type DiscoverResponse struct {
	Ideas []Idea `json:"ideas" validate:"min=5,max=6,dive"`
}

// AnalysisCategory is one scored dimension of an idea analysis.
// Invariant: Score in [0,100].
type AnalysisCategory struct {
	Score    float64  `json:"score" validate:"gte=0,lte=100"`
	Analysis string   `json:"analysis" validate:"min=50,max=2000"`
	Findings []string `json:"findings" validate:"min=3,max=5,dive,min=10,max=300"`
}

// TechnicalAnalysis extends the base category with feasibility detail.
type TechnicalAnalysis struct {
	AnalysisCategory
	Complexity         string   `json:"complexity" validate:"oneof=low medium high"`
	SuggestedTechStack []string `json:"suggestedTechStack" validate:"min=3,max=10,dive,min=2,max=50"`
	Challenges         []string `json:"challenges" validate:"min=2,max=5,dive,min=10,max=200"`
}

// RevenueModel is one recommended monetization approach.
type RevenueModel struct {
	Name        string   `json:"name" validate:"min=3,max=100"`
	Description string   `json:"description" validate:"min=20,max=300"`
	Pros        []string `json:"pros" validate:"min=2,max=5,dive,min=5,max=200"`
	Cons        []string `json:"cons" validate:"min=1,max=5,dive,min=5,max=200"`
}

// MonetizationAnalysis extends the base category with revenue models.
type MonetizationAnalysis struct {
	AnalysisCategory
	RevenueModels []RevenueModel `json:"revenueModels" validate:"min=2,max=3,dive"`
}

// Competitor is one identified competitor.
type Competitor struct {
	Name        string `json:"name" validate:"min=2,max=100"`
	Description string `json:"description" validate:"min=10,max=300"`
	Type        string `json:"type" validate:"oneof=direct indirect potential"`
}

// CompetitionAnalysis extends the base category with the landscape.
type CompetitionAnalysis struct {
	AnalysisCategory
	Competitors []Competitor `json:"competitors" validate:"min=3,max=5,dive"`
	Intensity   string       `json:"intensity" validate:"oneof=low moderate high very-high"`
}

// AnalysisCategories groups the four scored dimensions.
type AnalysisCategories struct {
	Market       AnalysisCategory     `json:"market"`
	Technical    TechnicalAnalysis    `json:"technical"`
	Monetization MonetizationAnalysis `json:"monetization"`
	Competition  CompetitionAnalysis  `json:"competition"`
}

// AnalysisResponse is the idea-analysis tool output.
type AnalysisResponse struct {
	IdeaName        string             `json:"ideaName" validate:"min=3,max=100"`
	OverallScore    float64            `json:"overallScore" validate:"gte=0,lte=100"`
	Summary         string             `json:"summary" validate:"min=50,max=500"`
	Categories      AnalysisCategories `json:"categories"`
	Recommendations []string           `json:"recommendations" validate:"min=3,max=5,dive,min=20,max=300"`
}

// EstimatePhase is one development phase of an estimate. Cost is filled in
// from the deterministic phase distribution, never by the model.
type EstimatePhase struct {
	Phase       int    `json:"phase" validate:"gt=0"`
	Name        string `json:"name" validate:"min=3,max=100"`
	Description string `json:"description" validate:"min=10,max=300"`
	Cost        int64  `json:"cost,omitempty" validate:"-"`
	Duration    string `json:"duration" validate:"min=3,max=50"`
}

// EstimateTimeline is the phased schedule of an estimate.
type EstimateTimeline struct {
	Weeks  int             `json:"weeks" validate:"gt=0,lte=104"`
	Phases []EstimatePhase `json:"phases" validate:"min=5,max=7,dive"`
}

// StrategicInsight is one strength/challenge/recommendation entry.
type StrategicInsight struct {
	Type        string `json:"type" validate:"oneof=strength challenge recommendation"`
	Title       string `json:"title" validate:"min=3,max=100"`
	Description string `json:"description" validate:"min=10,max=500"`
}

// EstimateCreative is the model-produced narrative part of an estimate.
type EstimateCreative struct {
	ProjectName       string             `json:"projectName" validate:"min=1,max=100"`
	AlternativeNames  []string           `json:"alternativeNames,omitempty" validate:"omitempty,min=2,max=4,dive,min=1,max=50"`
	ProjectSummary    string             `json:"projectSummary" validate:"min=10,max=500"`
	EstimatedTimeline EstimateTimeline   `json:"estimatedTimeline"`
	Approach          string             `json:"approach" validate:"oneof=custom ready-made hybrid"`
	MatchedSolution   *MatchedSolution   `json:"matchedSolution" validate:"omitempty"`
	TechStack         []string           `json:"techStack,omitempty" validate:"omitempty,min=2,max=8"`
	KeyInsights       []string           `json:"keyInsights" validate:"min=3,max=5,dive,min=10,max=500"`
	StrategicInsights []StrategicInsight `json:"strategicInsights,omitempty" validate:"omitempty,min=2,max=4,dive"`
}

// PhaseCost is one delivery phase's share of a pricing total.
type PhaseCost struct {
	Phase string `json:"phase"`
	Cost  int64  `json:"cost"`
}

// PricedFeature is one catalog feature resolved during pricing.
type PricedFeature struct {
	CatalogID    string `json:"catalogId"`
	CategoryID   string `json:"categoryId"`
	Price        int64  `json:"price"`
	TimelineDays int    `json:"timelineDays"`
	Complexity   string `json:"complexity"`
}

// PricingBreakdown is the deterministic cost derivation for an estimate.
// It is a pure function of the selected feature ids and the catalog.
type PricingBreakdown struct {
	Features              []PricedFeature `json:"features"`
	Subtotal              int64           `json:"subtotal"`
	DesignSurcharge       int64           `json:"designSurcharge"`
	BundleDiscountPercent int             `json:"bundleDiscountPercent"`
	BundleDiscount        int64           `json:"bundleDiscount"`
	Total                 int64           `json:"total"`
	TotalTimelineDays     int             `json:"totalTimelineDays"`
	Currency              string          `json:"currency"`
}

// EstimateCost is the displayed cost band, derived from the pricing total.
type EstimateCost struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// EstimateResponse merges the model narrative with deterministic pricing.
type EstimateResponse struct {
	EstimateCreative
	EstimatedCost EstimateCost     `json:"estimatedCost"`
	Pricing       PricingBreakdown `json:"pricing"`
}

// ROIBreakdown itemizes annual savings sources.
type ROIBreakdown struct {
	LaborSavings    float64 `json:"laborSavings" validate:"gte=0"`
	ErrorReduction  float64 `json:"errorReduction" validate:"gte=0"`
	RevenueIncrease float64 `json:"revenueIncrease" validate:"gte=0"`
	TimeRecovered   float64 `json:"timeRecovered" validate:"gte=0"`
}

// MonthlyProjection is one month of cumulative savings vs cost.
type MonthlyProjection struct {
	Month             int     `json:"month" validate:"gte=1,lte=12"`
	CumulativeSavings float64 `json:"cumulativeSavings"`
	CumulativeCost    float64 `json:"cumulativeCost" validate:"gt=0"`
	NetROI            float64 `json:"netROI"`
}

// CostVsReturn compares app cost against projected returns.
type CostVsReturn struct {
	AppCost     CostRange `json:"appCost"`
	Year1Return float64   `json:"year1Return" validate:"gte=0"`
	Year3Return float64   `json:"year3Return" validate:"gte=0"`
}

// ROIResponse is the roi tool output.
type ROIResponse struct {
	AnnualROI           float64             `json:"annualROI"`
	PaybackPeriodMonths float64             `json:"paybackPeriodMonths" validate:"gt=0,lte=60"`
	ROIPercentage       float64             `json:"roiPercentage"`
	Breakdown           ROIBreakdown        `json:"breakdown"`
	YearlyProjection    []MonthlyProjection `json:"yearlyProjection" validate:"len=12,dive"`
	CostVsReturn        CostVsReturn        `json:"costVsReturn"`
	AIInsight           string              `json:"aiInsight" validate:"min=50,max=1000"`
}
