package domain

// Tool request variants. Each tool has its own struct so per-tool field
// constraints stay in the type system instead of one bag of optional fields.
// Validation tags are enforced at the HTTP edge before any network call.

// DiscoverRequest feeds the idea-discovery tool.
type DiscoverRequest struct {
	Background    string   `json:"background" validate:"required,oneof=entrepreneur professional student creative other"`
	Industry      string   `json:"industry" validate:"required,oneof=health-wellness finance-banking education-learning ecommerce-retail logistics-delivery entertainment-media travel-hospitality real-estate food-restaurant social-community other"`
	Problem       string   `json:"problem" validate:"required,min=10,max=500"`
	ExistingIdeas []string `json:"existingIdeas,omitempty" validate:"omitempty,max=12,dive,max=100"`
	Locale        string   `json:"locale,omitempty" validate:"omitempty,oneof=en ar"`
}

// AnalyzeRequest feeds the idea-analysis tool.
type AnalyzeRequest struct {
	Idea           string `json:"idea" validate:"required,min=30,max=2000"`
	TargetAudience string `json:"targetAudience,omitempty" validate:"omitempty,max=200"`
	Industry       string `json:"industry,omitempty" validate:"omitempty,oneof=health-wellness finance-banking education-learning ecommerce-retail logistics-delivery entertainment-media travel-hospitality real-estate food-restaurant social-community other"`
	RevenueModel   string `json:"revenueModel,omitempty" validate:"omitempty,oneof=subscription freemium one-time-purchase in-app-purchases advertising marketplace-commission enterprise-licensing unsure"`
	Locale         string `json:"locale,omitempty" validate:"omitempty,oneof=en ar"`
}

// ClarifyingQuestion is a YES/NO scoping question carried through the
// estimate flow.
type ClarifyingQuestion struct {
	ID       string `json:"id" validate:"required,max=20"`
	Question string `json:"question" validate:"required,max=300"`
	Context  string `json:"context" validate:"max=300"`
}

// EstimateRequest feeds the estimate tool. Pricing is computed from
// SelectedFeatureIDs against the catalog; the model only narrates.
type EstimateRequest struct {
	ProjectType        string               `json:"projectType" validate:"required,oneof=mobile web ai cloud fullstack"`
	Description        string               `json:"description" validate:"required,min=10,max=2000"`
	Questions          []ClarifyingQuestion `json:"questions,omitempty" validate:"omitempty,max=5,dive"`
	Answers            map[string]bool      `json:"answers,omitempty"`
	SelectedFeatureIDs []string             `json:"selectedFeatureIds" validate:"required,min=1,max=80,dive,max=64"`
	Email              string               `json:"email,omitempty" validate:"omitempty,email,max=320"`
	Name               string               `json:"name,omitempty" validate:"omitempty,max=100"`
	Locale             string               `json:"locale,omitempty" validate:"omitempty,oneof=en ar"`
}

// GrowthEstimate is a yes/no/unsure answer with an optional percentage.
type GrowthEstimate struct {
	Answer     string `json:"answer" validate:"required,oneof=yes no unsure"`
	Percentage int    `json:"percentage,omitempty" validate:"omitempty,min=1,max=200"`
}

// ROIRequest feeds the roi tool.
type ROIRequest struct {
	ProcessType          string         `json:"processType" validate:"required,oneof=orders operations support inventory sales data other"`
	CustomProcess        string         `json:"customProcess,omitempty" validate:"omitempty,min=10,max=200"`
	HoursPerWeek         int            `json:"hoursPerWeek" validate:"required,min=1,max=200"`
	Employees            int            `json:"employees" validate:"required,min=1,max=100"`
	HourlyCost           float64        `json:"hourlyCost" validate:"required,gt=0"`
	Currency             string         `json:"currency" validate:"required,oneof=USD JOD AED SAR"`
	Issues               []string       `json:"issues,omitempty" validate:"omitempty,dive,oneof=errors-rework missed-opportunities customer-complaints delayed-deliveries data-entry-mistakes compliance-gaps"`
	CustomerGrowth       GrowthEstimate `json:"customerGrowth" validate:"required"`
	RetentionImprovement GrowthEstimate `json:"retentionImprovement" validate:"required"`
	MonthlyRevenue       float64        `json:"monthlyRevenue,omitempty" validate:"omitempty,gte=0"`
	Locale               string         `json:"locale,omitempty" validate:"omitempty,oneof=en ar"`
}
