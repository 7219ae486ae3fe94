package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/aviniti/ai-tools-api/internal/domain"
)

const designSurchargeRate = "0.20"

// Bundle discount tiers, largest first. Thresholds must stay monotonic
// non-decreasing in feature count.
var discountTiers = []struct {
	minFeatures int
	percent     int
}{
	{30, 30},
	{20, 20},
	{15, 15},
	{10, 10},
}

// Phase ratios for spreading a total across the delivery schedule. The last
// phase absorbs the rounding residual so the parts always sum to the total.
var phaseRatios = []struct {
	Phase string
	Ratio string
}{
	{"discovery", "0.08"},
	{"design", "0.15"},
	{"backend", "0.30"},
	{"frontend", "0.25"},
	{"testing", "0.12"},
	{"launch", "0.10"},
}

// Calculator prices feature selections against the catalog.
type Calculator struct {
	catalog *Catalog
}

func NewCalculator(catalog *Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// Calculate resolves the selected feature ids and derives the full cost
// breakdown. Ids missing from the catalog are skipped, never priced.
func (c *Calculator) Calculate(featureIDs []string) domain.PricingBreakdown {
	features := make([]domain.PricedFeature, 0, len(featureIDs))
	var subtotal int64
	var timelineDays int

	for _, id := range featureIDs {
		feat, ok := c.catalog.Feature(id)
		if !ok {
			continue
		}
		features = append(features, domain.PricedFeature{
			CatalogID:    feat.ID,
			CategoryID:   feat.Category,
			Price:        feat.Price,
			TimelineDays: feat.TimelineDays,
			Complexity:   feat.Complexity,
		})
		subtotal += feat.Price
		timelineDays += feat.TimelineDays
	}

	sub := decimal.NewFromInt(subtotal)
	surcharge := sub.Mul(decimal.RequireFromString(designSurchargeRate)).Round(0).IntPart()

	percent := BundleDiscountPercent(len(features))
	discount := sub.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100)).Round(0).IntPart()

	return domain.PricingBreakdown{
		Features:              features,
		Subtotal:              subtotal,
		DesignSurcharge:       surcharge,
		BundleDiscountPercent: percent,
		BundleDiscount:        discount,
		Total:                 subtotal + surcharge - discount,
		TotalTimelineDays:     timelineDays,
		Currency:              "USD",
	}
}

// BundleDiscountPercent maps a feature count to its discount tier.
func BundleDiscountPercent(featureCount int) int {
	for _, tier := range discountTiers {
		if featureCount >= tier.minFeatures {
			return tier.percent
		}
	}
	return 0
}

// DiscountThreshold describes how far a selection is from the next tier.
type DiscountThreshold struct {
	Needed      int `json:"needed"`
	NextPercent int `json:"nextPercent"`
}

// NextDiscountThreshold reports the features still needed to unlock the next
// discount tier, or nil once the top tier is reached.
func NextDiscountThreshold(currentCount int) *DiscountThreshold {
	for i := len(discountTiers) - 1; i >= 0; i-- {
		tier := discountTiers[i]
		if currentCount < tier.minFeatures {
			return &DiscountThreshold{
				Needed:      tier.minFeatures - currentCount,
				NextPercent: tier.percent,
			}
		}
	}
	return nil
}

// DistributeAcrossPhases splits a total into per-phase amounts by the fixed
// ratios, in phase order. The returned slice always sums to total exactly.
func DistributeAcrossPhases(total int64) []domain.PhaseCost {
	out := make([]domain.PhaseCost, 0, len(phaseRatios))
	totalDec := decimal.NewFromInt(total)
	var distributed int64

	for i, pr := range phaseRatios {
		var amount int64
		if i == len(phaseRatios)-1 {
			amount = total - distributed
		} else {
			amount = totalDec.Mul(decimal.RequireFromString(pr.Ratio)).Round(0).IntPart()
			distributed += amount
		}
		out = append(out, domain.PhaseCost{Phase: pr.Phase, Cost: amount})
	}
	return out
}
