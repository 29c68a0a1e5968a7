// Package pricing implements membership cost calculation: input
// validation, the fixed discount and surcharge pipeline, and quote
// assembly. Calculations are pure functions of the selection and one
// catalog snapshot.
package pricing

import (
	"fmt"
	"math"

	"github.com/ferrumfit/ratecard/pkg/catalog"
)

// Pipeline rates and bounds.
const (
	GroupDiscountThreshold = 2
	GroupDiscountRate      = 0.10
	PremiumSurchargeRate   = 0.15

	MinMembers = 1
	MaxMembers = 10
)

// specialOffers holds the flat discount tiers, highest threshold first,
// so an amount exceeding several thresholds receives exactly one discount.
var specialOffers = []struct {
	Threshold float64
	Discount  float64
}{
	{400, 50},
	{200, 20},
}

// Engine validates selections and computes cost breakdowns against a
// catalog. Every operation takes one snapshot at call entry, so a catalog
// update cannot change the outcome of an in-flight calculation.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine returns an engine bound to the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Selection is one membership request. Feature names may repeat; each
// occurrence is charged.
type Selection struct {
	PlanName string               `json:"plan_name" yaml:"plan_name"`
	Features []string             `json:"features,omitempty" yaml:"features,omitempty"`
	Members  int                  `json:"members" yaml:"members"`
	Premium  catalog.PremiumLevel `json:"premium_level" yaml:"premium_level"`
}

// Breakdown itemizes every intermediate amount leading to the total.
// Amounts carry full precision through the pipeline; rendering rounds to
// cents, and the only integral result is the floored total.
type Breakdown struct {
	BaseCost             float64 `json:"base_cost" yaml:"base_cost"`
	FeaturesCost         float64 `json:"features_cost" yaml:"features_cost"`
	Subtotal             float64 `json:"subtotal" yaml:"subtotal"`
	GroupDiscount        float64 `json:"group_discount" yaml:"group_discount"`
	AfterGroupDiscount   float64 `json:"after_group_discount" yaml:"after_group_discount"`
	SpecialOfferDiscount float64 `json:"special_offer_discount" yaml:"special_offer_discount"`
	AfterSpecialDiscount float64 `json:"after_special_discount" yaml:"after_special_discount"`
	PremiumSurcharge     float64 `json:"premium_surcharge" yaml:"premium_surcharge"`
	Total                float64 `json:"total_cost" yaml:"total_cost"`
	TotalAsInteger       int64   `json:"total_as_integer" yaml:"total_as_integer"`
}

// BaseCost returns the plan's base cost. Availability is not checked
// here; validation is a separate, explicit step.
func (e *Engine) BaseCost(planName string) (float64, error) {
	return baseCost(e.catalog.Snapshot(), planName)
}

func baseCost(view catalog.View, planName string) (float64, error) {
	p, ok := view.Plan(planName)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrPlanNotFound, planName)
	}
	return p.BaseCost, nil
}

// FeaturesCost sums each listed feature's cost, counting duplicates per
// occurrence. An empty list costs 0.
func (e *Engine) FeaturesCost(names []string) (float64, error) {
	return featuresCost(e.catalog.Snapshot(), names)
}

func featuresCost(view catalog.View, names []string) (float64, error) {
	var total float64
	for _, name := range names {
		f, ok := view.Feature(name)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrFeatureNotFound, name)
		}
		total += f.Cost
	}
	return total, nil
}

// GroupDiscount returns the discount amount for the group size. The rate
// applies to the whole subtotal once the threshold is met.
func GroupDiscount(subtotal float64, members int) float64 {
	if members < GroupDiscountThreshold {
		return 0
	}
	return subtotal * GroupDiscountRate
}

// SpecialOfferDiscount returns the flat discount for the amount remaining
// after the group discount. Exactly one tier applies.
func SpecialOfferDiscount(amount float64) float64 {
	for _, tier := range specialOffers {
		if amount > tier.Threshold {
			return tier.Discount
		}
	}
	return 0
}

// PremiumSurcharge returns the surcharge for the amount remaining after
// both discounts.
func PremiumSurcharge(amount float64, level catalog.PremiumLevel) float64 {
	if !level.Surcharged() {
		return 0
	}
	return amount * PremiumSurchargeRate
}

// TotalCost computes the itemized breakdown in the fixed order: base,
// features, subtotal, group discount, special offer discount, premium
// surcharge. Each step reads only the amount left by the previous one.
// TotalCost does not check availability; callers run the validators
// first. Unknown plan or feature names surface as not-found errors.
func (e *Engine) TotalCost(sel Selection) (Breakdown, error) {
	return totalCost(e.catalog.Snapshot(), sel)
}

func totalCost(view catalog.View, sel Selection) (Breakdown, error) {
	base, err := baseCost(view, sel.PlanName)
	if err != nil {
		return Breakdown{}, err
	}
	features, err := featuresCost(view, sel.Features)
	if err != nil {
		return Breakdown{}, err
	}

	subtotal := base + features
	group := GroupDiscount(subtotal, sel.Members)
	afterGroup := subtotal - group
	special := SpecialOfferDiscount(afterGroup)
	afterSpecial := afterGroup - special
	surcharge := PremiumSurcharge(afterSpecial, sel.Premium)
	total := afterSpecial + surcharge

	return Breakdown{
		BaseCost:             base,
		FeaturesCost:         features,
		Subtotal:             subtotal,
		GroupDiscount:        group,
		AfterGroupDiscount:   afterGroup,
		SpecialOfferDiscount: special,
		AfterSpecialDiscount: afterSpecial,
		PremiumSurcharge:     surcharge,
		Total:                total,
		TotalAsInteger:       int64(math.Floor(total)),
	}, nil
}

// GroupSavings returns the plan-only group discount shown by the savings
// banner, 0 below the group threshold.
func (e *Engine) GroupSavings(planName string, members int) (float64, error) {
	base, err := baseCost(e.catalog.Snapshot(), planName)
	if err != nil {
		return 0, err
	}
	return GroupDiscount(base, members), nil
}
