package pricing_test

import (
	"testing"

	"github.com/ferrumfit/ratecard/pkg/catalog"
	"github.com/ferrumfit/ratecard/pkg/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePlan(t *testing.T) {
	cat := catalog.New()
	require.NoError(t, cat.UpsertPlan(catalog.Plan{Name: "Legacy", BaseCost: 9.99, Available: false}))
	e := pricing.NewEngine(cat)

	assert.NoError(t, e.ValidatePlan("Basic"))

	err := e.ValidatePlan("Gold")
	assert.ErrorIs(t, err, pricing.ErrPlanNotFound)
	assert.Contains(t, err.Error(), "Gold")

	err = e.ValidatePlan("Legacy")
	assert.ErrorIs(t, err, pricing.ErrPlanUnavailable)
	assert.Contains(t, err.Error(), "Legacy")
}

func TestValidateFeatures(t *testing.T) {
	cat := catalog.New()
	require.NoError(t, cat.UpsertFeature(catalog.Feature{Name: "Pool Access", Cost: 25, Available: false}))
	e := pricing.NewEngine(cat)

	assert.NoError(t, e.ValidateFeatures(nil))
	assert.NoError(t, e.ValidateFeatures([]string{}))
	assert.NoError(t, e.ValidateFeatures([]string{"Personal Training", "Group Classes"}))

	// Duplicates are permitted.
	assert.NoError(t, e.ValidateFeatures([]string{"Personal Training", "Personal Training"}))

	err := e.ValidateFeatures([]string{"Massage"})
	assert.ErrorIs(t, err, pricing.ErrFeatureNotFound)
	assert.Contains(t, err.Error(), "Massage")

	err = e.ValidateFeatures([]string{"Pool Access"})
	assert.ErrorIs(t, err, pricing.ErrFeatureUnavailable)
	assert.Contains(t, err.Error(), "Pool Access")
}

func TestValidateFeatures_ReportsFirstOffender(t *testing.T) {
	e := pricing.NewEngine(catalog.New())

	err := e.ValidateFeatures([]string{"Group Classes", "Massage", "Tanning"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Massage")
}

func TestValidateMemberCount(t *testing.T) {
	tests := []struct {
		n      int
		wantOK bool
	}{
		{0, false},
		{1, true},
		{5, true},
		{10, true},
		{11, false},
		{-3, false},
	}

	for _, tt := range tests {
		err := pricing.ValidateMemberCount(tt.n)
		if tt.wantOK {
			assert.NoError(t, err, "n=%d", tt.n)
		} else {
			assert.ErrorIs(t, err, pricing.ErrInvalidMemberCount, "n=%d", tt.n)
		}
	}
}

func TestParseMemberCount(t *testing.T) {
	n, err := pricing.ParseMemberCount("4")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = pricing.ParseMemberCount("  7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	for _, in := range []string{"abc", "2.5", "", "ten"} {
		_, err := pricing.ParseMemberCount(in)
		assert.ErrorIs(t, err, pricing.ErrInvalidMemberCount, "input %q", in)
		assert.Contains(t, err.Error(), "integer", "input %q", in)
	}

	for _, in := range []string{"0", "11", "-1"} {
		_, err := pricing.ParseMemberCount(in)
		assert.ErrorIs(t, err, pricing.ErrInvalidMemberCount, "input %q", in)
	}
}

func TestValidateSelection(t *testing.T) {
	cat := catalog.New()
	require.NoError(t, cat.UpsertPlan(catalog.Plan{Name: "Legacy", BaseCost: 9.99, Available: false}))
	e := pricing.NewEngine(cat)

	assert.NoError(t, e.ValidateSelection(pricing.Selection{
		PlanName: "Premium",
		Features: []string{"Personal Training"},
		Members:  2,
		Premium:  catalog.PremiumNone,
	}))

	err := e.ValidateSelection(pricing.Selection{PlanName: "Gold", Members: 1})
	assert.ErrorIs(t, err, pricing.ErrPlanNotFound)

	err = e.ValidateSelection(pricing.Selection{PlanName: "Legacy", Members: 1})
	assert.ErrorIs(t, err, pricing.ErrPlanUnavailable)

	err = e.ValidateSelection(pricing.Selection{PlanName: "Basic", Members: 0})
	assert.ErrorIs(t, err, pricing.ErrInvalidMemberCount)

	err = e.ValidateSelection(pricing.Selection{PlanName: "Basic", Features: []string{"Massage"}, Members: 1})
	assert.ErrorIs(t, err, pricing.ErrFeatureNotFound)
}
