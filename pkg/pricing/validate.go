package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ferrumfit/ratecard/pkg/catalog"
)

// Validation failures are recoverable values matched with errors.Is; the
// wrapped message carries the offending name or bound. Expected bad input
// never panics.
var (
	ErrPlanNotFound       = errors.New("membership plan does not exist")
	ErrPlanUnavailable    = errors.New("membership plan is currently unavailable")
	ErrFeatureNotFound    = errors.New("additional feature does not exist")
	ErrFeatureUnavailable = errors.New("additional feature is currently unavailable")
	ErrInvalidMemberCount = errors.New("invalid number of members")
)

// ValidatePlan checks that the plan exists and is available.
func (e *Engine) ValidatePlan(name string) error {
	return validatePlan(e.catalog.Snapshot(), name)
}

func validatePlan(view catalog.View, name string) error {
	p, ok := view.Plan(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrPlanNotFound, name)
	}
	if !p.Available {
		return fmt.Errorf("%w: %q", ErrPlanUnavailable, name)
	}
	return nil
}

// ValidateFeatures checks every listed feature in order and fails on the
// first unknown or unavailable name. An empty list is valid.
func (e *Engine) ValidateFeatures(names []string) error {
	return validateFeatures(e.catalog.Snapshot(), names)
}

func validateFeatures(view catalog.View, names []string) error {
	for _, name := range names {
		f, ok := view.Feature(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrFeatureNotFound, name)
		}
		if !f.Available {
			return fmt.Errorf("%w: %q", ErrFeatureUnavailable, name)
		}
	}
	return nil
}

// ValidateMemberCount checks the member count bounds.
func ValidateMemberCount(n int) error {
	if n < MinMembers {
		return fmt.Errorf("%w: must be at least %d", ErrInvalidMemberCount, MinMembers)
	}
	if n > MaxMembers {
		return fmt.Errorf("%w: cannot exceed %d", ErrInvalidMemberCount, MaxMembers)
	}
	return nil
}

// ParseMemberCount converts boundary text input into a member count,
// covering the non-integer case of the taxonomy.
func ParseMemberCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: must be an integer", ErrInvalidMemberCount)
	}
	if err := ValidateMemberCount(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateSelection runs the three validators in workflow order: plan,
// member count, features. The first failure is returned.
func (e *Engine) ValidateSelection(sel Selection) error {
	return validateSelection(e.catalog.Snapshot(), sel)
}

func validateSelection(view catalog.View, sel Selection) error {
	if err := validatePlan(view, sel.PlanName); err != nil {
		return err
	}
	if err := ValidateMemberCount(sel.Members); err != nil {
		return err
	}
	return validateFeatures(view, sel.Features)
}
