package pricing

import (
	"fmt"
	"strings"
)

const summaryWidth = 60

// Summary renders the human-readable breakdown for a selection: plan,
// members, per-feature costs, and every discount and surcharge line item
// with sign and amount. It is derived entirely from the calculation
// pipeline and owns no pricing logic.
func (e *Engine) Summary(sel Selection) (string, error) {
	view := e.catalog.Snapshot()
	bd, err := totalCost(view, sel)
	if err != nil {
		return "", err
	}

	rule := strings.Repeat("=", summaryWidth)
	thin := strings.Repeat("-", summaryWidth)

	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString(center("MEMBERSHIP SUMMARY", summaryWidth) + "\n")
	b.WriteString(rule + "\n")

	fmt.Fprintf(&b, "\nMembership Plan: %s\n", sel.PlanName)
	fmt.Fprintf(&b, "Number of Members: %d\n", sel.Members)

	if len(sel.Features) > 0 {
		b.WriteString("Additional Features:\n")
		for _, name := range sel.Features {
			f, _ := view.Feature(name)
			fmt.Fprintf(&b, "  - %s: $%.2f\n", f.Name, f.Cost)
		}
	} else {
		b.WriteString("Additional Features: None\n")
	}

	if sel.Premium.Surcharged() {
		fmt.Fprintf(&b, "Premium Level: %s\n", sel.Premium)
	}

	b.WriteString("\n" + thin + "\n")
	b.WriteString(center("COST BREAKDOWN", summaryWidth) + "\n")
	b.WriteString(thin + "\n")

	fmt.Fprintf(&b, "Base Membership Cost:        $%10.2f\n", bd.BaseCost)
	if bd.FeaturesCost > 0 {
		fmt.Fprintf(&b, "Additional Features Cost:    $%10.2f\n", bd.FeaturesCost)
		fmt.Fprintf(&b, "Subtotal:                    $%10.2f\n", bd.Subtotal)
	}
	if bd.GroupDiscount > 0 {
		fmt.Fprintf(&b, "Group Discount (10%%):       -$%10.2f\n", bd.GroupDiscount)
		fmt.Fprintf(&b, "After Group Discount:        $%10.2f\n", bd.AfterGroupDiscount)
	}
	if bd.SpecialOfferDiscount > 0 {
		fmt.Fprintf(&b, "Special Offer Discount:     -$%10.2f\n", bd.SpecialOfferDiscount)
		fmt.Fprintf(&b, "After Special Discount:      $%10.2f\n", bd.AfterSpecialDiscount)
	}
	if bd.PremiumSurcharge > 0 {
		fmt.Fprintf(&b, "Premium Surcharge (15%%):     $%10.2f\n", bd.PremiumSurcharge)
	}

	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "TOTAL COST:                  $%10.2f\n", bd.Total)
	b.WriteString(rule + "\n")

	return b.String(), nil
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
