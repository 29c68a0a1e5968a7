package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferrumfit/ratecard/pkg/catalog"
	"github.com/ferrumfit/ratecard/pkg/pricing"
)

type demoScenario struct {
	label       string
	sel         pricing.Selection
	showInteger bool
}

type demoSection struct {
	title     string
	scenarios []demoScenario
}

// demoSections walks every pricing rule: plain plans, feature add-ons,
// the group discount, the special-offer tiers, the premium surcharge,
// and combinations of all of them.
func demoSections() []demoSection {
	allFeatures := []string{"Personal Training", "Group Classes", "Nutritional Consulting"}

	return []demoSection{
		{
			title: "BASIC SCENARIOS",
			scenarios: []demoScenario{
				{label: "Single Member - Basic Plan", sel: pricing.Selection{PlanName: "Basic", Members: 1, Premium: catalog.PremiumNone}},
				{label: "Single Member - Premium Plan", sel: pricing.Selection{PlanName: "Premium", Members: 1, Premium: catalog.PremiumNone}},
				{label: "Single Member - Family Plan", sel: pricing.Selection{PlanName: "Family", Members: 1, Premium: catalog.PremiumNone}},
			},
		},
		{
			title: "SCENARIOS WITH ADDITIONAL FEATURES",
			scenarios: []demoScenario{
				{label: "Premium Plan + Personal Training", sel: pricing.Selection{PlanName: "Premium", Features: []string{"Personal Training"}, Members: 1, Premium: catalog.PremiumNone}},
				{label: "Premium Plan + Multiple Features", sel: pricing.Selection{PlanName: "Premium", Features: []string{"Personal Training", "Group Classes"}, Members: 1, Premium: catalog.PremiumNone}},
				{label: "Family Plan + All Features", sel: pricing.Selection{PlanName: "Family", Features: allFeatures, Members: 1, Premium: catalog.PremiumNone}},
			},
		},
		{
			title: "GROUP DISCOUNT SCENARIOS",
			scenarios: []demoScenario{
				{label: "2 Members - Basic Plan (10% Group Discount)", sel: pricing.Selection{PlanName: "Basic", Members: 2, Premium: catalog.PremiumNone}},
				{label: "3 Members - Premium Plan + Features", sel: pricing.Selection{PlanName: "Premium", Features: []string{"Personal Training", "Group Classes"}, Members: 3, Premium: catalog.PremiumNone}},
				{label: "5 Members - Family Plan", sel: pricing.Selection{PlanName: "Family", Members: 5, Premium: catalog.PremiumNone}},
			},
		},
		{
			title: "SPECIAL OFFER DISCOUNT SCENARIOS",
			scenarios: []demoScenario{
				{label: "Family + 1 Feature (below the $200 tier)", sel: pricing.Selection{PlanName: "Family", Features: []string{"Personal Training"}, Members: 1, Premium: catalog.PremiumNone}},
				{label: "Family + All Features (above $200, $20 off)", sel: pricing.Selection{PlanName: "Family", Features: allFeatures, Members: 1, Premium: catalog.PremiumNone}},
			},
		},
		{
			title: "PREMIUM FEATURE SCENARIOS",
			scenarios: []demoScenario{
				{label: "Premium Plan + Exclusive Facilities (15% Surcharge)", sel: pricing.Selection{PlanName: "Premium", Members: 1, Premium: catalog.PremiumExclusiveFacilities}},
				{label: "Family + Features + Specialized Training", sel: pricing.Selection{PlanName: "Family", Features: []string{"Personal Training", "Group Classes"}, Members: 1, Premium: catalog.PremiumSpecializedTraining}},
			},
		},
		{
			title: "COMPLEX SCENARIOS - ALL FACTORS COMBINED",
			scenarios: []demoScenario{
				{label: "2 Members - Family + All Features + Premium", sel: pricing.Selection{PlanName: "Family", Features: allFeatures, Members: 2, Premium: catalog.PremiumExclusiveFacilities}, showInteger: true},
				{label: "3 Members - Premium + 2 Features + Specialized Training", sel: pricing.Selection{PlanName: "Premium", Features: []string{"Personal Training", "Nutritional Consulting"}, Members: 3, Premium: catalog.PremiumSpecializedTraining}, showInteger: true},
			},
		},
	}
}

func (a *App) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk the documented pricing scenarios",
		Long: `Demo prices a fixed set of scenarios covering each pricing rule and
prints their summaries. Useful as a smoke check and as living
documentation of the discount pipeline.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.styles.banner(a.stdout, "GYM MEMBERSHIP PRICING - DEMONSTRATION")

			for _, section := range demoSections() {
				fmt.Fprintln(a.stdout)
				a.styles.banner(a.stdout, section.title)

				for _, sc := range section.scenarios {
					fmt.Fprintln(a.stdout)
					a.styles.section(a.stdout, sc.label)

					summary, err := a.engine.Summary(sc.sel)
					if err != nil {
						return err
					}
					fmt.Fprintln(a.stdout, summary)

					if sc.showInteger {
						bd, err := a.engine.TotalCost(sc.sel)
						if err != nil {
							return err
						}
						fmt.Fprintf(a.stdout, "Final Cost as Integer: %d\n", bd.TotalAsInteger)
					}
				}
			}

			fmt.Fprintln(a.stdout)
			a.styles.banner(a.stdout, "DEMONSTRATION COMPLETE")
			return nil
		},
	}
}
