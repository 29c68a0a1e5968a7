package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferrumfit/ratecard/pkg/catalog"
)

func (a *App) newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and extend the plan and feature catalog",
		Long: `Catalog inspects the full plan and feature tables, including
unavailable records, validates and applies overlay files, and upserts
single records. Extensions live for the process only; nothing is
persisted.`,
	}

	cmd.AddCommand(a.newCatalogShowCmd())
	cmd.AddCommand(a.newCatalogValidateCmd())
	cmd.AddCommand(a.newCatalogLoadCmd())
	cmd.AddCommand(a.newCatalogAddPlanCmd())
	cmd.AddCommand(a.newCatalogAddFeatureCmd())

	return cmd
}

func (a *App) newCatalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show every catalog record, including unavailable ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.showCatalog()
			return nil
		},
	}
}

// showCatalog renders the full catalog. Table output prints two
// sections; json and yaml emit one document.
func (a *App) showCatalog() {
	switch a.cfg.Output {
	case "json", "yaml":
		doc := struct {
			Plans    []catalog.Plan    `json:"plans" yaml:"plans"`
			Features []catalog.Feature `json:"features" yaml:"features"`
		}{a.catalog.Plans(), a.catalog.Features()}
		fmt.Fprint(a.stdout, a.formatter.Format(doc))
	default:
		fmt.Fprintln(a.stdout, a.styles.Section.Render("Plans"))
		fmt.Fprint(a.stdout, a.formatter.Format(a.catalog.Plans()))
		fmt.Fprintln(a.stdout)
		fmt.Fprintln(a.stdout, a.styles.Section.Render("Features"))
		fmt.Fprint(a.stdout, a.formatter.Format(a.catalog.Features()))
	}
}

func (a *App) newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate overlay files without applying them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				o, err := catalog.LoadOverlay(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%s %s (%d plans, %d features)\n",
					a.styles.Success.Render("OK"), path, len(o.Plans), len(o.Features))
			}
			return nil
		},
	}
}

func (a *App) newCatalogLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Validate an overlay, apply it, and show the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := catalog.LoadOverlay(args[0])
			if err != nil {
				return err
			}
			if err := a.catalog.Apply(o); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Applied overlay %s (%d plans, %d features).\n\n",
				overlayName(o, args[0]), len(o.Plans), len(o.Features))
			a.showCatalog()
			return nil
		},
	}
}

func overlayName(o *catalog.Overlay, path string) string {
	if o.Name != "" {
		return fmt.Sprintf("%q", o.Name)
	}
	return path
}

func (a *App) newCatalogAddPlanCmd() *cobra.Command {
	var (
		name        string
		cost        float64
		benefits    []string
		unavailable bool
	)

	cmd := &cobra.Command{
		Use:   "add-plan",
		Short: "Add or replace a membership plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := catalog.Plan{
				Name:      name,
				BaseCost:  cost,
				Benefits:  benefits,
				Available: !unavailable,
			}
			if err := a.catalog.UpsertPlan(p); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Plan %q saved.\n\n", name)
			fmt.Fprint(a.stdout, a.formatter.Format(a.catalog.Plans()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "plan name (required)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "monthly base cost")
	cmd.Flags().StringArrayVar(&benefits, "benefit", nil, "benefit line (repeatable)")
	cmd.Flags().BoolVar(&unavailable, "unavailable", false, "mark the plan unavailable")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (a *App) newCatalogAddFeatureCmd() *cobra.Command {
	var (
		name        string
		cost        float64
		unavailable bool
	)

	cmd := &cobra.Command{
		Use:   "add-feature",
		Short: "Add or replace an additional feature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := catalog.Feature{
				Name:      name,
				Cost:      cost,
				Available: !unavailable,
			}
			if err := a.catalog.UpsertFeature(f); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Feature %q saved.\n\n", name)
			fmt.Fprint(a.stdout, a.formatter.Format(a.catalog.Features()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "feature name (required)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "feature cost")
	cmd.Flags().BoolVar(&unavailable, "unavailable", false, "mark the feature unavailable")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
