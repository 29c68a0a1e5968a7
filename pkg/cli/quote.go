package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ferrumfit/ratecard/pkg/catalog"
	"github.com/ferrumfit/ratecard/pkg/pricing"
)

func (a *App) newQuoteCmd() *cobra.Command {
	var (
		planName string
		features []string
		members  int
		premium  string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a membership selection",
		Long: `Quote prices one membership selection and asks for confirmation.

With --plan the selection comes from flags; without it the interactive
wizard collects it. The final stdout line is always "Result: <n>",
where n is the floored total on confirmation and -1 on cancellation or
a validation failure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if planName == "" {
				return a.runWizardQuote()
			}
			return a.runScriptedQuote(planName, features, members, premium, yes)
		},
	}

	cmd.Flags().StringVar(&planName, "plan", "", "membership plan name (omit for the interactive wizard)")
	cmd.Flags().StringArrayVar(&features, "feature", nil, "additional feature (repeatable; each occurrence is charged)")
	cmd.Flags().IntVar(&members, "members", 1, "number of members (1-10)")
	cmd.Flags().StringVar(&premium, "premium", "none", "premium level: none, exclusive-facilities, specialized-training")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}

// runScriptedQuote prices a flag-supplied selection. Validation runs
// before any cost is computed; a failure prints Result: -1 and
// surfaces the validator's error.
func (a *App) runScriptedQuote(planName string, features []string, members int, premiumFlag string, yes bool) error {
	level, err := catalog.ParsePremiumLevel(premiumFlag)
	if err != nil {
		a.printResult(-1)
		return err
	}

	sel := pricing.Selection{PlanName: planName, Features: features, Members: members, Premium: level}
	if err := a.engine.ValidateSelection(sel); err != nil {
		a.printResult(-1)
		return err
	}

	var bd pricing.Breakdown
	switch a.cfg.Output {
	case "json", "yaml":
		q, err := a.engine.Quote(sel)
		if err != nil {
			a.printResult(-1)
			return err
		}
		slog.Debug("quote issued", "id", q.ID, "fingerprint", q.Fingerprint, "total", q.Breakdown.Total)
		fmt.Fprint(a.stdout, a.formatter.Format(q))
		bd = q.Breakdown
	default:
		summary, err := a.engine.Summary(sel)
		if err != nil {
			a.printResult(-1)
			return err
		}
		fmt.Fprint(a.stdout, summary)
		bd, err = a.engine.TotalCost(sel)
		if err != nil {
			a.printResult(-1)
			return err
		}
	}

	if !yes {
		confirmed, err := a.askYesNo("Do you want to confirm this membership? (yes/no): ")
		if err != nil && !errors.Is(err, errCanceled) {
			a.printResult(-1)
			return err
		}
		if err != nil || !confirmed {
			fmt.Fprintln(a.stdout, "Membership selection canceled.")
			a.printResult(-1)
			return nil
		}
	}

	a.confirmTotal(bd)
	return nil
}

// runWizardQuote drives the interactive workflow. Cancellation is a
// normal path ending in Result: -1 and exit status 0.
func (a *App) runWizardQuote() error {
	w := newWizard(a)
	sel, err := w.run()
	if errors.Is(err, errCanceled) {
		fmt.Fprintln(a.stdout, "Membership selection canceled.")
		a.printResult(-1)
		return nil
	}
	if err != nil {
		a.printResult(-1)
		return err
	}

	bd, err := a.engine.TotalCost(sel)
	if err != nil {
		a.printResult(-1)
		return err
	}

	a.confirmTotal(bd)
	return nil
}

func (a *App) confirmTotal(bd pricing.Breakdown) {
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, a.styles.Success.Render(fmt.Sprintf("Membership confirmed! Total cost: $%.2f", bd.Total)))
	a.printResult(bd.TotalAsInteger)
}

// printResult writes the final result line of the quote contract.
func (a *App) printResult(n int64) {
	fmt.Fprintf(a.stdout, "Result: %d\n", n)
}
