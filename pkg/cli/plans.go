package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List available membership plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(a.stdout, a.formatter.Format(a.catalog.AvailablePlans()))
			return nil
		},
	}
}

func (a *App) newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List available additional features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(a.stdout, a.formatter.Format(a.catalog.AvailableFeatures()))
			return nil
		},
	}
}
