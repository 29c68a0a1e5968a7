package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via
// -ldflags "-X github.com/ferrumfit/ratecard/pkg/cli.version=x.y.z".
var version = "0.1.0"

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.stdout, "ratecard version %s\n", version)
			return nil
		},
	}
}
