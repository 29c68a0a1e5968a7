// Package cli implements the ratecard command tree: quoting (scripted
// or through the interactive wizard), catalog listing and extension,
// and the scenario demo. All business rules live in pkg/pricing and
// pkg/catalog; this package is presentation glue over their contract.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ferrumfit/ratecard/pkg/catalog"
	"github.com/ferrumfit/ratecard/pkg/config"
	"github.com/ferrumfit/ratecard/pkg/logging"
	"github.com/ferrumfit/ratecard/pkg/output"
	"github.com/ferrumfit/ratecard/pkg/pricing"
)

// App carries the state shared by every command: configuration, the
// catalog and engine, and the streams handed to Run. A fresh App is
// built per Run call so repeated invocations never share flag state.
type App struct {
	in     *bufio.Scanner
	stdout io.Writer
	stderr io.Writer

	cfg       *config.Config
	catalog   *catalog.Catalog
	engine    *pricing.Engine
	formatter output.Formatter
	styles    Styles

	// persistent flag values, merged over the environment in setup
	outputFormat string
	catalogFiles []string
	logLevel     string
	noColor      bool
}

// Run executes the CLI and returns the process exit status: 0 on
// success and on user cancellation, 2 on a validation failure, 1 on
// any operational error.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := newApp(stdin, stdout, stderr)
	root := app.newRootCmd()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s %v\n", app.styles.Error.Render("Error:"), err)
		return exitCode(err)
	}
	return 0
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *App {
	return &App{
		in:     bufio.NewScanner(stdin),
		stdout: stdout,
		stderr: stderr,
	}
}

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ratecard",
		Short: "Gym membership pricing from the command line",
		Long: `Ratecard prices a gym membership selection: a base plan, optional
add-on features, a premium tier, and a member count, with the group
discount, the special-offer discount, and the premium surcharge
applied in a fixed order.

Run "ratecard quote" with no flags for the interactive wizard, or
pass --plan/--feature/--members/--premium for a scripted quote.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVarP(&a.outputFormat, "output", "o", "", `output format: table, json, yaml (default "table")`)
	root.PersistentFlags().StringArrayVar(&a.catalogFiles, "catalog-file", nil, "catalog overlay file to apply (repeatable)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", `log level: DEBUG, INFO, WARN, ERROR (default "INFO")`)
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable styled output")

	root.AddCommand(a.newQuoteCmd())
	root.AddCommand(a.newPlansCmd())
	root.AddCommand(a.newFeaturesCmd())
	root.AddCommand(a.newCatalogCmd())
	root.AddCommand(a.newDemoCmd())
	root.AddCommand(a.newVersionCmd())

	return root
}

// setup loads configuration, installs the logger, seeds the catalog,
// applies overlays, and builds the engine. Flags win over environment.
func (a *App) setup() error {
	a.cfg = config.Load()
	if a.outputFormat != "" {
		a.cfg.Output = a.outputFormat
	}
	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}
	if a.noColor {
		a.cfg.NoColor = true
	}

	logging.Setup(a.stderr, a.cfg.LogLevel, a.cfg.LogFormat)

	a.catalog = catalog.New()

	if a.cfg.CatalogDir != "" {
		overlays, err := catalog.LoadOverlayDir(a.cfg.CatalogDir)
		if err != nil {
			slog.Error("catalog overlay dir load failed", "dir", a.cfg.CatalogDir, "error", err)
			return err
		}
		for _, o := range overlays {
			if err := a.applyOverlay(o); err != nil {
				return err
			}
		}
	}

	for _, path := range a.catalogFiles {
		o, err := catalog.LoadOverlay(path)
		if err != nil {
			slog.Error("catalog overlay load failed", "file", path, "error", err)
			return err
		}
		if err := a.applyOverlay(o); err != nil {
			return err
		}
	}

	a.engine = pricing.NewEngine(a.catalog)
	a.formatter = output.NewFormatter(a.cfg.Output)
	a.styles = NewStyles(a.cfg.NoColor)
	return nil
}

func (a *App) applyOverlay(o *catalog.Overlay) error {
	if err := a.catalog.Apply(o); err != nil {
		slog.Error("catalog overlay apply failed", "name", o.Name, "error", err)
		return err
	}
	slog.Debug("catalog overlay applied",
		"name", o.Name, "plans", len(o.Plans), "features", len(o.Features))
	return nil
}

// exitCode maps an error to the process exit status. Selection and
// catalog-record validation failures are user input errors (2);
// everything else is operational (1).
func exitCode(err error) int {
	validation := []error{
		pricing.ErrPlanNotFound,
		pricing.ErrPlanUnavailable,
		pricing.ErrFeatureNotFound,
		pricing.ErrFeatureUnavailable,
		pricing.ErrInvalidMemberCount,
		catalog.ErrUnknownPremiumLevel,
		catalog.ErrInvalidRecord,
	}
	for _, target := range validation {
		if errors.Is(err, target) {
			return 2
		}
	}
	return 1
}
