package cli

import (
	"errors"
	"io"

	"github.com/specialistvlad/dcorder/internal/app"
	"github.com/specialistvlad/dcorder/internal/config"
	"github.com/spf13/cobra"
)

func newOrderCommand(opts *options, stdout, stderr io.Writer, loader config.Loader) *cobra.Command {
	var cfg app.Config
	cmd := &cobra.Command{
		Use:   "order [PATH...]",
		Short: "Print the build order for a set of changed components",
		Long: `Expands the changed components into everything that uses them, keeps the
components of Source compartments and orders them so that every component is
built after the components it uses.

Examples:
  dcorder order -c ./track --changed example.org:lib/jetm
  dcorder order ./track --all --output yaml --fail-on-cycle`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cfg, args, stdout, stderr, loader)
			if err != nil {
				return err
			}
			if _, err := a.Order(cmd.Context()); err != nil {
				return commandError(err)
			}
			return nil
		},
	}
	addSeedFlags(cmd, &cfg)
	cmd.Flags().BoolVar(&cfg.FailOnCycle, "fail-on-cycle", false, "Exit with code 3 when components are excluded by circular dependencies.")
	return cmd
}

func newClosureCommand(opts *options, stdout, stderr io.Writer, loader config.Loader) *cobra.Command {
	var cfg app.Config
	cmd := &cobra.Command{
		Use:   "closure [PATH...]",
		Short: "Print every component affected by a set of changed components",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cfg, args, stdout, stderr, loader)
			if err != nil {
				return err
			}
			if _, err := a.Closure(cmd.Context()); err != nil {
				return commandError(err)
			}
			return nil
		},
	}
	addSeedFlags(cmd, &cfg)
	return cmd
}

func newValidateCommand(opts *options, stdout, stderr io.Writer, loader config.Loader) *cobra.Command {
	var cfg app.Config
	cmd := &cobra.Command{
		Use:   "validate [PATH...]",
		Short: "Report dangling references, unknown public parts and unowned components",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, cfg, args, stdout, stderr, loader)
			if err != nil {
				return err
			}
			if _, err := a.Validate(cmd.Context()); err != nil {
				return runtimeError(err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&cfg.Strict, "strict", false, "Exit with code 1 when there are findings.")
	return cmd
}

func addSeedFlags(cmd *cobra.Command, cfg *app.Config) {
	cmd.Flags().StringSliceVar(&cfg.Changed, "changed", nil, "Changed components as vendor:name. Repeatable or comma-separated.")
	cmd.Flags().BoolVar(&cfg.All, "all", false, "Treat every component of a Source compartment as changed.")
}

// commandError maps errors of a resolution to exit codes. Missing seeds are
// a usage problem; everything else happened at runtime.
func commandError(err error) error {
	if errors.Is(err, app.ErrNothingToResolve) {
		return usageError(err)
	}
	return runtimeError(err)
}
