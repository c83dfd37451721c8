package cli

import (
	"context"
	"errors"
	"io"

	"github.com/specialistvlad/dcorder/internal/app"
	"github.com/specialistvlad/dcorder/internal/config"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitRuntime = 1
	ExitUsage   = 2
	ExitCycles  = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
}

func runtimeError(err error) *ExitError {
	code := ExitRuntime
	if errors.Is(err, app.ErrCircularDependencies) {
		code = ExitCycles
	}
	return &ExitError{Code: code, Message: err.Error(), Err: err}
}

// options collects the flag values shared by all commands.
type options struct {
	configPaths []string
	logLevel    string
	logFormat   string
	output      string
}

// Execute runs the command line given by args. Reports are written to
// stdout, logs, help and errors to stderr. Every returned error is an
// *ExitError.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, loader config.Loader) error {
	root := NewRootCommand(stdout, stderr, loader)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra reports before a command runs is a usage problem.
	return usageError(err)
}

// NewRootCommand builds the dcorder command tree.
func NewRootCommand(stdout, stderr io.Writer, loader config.Loader) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "dcorder",
		Short: "Compute rebuild sets and build orders for development components",
		Long: `dcorder reads a development track (compartments of components and the
dependencies between them) from HCL files and answers two questions for a set
of changed components: which components have to be rebuilt, and in which
order they can be built. Components caught in circular dependencies are
reported instead of ordered.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.StringSliceVarP(&opts.configPaths, "config", "c", nil, "Path to a .hcl file or a directory of .hcl files. Repeatable.")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVarP(&opts.output, "output", "o", "text", "Report format. Options: 'text', 'yaml' or 'json'.")

	root.AddCommand(
		newOrderCommand(opts, stdout, stderr, loader),
		newClosureCommand(opts, stdout, stderr, loader),
		newValidateCommand(opts, stdout, stderr, loader),
	)
	return root
}

// newApp validates cfg and builds the app. args are additional track paths.
func newApp(opts *options, cfg app.Config, args []string, stdout, stderr io.Writer, loader config.Loader) (*app.App, error) {
	cfg.ConfigPaths = append(append([]string{}, opts.configPaths...), args...)
	cfg.LogLevel = opts.logLevel
	cfg.LogFormat = opts.logFormat
	cfg.Output = opts.output

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return nil, usageError(err)
	}
	a, err := app.NewApp(stdout, stderr, appConfig, loader)
	if err != nil {
		return nil, runtimeError(err)
	}
	return a, nil
}
