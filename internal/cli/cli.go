package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/projforge/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment variables that fill unset flags.
const EnvPrefix = "PROJFORGE"

// Commands an Invocation can name.
const (
	CommandSynth = "synth"
	CommandTasks = "tasks"
	CommandPlan  = "plan"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Invocation is a parsed command line.
type Invocation struct {
	Command string
	Config  *app.Config
	// Format is the tasks listing format.
	Format string
	// Task is the task to plan.
	Task string
}

type options struct {
	project   string
	out       string
	dryRun    bool
	logLevel  string
	logFormat string
	format    string
}

// Parse processes command-line arguments. It returns the invocation, a
// boolean indicating if the program should exit cleanly (help was shown),
// or an ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	slog.Debug("CLI parser started.")
	opts := &options{}
	var inv *Invocation
	var ran *cobra.Command

	capture := func(command string, configure func(*Invocation, []string)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, posArgs []string) error {
			i, err := opts.invocation(command, posArgs)
			if err != nil {
				return err
			}
			if configure != nil {
				configure(i, posArgs)
			}
			inv, ran = i, cmd
			return nil
		}
	}

	root := &cobra.Command{
		Use:   "projforge [PROJECT_PATH]",
		Short: "Synthesize TypeScript project configuration and build tasks",
		Long: `projforge reads a project definition written in HCL and synthesizes the
compiler configuration, ignore files, snapshot resolver and task manifest of a
TypeScript library.

PROJECT_PATH is a single .hcl file or a directory containing .hcl files.
Every flag may also be set through a PROJFORGE_* environment variable,
for example PROJFORGE_LOG_LEVEL=debug.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          capture(CommandSynth, nil),
	}
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)
	root.Flags().StringVar(&opts.out, "out", "", "Output directory (defaults to the project directory).")
	root.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print a unified diff instead of writing files.")
	root.PersistentFlags().StringVarP(&opts.project, "project", "p", "", "Path to the project file or directory.")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	tasks := &cobra.Command{
		Use:   "tasks [PROJECT_PATH]",
		Short: "List the synthesized tasks",
		Args:  cobra.MaximumNArgs(1),
		RunE: capture(CommandTasks, func(i *Invocation, _ []string) {
			i.Format = opts.format
		}),
	}
	tasks.Flags().StringVarP(&opts.format, "output", "o", app.FormatText, "Output format. Options: 'text', 'json', 'yaml'.")

	plan := &cobra.Command{
		Use:   "plan TASK [PROJECT_PATH]",
		Short: "Print the exec steps of a task with spawns expanded",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			return capture(CommandPlan, func(i *Invocation, _ []string) {
				i.Task = posArgs[0]
			})(cmd, posArgs[1:])
		},
	}

	root.AddCommand(tasks, plan)
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return bindEnv(cmd)
	}

	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if inv == nil {
		// Help was printed.
		return nil, true, nil
	}
	if inv.Config == nil {
		slog.Debug("No project path provided, printing usage and exiting.")
		_ = ran.Usage()
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "command", inv.Command, "config", inv.Config)
	return inv, false, nil
}

// invocation validates the flag values and builds the app configuration.
// A missing project path yields an invocation without a config.
func (o *options) invocation(command string, posArgs []string) (*Invocation, error) {
	path := o.project
	if len(posArgs) > 0 {
		path = posArgs[0]
	}

	logFormat := strings.ToLower(o.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(o.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if command == CommandTasks {
		switch o.format {
		case app.FormatText, app.FormatJSON, app.FormatYAML:
		default:
			return nil, usageError("invalid output: must be 'text', 'json', or 'yaml'")
		}
	}

	inv := &Invocation{Command: command}
	if path == "" {
		return inv, nil
	}

	cfg, err := app.NewConfig(app.Config{
		ProjectPath: path,
		OutDir:      o.out,
		DryRun:      o.dryRun,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, usageError("%s", err.Error())
	}
	inv.Config = cfg
	return inv, nil
}

// bindEnv fills every flag the user did not set from PROJFORGE_<FLAG>, with
// dashes in the flag name turned into underscores.
func bindEnv(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	// Flags() holds the inherited persistent flags once parsing is done.
	flags := cmd.Flags()
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	var setErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || setErr != nil || f.Name == "help" {
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		val := fmt.Sprintf("%v", v.Get(f.Name))
		if val == "" {
			return
		}
		if err := f.Value.Set(val); err != nil {
			setErr = usageError("invalid %s_%s: %v", EnvPrefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), err)
		}
	})
	return setErr
}
