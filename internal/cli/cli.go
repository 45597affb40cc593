package cli

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vk/tdbload/internal/app"
	"github.com/vk/tdbload/internal/model"
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

// options collects raw flag values before validation.
type options struct {
	loc       string
	phase     string
	debug     bool
	trace     bool
	keepWork  bool
	jvmArgs   string
	sortArgs  string
	settings  []string
	logFormat string
}

const longHelp = `Builds a triple store at DIR from the given data files in two phases.

The data phase loads FILE... into DIR; the index phase sorts that output and
builds the indexes. --phase runs one of them alone: "index" resumes after a
data phase that already completed.

Option parsing stops at "--" or at the first argument that is not an option;
every argument from there on is a data file. Put "--" before file names that
start with "-".`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Parse has no side effects besides writing help text to output.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if args == nil {
		args = []string{}
	}

	var (
		opts   options
		config *app.Config
	)

	cmd := &cobra.Command{
		Use:           "tdbload --loc DIR [flags] [--] FILE...",
		Short:         "Bulk-load a triple store by running the data and index phases",
		Long:          longHelp,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(c *cobra.Command, files []string) error {
			// A bare "-" ends pflag's option run but is still option-like.
			if len(files) > 0 && files[0] == "-" && c.ArgsLenAtDash() != 0 {
				return &ExitError{Code: model.ExitConfigError, Message: "unrecognized option: -"}
			}
			cfg, err := opts.resolve(files)
			if err != nil {
				return err
			}
			config = cfg
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		// Help seen before the bad token wins, as in a left-to-right scan.
		if help := c.Flags().Lookup("help"); help != nil && help.Changed {
			return pflag.ErrHelp
		}
		return flagError(err)
	})

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.SortFlags = false
	flags.StringVarP(&opts.loc, "loc", "l", "", "Location of the database directory (created if absent). Required.")
	flags.StringVarP(&opts.phase, "phase", "p", model.DefaultMode.String(), "Phase to run: all, data or index.")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "Enable debug output in the controller and phase tools.")
	flags.BoolVarP(&opts.trace, "trace", "t", false, "Enable tracing in the phase tools.")
	flags.BoolVarP(&opts.keepWork, "keep-work", "k", false, "Keep intermediate work files.")
	flags.StringVarP(&opts.jvmArgs, "jvm-args", "j", "", "Arguments for the phase tools' runtime, passed through unchanged.")
	flags.StringVarP(&opts.sortArgs, "sort-args", "s", "", "Arguments for the external sort, passed to the index phase only.")
	flags.StringArrayVarP(&opts.settings, "config", "c", nil, "HCL settings file or directory (repeatable).")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Controller log format: text or json.")

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: model.ExitCode(err), Message: err.Error()}
	}

	if config == nil {
		slog.Debug("Help requested, exiting.")
		return nil, true, nil
	}
	slog.Debug("CLI parser finished successfully.", "mode", config.Run.Mode.String(), "files", len(config.Run.DataFiles))
	return config, false, nil
}

// resolve validates the collected options into a Config.
func (o *options) resolve(files []string) (*app.Config, error) {
	mode, err := model.ParseMode(o.phase)
	if err != nil {
		return nil, toExitError(err)
	}

	level := "info"
	if o.debug || o.trace {
		level = "debug"
	}

	cfg, err := app.NewConfig(app.Config{
		Run: model.RunConfig{
			Location:  o.loc,
			Mode:      mode,
			Debug:     o.debug,
			Trace:     o.trace,
			KeepWork:  o.keepWork,
			JVMArgs:   o.jvmArgs,
			SortArgs:  o.sortArgs,
			DataFiles: files,
		},
		SettingsPaths: o.settings,
		LogFormat:     strings.ToLower(o.logFormat),
		LogLevel:      level,
	})
	if err != nil {
		return nil, toExitError(err)
	}
	return cfg, nil
}

func toExitError(err error) *ExitError {
	return &ExitError{Code: model.ExitCode(err), Message: err.Error()}
}

// flagError rewrites pflag's parse errors into configuration errors.
func flagError(err error) error {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "unknown flag: "):
		msg = "unrecognized option: " + strings.TrimPrefix(msg, "unknown flag: ")
	case strings.HasPrefix(msg, "unknown shorthand flag: "):
		msg = "unrecognized option: " + strings.TrimPrefix(msg, "unknown shorthand flag: ")
	}
	return &ExitError{Code: model.ExitConfigError, Message: msg}
}
