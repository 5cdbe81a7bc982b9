package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/doytsujin/skel/internal/app"
	"github.com/doytsujin/skel/internal/defaults"
	"github.com/doytsujin/skel/internal/getopt"
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

// usageText is the static help asset printed for -h/--help.
const usageText = `skel - A minimal CLI skeleton: one flat option set, one operation.

Usage:
  skel [options] [--] [ARGUMENTS...]

Options:
  -h, --help
        Display this help text and exit.
  --debug
        Enable debug output for the remainder of the run.
  -x, --option-x
        Example boolean flag consumed by the operation.
  -o <value>
        Example short option requiring an argument.
  --long-option-with-argument <value>
        Example long option requiring an argument.
  --config <path>
        HCL file with a defaults block supplying option defaults.
  --log-format <format>
        Log output format. Options: 'text' or 'json'. (default "text")
  --
        End of options; everything after is passed through verbatim.
`

// optionSet is the declared option surface for one invocation. It is the
// template's single variability point.
func optionSet() *getopt.Spec {
	return getopt.NewSpec(
		getopt.Option{Name: "help", Short: "h", Long: "help", Usage: "display help text and exit"},
		getopt.Option{Name: "debug", Long: "debug", Usage: "enable debug output"},
		getopt.Option{Name: "option-x", Short: "x", Long: "option-x", Usage: "example boolean flag"},
		getopt.Option{Name: "o", Short: "o", TakesValue: true, Usage: "example short option with argument"},
		getopt.Option{Name: "long-option-with-argument", Long: "long-option-with-argument", TakesValue: true, Usage: "example long option with argument"},
		getopt.Option{Name: "config", Long: "config", TakesValue: true, Usage: "HCL defaults file"},
		getopt.Option{Name: "log-format", Long: "log-format", TakesValue: true, Usage: "log output format: text or json"},
	)
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	spec := optionSet()

	tokens := getopt.Normalize(args, spec)
	slog.Debug("Arguments normalized.", "raw", len(args), "canonical", len(tokens))

	result, err := getopt.Parse(tokens, spec)
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if result.Flag("help") {
		slog.Debug("Help requested, printing usage and exiting.")
		fmt.Fprint(output, usageText)
		return nil, true, nil
	}

	// File-supplied defaults fill absences only; CLI arguments always win.
	fileDefaults, err := defaults.Load(result.Value("config"), spec)
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	shortValue := result.Value("o")
	if shortValue == "" {
		shortValue = fileDefaults.Value("o")
	}
	longValue := result.Value("long-option-with-argument")
	if longValue == "" {
		longValue = fileDefaults.Value("long-option-with-argument")
	}
	logFormat := result.Value("log-format")
	if logFormat == "" {
		logFormat = fileDefaults.Value("log-format")
	}
	if logFormat == "" {
		logFormat = "text"
	}
	slog.Debug("CLI parameter merge complete.")

	config, err := app.NewConfig(app.Config{
		Debug:      result.Flag("debug") || fileDefaults.Flag("debug"),
		OptionX:    result.Flag("option-x") || fileDefaults.Flag("option-x"),
		ShortValue: shortValue,
		LongValue:  longValue,
		LogFormat:  logFormat,
		Args:       result.Args,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
