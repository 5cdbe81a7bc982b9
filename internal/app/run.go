package app

import (
	"context"
	"fmt"

	"github.com/doytsujin/skel/internal/ctxlog"
)

// Run executes the placeholder operation with the parsed invocation state.
// Exactly one of help display or Run happens per invocation; the CLI layer
// has already decided which before this is called.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Debug("Parsed options resolved.",
		"option_x", a.config.OptionX,
		"short_value", a.config.ShortValue,
		"long_value", a.config.LongValue,
		"args", a.config.Args,
	)

	if err := a.operation(ctx); err != nil {
		return fmt.Errorf("operation failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// operation is the placeholder body of the program. It reports the parsed
// state so an end-to-end invocation has observable output.
func (a *App) operation(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Placeholder operation started.")

	fmt.Fprintf(a.outW, "option-x: %t\n", a.config.OptionX)
	if a.config.ShortValue != "" {
		fmt.Fprintf(a.outW, "o: %s\n", a.config.ShortValue)
	}
	if a.config.LongValue != "" {
		fmt.Fprintf(a.outW, "long-option-with-argument: %s\n", a.config.LongValue)
	}
	for _, arg := range a.config.Args {
		fmt.Fprintf(a.outW, "argument: %s\n", arg)
	}

	logger.Debug("Placeholder operation finished.")
	return nil
}
