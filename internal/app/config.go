package app

import "fmt"

// Config holds the complete parsed invocation state. It is constructed once
// by the CLI layer and treated as immutable for the rest of the run.
type Config struct {
	Debug      bool   // emit debug-level output
	OptionX    bool   // example boolean flag
	ShortValue string // value of -o
	LongValue  string // value of --long-option-with-argument

	LogFormat string
	Args      []string // positional arguments, including everything after "--"
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
