// Package cli parses command-line arguments into a config.Config and carries
// process exit codes back to main.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/mattn/gocalc/internal/config"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the merged
// configuration, whether the program should exit cleanly right away, or an
// ExitError. Flags given explicitly win over values from the config file.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gocalc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gocalc - integer arithmetic calculator.

Usage:
  gocalc [options] [EXPR ...]

Arguments:
  EXPR
    Expression to evaluate. Several arguments are joined with spaces.
    Without arguments, expressions are read from stdin one per line,
    interactively when stdin is a terminal.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Default()
	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	promptFlag := flagSet.String("prompt", defaults.Prompt, "Prompt shown in interactive mode.")
	treeFlag := flagSet.Bool("tree", defaults.ShowTree, "Print the expression tree before the result.")
	examplesFlag := flagSet.Bool("examples", false, "Evaluate the bundled example expressions.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := defaults
	if *configFlag != "" {
		if err := config.LoadFile(*configFlag, cfg); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg.ConfigPath = *configFlag
		slog.Debug("Config file loaded.", "path", *configFlag)
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		case "prompt":
			cfg.Prompt = *promptFlag
		case "tree":
			cfg.ShowTree = *treeFlag
		}
	})
	cfg.Examples = *examplesFlag
	cfg.Args = flagSet.Args()

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
