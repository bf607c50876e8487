// Package app runs the gocalc command: it wires the configuration, logger
// and input/output streams to the calculator, independent of main.
package app

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"

	"github.com/mattn/gocalc"
	"github.com/mattn/gocalc/internal/cli"
	"github.com/mattn/gocalc/internal/config"
)

// App holds the streams and settings of one command invocation.
type App struct {
	in     io.Reader
	outW   io.Writer
	logger *slog.Logger
	cfg    *config.Config
}

// New returns an App reading from in, printing results to outW and logging
// to logW.
func New(in io.Reader, outW, logW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)
	return &App{
		in:     in,
		outW:   outW,
		logger: logger,
		cfg:    cfg,
	}
}

// Run picks the mode from the configuration: bundled examples, the
// expression given as arguments, an interactive session when the input is a
// terminal, or one expression per input line otherwise.
func (a *App) Run() error {
	switch {
	case a.cfg.Examples:
		return a.runExamples()
	case len(a.cfg.Args) > 0:
		return a.runArgs()
	case a.interactive():
		return a.repl()
	}
	return a.runBatch()
}

func (a *App) interactive() bool {
	f, ok := a.in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// eval computes expr and prints the tree first when requested.
func (a *App) eval(expr string) (int64, error) {
	node, err := gocalc.Parse(expr)
	if err != nil {
		a.logger.Debug("Parse failed.", "expr", expr, "error", err)
		return 0, err
	}
	if a.cfg.ShowTree {
		fmt.Fprintf(a.outW, "tree: %s\n", node)
		fmt.Fprintln(a.outW, repr.String(node, repr.Indent("  "), repr.OmitEmpty(true)))
	}
	v, err := gocalc.Eval(node)
	if err != nil {
		a.logger.Debug("Evaluation failed.", "expr", expr, "error", err)
		return 0, err
	}
	a.logger.Debug("Expression evaluated.", "expr", expr, "result", v)
	return v, nil
}

func (a *App) runArgs() error {
	expr := strings.Join(a.cfg.Args, " ")
	v, err := a.eval(expr)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: "error: " + err.Error()}
	}
	fmt.Fprintln(a.outW, v)
	return nil
}

func (a *App) runBatch() error {
	scanner := bufio.NewScanner(a.in)
	total, failed := 0, 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		total++
		v, err := a.eval(line)
		if err != nil {
			failed++
			fmt.Fprintf(a.outW, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(a.outW, v)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	a.logger.Info("Batch finished.", "total", total, "failed", failed)
	if failed > 0 {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("%d of %d expressions failed", failed, total)}
	}
	return nil
}

func (a *App) repl() error {
	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.outW, a.cfg.Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := a.eval(line)
		if err != nil {
			fmt.Fprintf(a.outW, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(a.outW, v)
	}
	fmt.Fprintln(a.outW)
	return scanner.Err()
}

func (a *App) runExamples() error {
	examples, err := gocalc.LoadExamples()
	if err != nil {
		return fmt.Errorf("failed to load examples: %w", err)
	}
	a.logger.Debug("Bundled examples loaded.", "count", len(examples))
	for _, ex := range examples {
		v, err := a.eval(ex.Expr)
		if err != nil {
			fmt.Fprintf(a.outW, "%s: error: %v\n", ex.Expr, err)
			continue
		}
		fmt.Fprintf(a.outW, "%s = %d\n", ex.Expr, v)
	}
	return nil
}
