// Command markup edits, replays and previews markdown buffers from the terminal.
//
// Usage:
//
//	markup [-config file] [-log file] repl [file]
//	markup [-config file] [-log file] run script.yaml
//	markup preview [-width n] [-style name] file
//	markup actions
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rickchristie/markup"
	"github.com/rickchristie/markup/engine"
	"github.com/rickchristie/markup/internal/diffview"
	"github.com/rickchristie/markup/loggers"
	"github.com/rickchristie/markup/preview"
	"github.com/rickchristie/markup/script"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

var errStepsFailed = errors.New("script expectations not met")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n",
			colorRed, err, colorReset)
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	logPath    string
}

func run(args []string) error {
	fs := flag.NewFlagSet("markup", flag.ContinueOnError)
	var g globalFlags
	fs.StringVar(&g.configPath, "config", "", "engine config file (YAML)")
	fs.StringVar(&g.logPath, "log", "", "append engine events to this file")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			"usage: markup [-config file] [-log file] <repl|run|preview|actions> [args]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "repl":
		return runREPL(ctx, g, rest)
	case "run":
		return runScript(ctx, g, rest, os.Stdout)
	case "preview":
		return runPreview(rest, os.Stdout)
	case "actions":
		printActions(os.Stdout)
		return nil
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// newEngine builds an engine from the global flags. The returned close function
// releases the log file, if any.
func newEngine(g globalFlags, override func(*engine.Config)) (*engine.Engine, func(), error) {
	cfg := engine.DefaultConfig()
	if g.configPath != "" {
		f, err := os.Open(g.configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open config: %w", err)
		}
		cfg, err = engine.LoadConfig(f)
		f.Close()
		if err != nil {
			return nil, nil, err
		}
	}
	if override != nil {
		override(&cfg)
	}

	eng, err := engine.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {}
	if g.logPath != "" {
		logFile, err := os.OpenFile(g.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		eng.RegisterHook(loggers.NewLoggerHookWithWriter(logFile))
		closeFn = func() { logFile.Close() }
	}
	return eng, closeFn, nil
}

func runScript(ctx context.Context, g globalFlags, args []string, w io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: markup run script.yaml")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	s, err := script.Load(f)
	f.Close()
	if err != nil {
		return err
	}

	eng, closeFn, err := newEngine(g, func(cfg *engine.Config) {
		if s.Unit != "" {
			cfg.Unit = s.Unit
		}
	})
	if err != nil {
		return err
	}
	defer closeFn()

	results, err := script.Run(ctx, eng, s)
	if err != nil {
		return err
	}
	return reportScript(w, results)
}

func reportScript(w io.Writer, results []script.StepResult) error {
	for i, r := range results {
		status := colorGreen + "ok" + colorReset
		if r.Mismatch {
			status = colorRed + "FAIL" + colorReset
		}
		fmt.Fprintf(w, "  %s%d.%s %-28s %s\n",
			colorCyan, i+1, colorReset, r.Step.Name(), status)
		if r.Mismatch {
			if r.Diff != "" {
				fmt.Fprint(w, diffview.Colorize(r.Diff))
			}
			if exp := r.Step.Expect; exp.Cursor != nil && *exp.Cursor != r.Result.NewCursorPosition {
				fmt.Fprintf(w, "     cursor: expected %d, got %d\n",
					*exp.Cursor, r.Result.NewCursorPosition)
			}
		}
	}

	failed := len(script.Failures(results))
	fmt.Fprintf(w, "\n%d steps, %d failed\n", len(results), failed)
	if failed > 0 {
		return errStepsFailed
	}
	return nil
}

func runPreview(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	width := fs.Int("width", 80, "wrap output at this many columns (0 disables)")
	style := fs.String("style", preview.StylePlain, "glamour style: notty, ascii, dark, light")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: markup preview [-width n] [-style name] file")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	r, err := preview.New(preview.Options{Width: *width, Style: *style})
	if err != nil {
		return err
	}
	defer r.Close()

	out, err := r.Render(string(data))
	fmt.Fprintln(w, out)
	return err
}

func printActions(w io.Writer) {
	fmt.Fprintf(w, "%s%sToolbar:%s\n", colorBold, colorYellow, colorReset)
	fmt.Fprintf(w, "%s%s%s\n", colorYellow, strings.Repeat("=", 8), colorReset)
	for _, item := range markup.Toolbar() {
		name := string(item.Action)
		if item.IsMath() {
			name = "math"
		}
		shortcut := ""
		if item.Shortcut != "" {
			shortcut = fmt.Sprintf(" %s(%s)%s", colorDim, item.Shortcut, colorReset)
		}
		fmt.Fprintf(w, "  %s%-10s%s %s%s%s%s\n",
			colorCyan, name, colorReset,
			colorWhite, item.Label, colorReset, shortcut)
	}
}
