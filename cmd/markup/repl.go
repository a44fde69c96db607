package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/rickchristie/markup"
	"github.com/rickchristie/markup/engine"
	"github.com/rickchristie/markup/internal/diffview"
	"github.com/rickchristie/markup/offset"
	"github.com/rickchristie/markup/preview"
	"github.com/rickchristie/markup/session"
)

const replHelp = `Commands:
  show                  print the buffer with the selection marked
  select <start> <end>  select a range (offsets in the engine's unit)
  caret <pos>           collapse the selection to pos
  all                   select the whole buffer
  type <text>           replace the selection with text (\n for a line break)
  <action>              apply a format action, e.g. bold, heading2, checklist
  math                  insert a math formula
  preview               render the buffer
  export [path]         write the buffer to a file (default document.md)
  stats                 print engine counters
  help                  show this help
  q                     quit
`

// repl executes editor commands against one document.
type repl struct {
	eng *engine.Engine
	doc *session.Document
	out io.Writer
}

func newREPL(eng *engine.Engine, text string, out io.Writer) *repl {
	return &repl{
		eng: eng,
		doc: session.New(eng, text),
		out: out,
	}
}

func runREPL(ctx context.Context, g globalFlags, args []string) error {
	text := ""
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		text = string(data)
	}

	eng, closeFn, err := newEngine(g, nil)
	if err != nil {
		return err
	}
	defer closeFn()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       colorCyan + "markup> " + colorReset,
		AutoComplete: completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	r := newREPL(eng, text, rl.Stdout())
	fmt.Fprintf(r.out, "%sType 'help' for commands.%s\n", colorDim, colorReset)
	r.show()

	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				fmt.Fprintf(r.out, "\n%sGoodbye!%s\n", colorGreen, colorReset)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		quit, err := r.exec(ctx, line)
		if err != nil {
			fmt.Fprintf(r.out, "%sError: %v%s\n", colorRed, err, colorReset)
		}
		if quit {
			fmt.Fprintf(r.out, "%sGoodbye!%s\n", colorGreen, colorReset)
			return nil
		}
	}
}

func completer() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("show"),
		readline.PcItem("select"),
		readline.PcItem("caret"),
		readline.PcItem("all"),
		readline.PcItem("type"),
		readline.PcItem("math"),
		readline.PcItem("preview"),
		readline.PcItem("export"),
		readline.PcItem("stats"),
		readline.PcItem("help"),
	}
	for _, a := range markup.Actions() {
		items = append(items, readline.PcItem(string(a)))
	}
	return readline.NewPrefixCompleter(items...)
}

// exec runs one command line. quit is true when the user asked to leave.
func (r *repl) exec(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "q", "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprint(r.out, replHelp)
	case "show":
		r.show()
	case "select":
		nums, err := ints(fields[1:], 2)
		if err != nil {
			return false, err
		}
		r.doc.Select(nums[0], nums[1])
		r.show()
	case "caret":
		nums, err := ints(fields[1:], 1)
		if err != nil {
			return false, err
		}
		r.doc.Select(nums[0], nums[0])
		r.show()
	case "all":
		r.doc.SelectAll()
		r.show()
	case "type":
		_, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		r.edit(func() { r.doc.Insert(unescape(rest)) })
	case "math":
		r.edit(func() { r.doc.InsertMath(ctx) })
	case "preview":
		out, err := preview.Render(r.doc.Text(), 80)
		fmt.Fprintln(r.out, out)
		return false, err
	case "export":
		path := ""
		if len(fields) > 1 {
			path = fields[1]
		}
		written, err := r.doc.ExportFile(path)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(r.out, "%sWrote %s%s\n", colorGreen, written, colorReset)
	case "stats":
		stats := r.eng.Stats()
		for _, k := range stats.Keys() {
			fmt.Fprintf(r.out, "  %-36s %d\n", k, stats.GetCounter(k))
		}
	default:
		action, err := markup.ParseAction(cmd)
		if err != nil {
			return false, fmt.Errorf("%w (try 'help')", err)
		}
		r.edit(func() { r.doc.Format(ctx, action) })
	}
	return false, nil
}

// edit runs fn and prints what it changed.
func (r *repl) edit(fn func()) {
	before := r.doc.Text()
	fn()
	if diff, err := diffview.Unified(before, r.doc.Text()); err == nil && diff != "" {
		fmt.Fprint(r.out, diffview.Colorize(diff))
	}
	r.show()
}

// show prints the buffer with the selection in brackets, or a bar at the caret.
func (r *repl) show() {
	text := r.doc.Text()
	unit := r.eng.Config().Unit
	start, end := r.doc.Selection().Ordered()
	bs := offset.ToByte(text, start, unit)
	be := offset.ToByte(text, end, unit)
	bs, be, _ = markup.NormalizeRange(text, bs, be)

	var marked string
	if bs == be {
		marked = text[:bs] + colorYellow + "|" + colorReset + text[bs:]
	} else {
		marked = text[:bs] + colorYellow + "[" + colorReset + text[bs:be] +
			colorYellow + "]" + colorReset + text[be:]
	}
	fmt.Fprintf(r.out, "%s%s%s\n%s\n%s%s%s\n",
		colorDim, strings.Repeat("-", 40), colorReset,
		marked,
		colorDim, strings.Repeat("-", 40), colorReset)
}

func ints(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = v
	}
	return out, nil
}

// unescape interprets Go escapes such as \n, \t and \". Text containing an invalid
// escape is returned unchanged.
func unescape(s string) string {
	var b strings.Builder
	for rest := s; rest != ""; {
		if rest[0] != '\\' {
			b.WriteByte(rest[0])
			rest = rest[1:]
			continue
		}
		r, multibyte, tail, err := strconv.UnquoteChar(rest, '"')
		if err != nil {
			return s
		}
		if r < utf8.RuneSelf || !multibyte {
			b.WriteByte(byte(r))
		} else {
			b.WriteRune(r)
		}
		rest = tail
	}
	return b.String()
}
