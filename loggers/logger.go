// Package loggers provides a hook that logs every engine event.
package loggers

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rickchristie/markup"
	"gopkg.in/yaml.v3"
)

// TimestampLayout is the layout of the timestamp in each event header.
const TimestampLayout = "2006-01-02 15:04:05.000"

// LoggerHook implements all hook interfaces to log everything an engine does.
// Event bodies are logged as YAML so multi-line buffers stay readable.
// Nothing is truncated - full buffers are always logged.
type LoggerHook struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// NewLoggerHook creates a new LoggerHook that writes to stdout.
func NewLoggerHook() *LoggerHook {
	return NewLoggerHookWithWriter(os.Stdout)
}

// NewLoggerHookWithWriter creates a new LoggerHook that writes to the given writer.
func NewLoggerHookWithWriter(w io.Writer) *LoggerHook {
	return &LoggerHook{
		out: w,
		now: time.Now,
	}
}

// WithClock replaces the time source used for event headers.
func (h *LoggerHook) WithClock(now func() time.Time) *LoggerHook {
	h.now = now
	return h
}

// entry writes one event: a timestamped header followed by body as YAML.
func (h *LoggerHook) entry(name string, body any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	fmt.Fprintf(h.out, "\n>>> [%s]: %s\n", name, h.now().Format(TimestampLayout))

	data, err := yaml.Marshal(body)
	if err != nil {
		fmt.Fprintf(h.out, "(failed to marshal: %v)\n", err)
		return
	}
	fmt.Fprint(h.out, string(data))
}

// OnAfterFormat logs the applied action, the splice and the result.
func (h *LoggerHook) OnAfterFormat(ctx context.Context, event markup.FormatAppliedEvent) {
	h.entry(fmt.Sprintf("AfterFormat: %s", event.Action), map[string]any{
		"edit":   event.Edit,
		"result": event.Result,
	})
}

// OnAfterMath logs the math insertion.
func (h *LoggerHook) OnAfterMath(ctx context.Context, event markup.MathInsertedEvent) {
	name := "AfterMath: inline"
	if event.Block {
		name = "AfterMath: block"
	}
	h.entry(name, map[string]any{
		"edit":   event.Edit,
		"result": event.Result,
	})
}

// OnRangeAdjusted logs a repaired selection.
func (h *LoggerHook) OnRangeAdjusted(ctx context.Context, event markup.RangeAdjustedEvent) {
	h.entry("RangeAdjusted", map[string]any{
		"requested":   []int{event.RequestedStart, event.RequestedEnd},
		"used":        []int{event.Start, event.End},
		"text_length": event.TextLength,
	})
}

// OnUnknownAction logs an ignored action.
func (h *LoggerHook) OnUnknownAction(ctx context.Context, event markup.UnknownActionEvent) {
	body := map[string]any{"action": string(event.Action)}
	if event.Err != nil {
		body["error"] = event.Err.Error()
	}
	h.entry("UnknownAction", body)
}

// Compile-time checks.
var (
	_ markup.AfterFormatHook   = (*LoggerHook)(nil)
	_ markup.AfterMathHook     = (*LoggerHook)(nil)
	_ markup.RangeAdjustedHook = (*LoggerHook)(nil)
	_ markup.UnknownActionHook = (*LoggerHook)(nil)
)
