package loggers

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rickchristie/markup"
	"github.com/rickchristie/markup/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 2, 15, 14, 30, 0, 0, time.UTC)
}

func TestLoggerHook_Events(t *testing.T) {
	tests := []struct {
		name     string
		fire     func(h *LoggerHook)
		expected string
	}{
		{
			name: "after format",
			fire: func(h *LoggerHook) {
				h.OnAfterFormat(context.Background(), markup.FormatAppliedEvent{
					Action: markup.ActionBold,
					Edit:   markup.Edit{Start: 0, End: 2, Prefix: "**", Content: "hi", Suffix: "**", Caret: 6},
					Result: markup.Result{Text: "**hi**", NewCursorPosition: 6},
				})
			},
			expected: `
>>> [AfterFormat: bold]: 2025-02-15 14:30:00.000
edit:
    start: 0
    end: 2
    prefix: '**'
    content: hi
    suffix: '**'
    placeholder: false
    caret: 6
result:
    text: '**hi**'
    new_cursor_position: 6
`,
		},
		{
			name: "range adjusted",
			fire: func(h *LoggerHook) {
				h.OnRangeAdjusted(context.Background(), markup.RangeAdjustedEvent{
					RequestedStart: 9, RequestedEnd: -1, Start: 0, End: 3, TextLength: 3,
				})
			},
			expected: `
>>> [RangeAdjusted]: 2025-02-15 14:30:00.000
requested:
    - 9
    - -1
text_length: 3
used:
    - 0
    - 3
`,
		},
		{
			name: "unknown action",
			fire: func(h *LoggerHook) {
				h.OnUnknownAction(context.Background(), markup.UnknownActionEvent{Action: "strike"})
			},
			expected: `
>>> [UnknownAction]: 2025-02-15 14:30:00.000
action: strike
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewLoggerHookWithWriter(&buf).WithClock(fixedClock)
			tc.fire(h)
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestLoggerHook_WithEngine(t *testing.T) {
	var buf bytes.Buffer
	eng, err := engine.New(engine.DefaultConfig())
	require.NoError(t, err)
	eng.RegisterHook(NewLoggerHookWithWriter(&buf).WithClock(fixedClock))

	ctx := context.Background()
	eng.ApplyFormat(ctx, "abc", 0, 9, markup.ActionItalic)
	eng.InsertMathFormula(ctx, "x\ny", 0, 3)
	eng.ApplyFormat(ctx, "abc", 0, 1, markup.Action("nope"))

	out := buf.String()
	assert.Contains(t, out, ">>> [RangeAdjusted]: 2025-02-15 14:30:00.000")
	assert.Contains(t, out, ">>> [AfterFormat: italic]")
	assert.Contains(t, out, ">>> [AfterMath: block]")
	assert.Contains(t, out, ">>> [UnknownAction]")
	assert.Contains(t, out, "unknown format action")

	// Multi-line buffers are kept whole.
	assert.Contains(t, out, "text: |-\n        $$\n        x\n        y\n        $$")
}
