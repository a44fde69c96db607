// Package markup inserts markdown decoration into a plain-text buffer.
//
// The library is the text-transformation core of a markdown editor. A UI layer holds the
// document text and the user's selection; when a toolbar button is pressed it calls
// [ApplyFormat] or [InsertMathFormula], replaces its buffer with the returned text, and
// collapses its selection to the returned caret position. Nothing is retained between
// calls and every function is safe to call from any goroutine.
//
// # Quick Start
//
//	text := "hello world"
//
//	res := markup.ApplyFormat(text, 0, 5, markup.ActionBold)
//	// res.Text == "**hello** world"
//	// res.NewCursorPosition == 9
//
//	res = markup.ApplyFormat("", 0, 0, markup.ActionBold)
//	// res.Text == "**bold text**"
//	// res.NewCursorPosition == 11 (after the placeholder, before the closing **)
//
//	res = markup.InsertMathFormula("", 0, 0)
//	// res.Text == "$E = mc^2$"
//	// res.NewCursorPosition == 9
//
// # Actions and the Catalog
//
// Each [Action] maps to one [Decoration] in the [Catalog]: a prefix, a suffix, a
// placeholder used for empty selections, and two layout flags:
//
//   - Line-anchored actions (headings, lists) start on their own line. If the byte before
//     the insertion point is not a line break, a line break is prepended to the prefix.
//   - List-like actions (bullet, number, checklist) also push the text after the
//     selection to the next line by appending a line break to the suffix.
//
// The code action has two variants: a single backtick pair for single-line content and
// a ``` fence on its own lines for content that contains a line break.
//
// # Offsets
//
// All offsets in this package are byte offsets into a UTF-8 string. Offsets are clamped
// to the buffer, reversed ranges are swapped, and an offset that lands inside a
// multi-byte rune is moved back to the start of that rune. Callers working in runes,
// UTF-16 code units, or grapheme clusters should go through package engine, which
// converts offsets using package offset.
//
// # Engines, Hooks and Stats
//
// The package-level functions are pure. Package engine wraps them with configuration
// (offset unit, placeholder overrides), hooks for observing calls and anomalies, and
// [Stats] counters:
//
//	eng, err := engine.New(engine.Config{Unit: offset.UTF16})
//	if err != nil {
//	    return err
//	}
//	eng.RegisterHook(loggers.NewLoggerHook())
//	res := eng.ApplyFormat(ctx, text, start, end, markup.ActionQuote)
//
// # Known Behavior
//
// The paragraph action always surrounds its content with one line break on each side,
// regardless of existing blank lines. Applying it repeatedly accumulates blank lines.
package markup
