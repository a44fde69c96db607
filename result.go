package markup

import "unicode/utf8"

// Result is the outcome of one formatting call. The caller replaces its buffer with
// Text and collapses its selection to NewCursorPosition.
//
// NewCursorPosition is a byte offset into Text and always satisfies
// 0 <= NewCursorPosition <= len(Text).
type Result struct {
	Text              string `yaml:"text" json:"text"`
	NewCursorPosition int    `yaml:"new_cursor_position" json:"newCursorPosition"`
}

// Edit is a planned splice: Text[Start:End] is replaced by Prefix+Content+Suffix.
type Edit struct {
	// Start and End are the normalized byte offsets of the replaced range.
	Start int `yaml:"start"`
	End   int `yaml:"end"`

	Prefix  string `yaml:"prefix"`
	Content string `yaml:"content"`
	Suffix  string `yaml:"suffix"`

	// Placeholder is true when Content was substituted for an empty selection.
	Placeholder bool `yaml:"placeholder"`

	// Caret is the byte offset of the caret in the spliced text.
	Caret int `yaml:"caret"`
}

// Inserted returns the full decorated span.
func (e Edit) Inserted() string {
	return e.Prefix + e.Content + e.Suffix
}

// Apply performs the splice on text. text must be the buffer the edit was planned
// against.
func (e Edit) Apply(text string) Result {
	return Result{
		Text:              text[:e.Start] + e.Inserted() + text[e.End:],
		NewCursorPosition: e.Caret,
	}
}

// NormalizeRange clamps start and end into [0, len(text)], swaps them if reversed,
// and moves any offset that falls inside a multi-byte rune back to the rune start.
// adjusted reports whether the returned range differs from the input.
func NormalizeRange(text string, start, end int) (s, e int, adjusted bool) {
	s, e = clampOffset(text, start), clampOffset(text, end)
	if s > e {
		s, e = e, s
	}
	return s, e, s != start || e != end
}

func clampOffset(text string, n int) int {
	if n < 0 {
		return 0
	}
	if n > len(text) {
		return len(text)
	}
	for n > 0 && n < len(text) && !utf8.RuneStart(text[n]) {
		n--
	}
	return n
}
