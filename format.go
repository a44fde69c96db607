package markup

import (
	"fmt"
	"strings"
)

// ApplyFormat decorates text[start:end] for action using the default catalog.
//
// When the selection is empty the action's placeholder is inserted instead and the
// caret is left right after it, before the closing decoration, so the placeholder can
// be typed over. Otherwise the caret ends up after the whole decorated span.
//
// Offsets are byte offsets. Out-of-range offsets are clamped and a reversed range is
// swapped. An unknown action returns text unchanged with the caret at the end of the
// normalized selection.
//
// Example:
//
//	res := markup.ApplyFormat("hello world", 0, 5, markup.ActionCode)
//	// res.Text == "`hello` world", res.NewCursorPosition == 7
func ApplyFormat(text string, start, end int, action Action) Result {
	return defaultCatalog.ApplyFormat(text, start, end, action)
}

// ApplyFormat is like the package-level [ApplyFormat] but uses decorations from c.
func (c Catalog) ApplyFormat(text string, start, end int, action Action) Result {
	edit, err := c.Plan(text, start, end, action)
	if err != nil {
		return Result{Text: text, NewCursorPosition: edit.Caret}
	}
	return edit.Apply(text)
}

// Plan computes the splice ApplyFormat would perform without applying it.
//
// For unknown actions Plan returns an error wrapping [ErrUnknownAction] and an empty
// edit over the normalized range whose Caret is the normalized end.
func (c Catalog) Plan(text string, start, end int, action Action) (Edit, error) {
	start, end, _ = NormalizeRange(text, start, end)

	d, ok := c.Lookup(action)
	if !ok {
		return Edit{Start: start, End: end, Caret: end},
			fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	edit := Edit{
		Start:   start,
		End:     end,
		Prefix:  d.Prefix,
		Suffix:  d.Suffix,
		Content: text[start:end],
	}
	if start == end {
		edit.Content = d.Placeholder
		edit.Placeholder = d.Placeholder != ""
	}

	if d.HasMultiline() && strings.Contains(edit.Content, "\n") {
		edit.Prefix, edit.Suffix = d.MultilinePrefix, d.MultilineSuffix
	}

	// Only the buffer around the insertion point matters here, never the content.
	if d.LineAnchored && start > 0 && text[start-1] != '\n' {
		edit.Prefix = "\n" + edit.Prefix
	}
	if d.ListLike && end < len(text) && text[end] != '\n' {
		edit.Suffix += "\n"
	}

	edit.Caret = start + len(edit.Prefix) + len(edit.Content)
	if !edit.Placeholder {
		edit.Caret += len(edit.Suffix)
	}
	return edit, nil
}
