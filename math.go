package markup

import "strings"

// DefaultMathFormula is inserted by [InsertMathFormula] when the selection is empty.
const DefaultMathFormula = "E = mc^2"

const (
	inlineMathDelimiter = "$"
	blockMathOpen       = "$$\n"
	blockMathClose      = "\n$$"
)

// InsertMathFormula wraps text[start:end] in math delimiters, or inserts
// [DefaultMathFormula] when the selection is empty.
//
// Single-line content gets inline delimiters ($…$); content containing a line break
// gets a block ($$ on its own line before and after). The caret is always placed right
// after the formula, before the closing delimiter.
func InsertMathFormula(text string, start, end int) Result {
	return PlanMath(text, start, end, DefaultMathFormula).Apply(text)
}

// PlanMath computes the splice for a math insertion. placeholder is used as the
// formula when the normalized selection is empty.
func PlanMath(text string, start, end int, placeholder string) Edit {
	start, end, _ = NormalizeRange(text, start, end)

	edit := Edit{
		Start:   start,
		End:     end,
		Content: text[start:end],
		Prefix:  inlineMathDelimiter,
		Suffix:  inlineMathDelimiter,
	}
	if edit.Content == "" {
		edit.Content = placeholder
		edit.Placeholder = placeholder != ""
	}
	if strings.Contains(edit.Content, "\n") {
		edit.Prefix, edit.Suffix = blockMathOpen, blockMathClose
	}

	edit.Caret = start + len(edit.Prefix) + len(edit.Content)
	return edit
}
