package markup

// ToolbarItem describes one formatting button as a UI layer would present it.
type ToolbarItem struct {
	// ID is a stable command identifier such as "format.bold" or "insert.math".
	ID string

	// Action is the action the button triggers. Empty for the math button, which
	// calls InsertMathFormula instead of ApplyFormat.
	Action Action

	Label    string
	Shortcut string
}

// IsMath reports whether the item inserts a math formula.
func (t ToolbarItem) IsMath() bool {
	return t.ID == MathToolbarItem.ID
}

// MathToolbarItem is the button that inserts a math formula.
var MathToolbarItem = ToolbarItem{ID: "insert.math", Label: "Insert LaTeX Formula"}

// Toolbar returns the formatting buttons in display order, ending with
// [MathToolbarItem].
func Toolbar() []ToolbarItem {
	return []ToolbarItem{
		{ID: "format.bold", Action: ActionBold, Label: "Bold", Shortcut: "Ctrl+B"},
		{ID: "format.italic", Action: ActionItalic, Label: "Italic", Shortcut: "Ctrl+I"},
		{ID: "format.underline", Action: ActionUnderline, Label: "Underline"},
		{ID: "format.heading1", Action: ActionHeading1, Label: "Heading 1"},
		{ID: "format.heading2", Action: ActionHeading2, Label: "Heading 2"},
		{ID: "format.heading3", Action: ActionHeading3, Label: "Heading 3"},
		{ID: "format.heading4", Action: ActionHeading4, Label: "Heading 4"},
		{ID: "format.heading5", Action: ActionHeading5, Label: "Heading 5"},
		{ID: "format.heading6", Action: ActionHeading6, Label: "Heading 6"},
		{ID: "format.paragraph", Action: ActionParagraph, Label: "Paragraph"},
		{ID: "format.code", Action: ActionCode, Label: "Code Block"},
		{ID: "format.quote", Action: ActionQuote, Label: "Citation Block"},
		{ID: "format.bullet", Action: ActionBullet, Label: "Bullet List"},
		{ID: "format.number", Action: ActionNumber, Label: "Numbered List"},
		{ID: "format.checklist", Action: ActionChecklist, Label: "Checklist"},
		MathToolbarItem,
	}
}

// ToolbarItemFor returns the toolbar item for a, or false if a has no button.
func ToolbarItemFor(a Action) (ToolbarItem, bool) {
	for _, item := range Toolbar() {
		if item.Action == a && !item.IsMath() {
			return item, true
		}
	}
	return ToolbarItem{}, false
}
