package markup

import "fmt"

// Decoration describes the literal text an action wraps around its content.
type Decoration struct {
	// Prefix is inserted before the content.
	Prefix string `yaml:"prefix"`

	// Suffix is inserted after the content.
	Suffix string `yaml:"suffix"`

	// Placeholder replaces the content when the selection is empty.
	// Headings and paragraph use an empty placeholder.
	Placeholder string `yaml:"placeholder"`

	// LineAnchored actions must start on their own line. A line break is prepended
	// to Prefix when the insertion point is not at the start of a line.
	LineAnchored bool `yaml:"line_anchored"`

	// ListLike actions additionally push any text following the selection onto a
	// new line. ListLike implies LineAnchored.
	ListLike bool `yaml:"list_like"`

	// MultilinePrefix and MultilineSuffix replace Prefix and Suffix when the content
	// contains a line break. Empty means the action has a single variant.
	MultilinePrefix string `yaml:"multiline_prefix,omitempty"`
	MultilineSuffix string `yaml:"multiline_suffix,omitempty"`
}

// HasMultiline reports whether the decoration switches to a block variant for
// multi-line content.
func (d Decoration) HasMultiline() bool {
	return d.MultilinePrefix != "" || d.MultilineSuffix != ""
}

// Catalog maps every Action to its Decoration.
type Catalog map[Action]Decoration

var defaultCatalog = Catalog{
	ActionBold:      {Prefix: "**", Suffix: "**", Placeholder: "bold text"},
	ActionItalic:    {Prefix: "*", Suffix: "*", Placeholder: "italic text"},
	ActionUnderline: {Prefix: "__", Suffix: "__", Placeholder: "underlined text"},
	ActionHeading1:  {Prefix: "# ", LineAnchored: true},
	ActionHeading2:  {Prefix: "## ", LineAnchored: true},
	ActionHeading3:  {Prefix: "### ", LineAnchored: true},
	ActionHeading4:  {Prefix: "#### ", LineAnchored: true},
	ActionHeading5:  {Prefix: "##### ", LineAnchored: true},
	ActionHeading6:  {Prefix: "###### ", LineAnchored: true},
	ActionParagraph: {Prefix: "\n", Suffix: "\n"},
	ActionCode: {
		Prefix:          "`",
		Suffix:          "`",
		Placeholder:     "code",
		MultilinePrefix: "```\n",
		MultilineSuffix: "\n```",
	},
	ActionQuote:     {Prefix: "> ", Placeholder: "quote"},
	ActionBullet:    {Prefix: "- ", Placeholder: "Bullet point", LineAnchored: true, ListLike: true},
	ActionNumber:    {Prefix: "1. ", Placeholder: "Numbered point", LineAnchored: true, ListLike: true},
	ActionChecklist: {Prefix: "- [ ] ", Placeholder: "Task", LineAnchored: true, ListLike: true},
}

func init() {
	if err := defaultCatalog.Validate(); err != nil {
		panic(err)
	}
}

// DefaultCatalog returns a fresh copy of the built-in catalog.
func DefaultCatalog() Catalog {
	return defaultCatalog.Clone()
}

// Lookup returns the decoration for a. The boolean is false for unknown actions.
func (c Catalog) Lookup(a Action) (Decoration, bool) {
	d, ok := c[a]
	return d, ok
}

// WithPlaceholder returns a copy of the catalog with the placeholder for a replaced.
// The receiver is not modified. Unknown actions are ignored.
func (c Catalog) WithPlaceholder(a Action, placeholder string) Catalog {
	out := c.Clone()
	if d, ok := out[a]; ok {
		d.Placeholder = placeholder
		out[a] = d
	}
	return out
}

// Validate checks that every known action has an entry and that list-like
// entries are also line-anchored.
func (c Catalog) Validate() error {
	for _, a := range allActions {
		d, ok := c[a]
		if !ok {
			return fmt.Errorf("catalog has no decoration for action %q", a)
		}
		if d.ListLike && !d.LineAnchored {
			return fmt.Errorf("catalog entry %q is list-like but not line-anchored", a)
		}
	}
	return nil
}

// Clone returns a copy of the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for a, d := range c {
		out[a] = d
	}
	return out
}
