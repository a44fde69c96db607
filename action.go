package markup

import (
	"fmt"
	"strings"
)

// Action identifies a formatting action requested by the caller, typically from a
// toolbar button or keyboard shortcut.
//
// The set of actions is closed: every value returned by [Actions] has exactly one
// entry in [DefaultCatalog]. Values outside that set are treated as a no-op by
// [ApplyFormat] and reported through [UnknownActionHook] when run via an engine.
type Action string

const (
	ActionBold      Action = "bold"
	ActionItalic    Action = "italic"
	ActionUnderline Action = "underline"
	ActionHeading1  Action = "heading1"
	ActionHeading2  Action = "heading2"
	ActionHeading3  Action = "heading3"
	ActionHeading4  Action = "heading4"
	ActionHeading5  Action = "heading5"
	ActionHeading6  Action = "heading6"
	ActionParagraph Action = "paragraph"
	ActionCode      Action = "code"
	ActionQuote     Action = "quote"
	ActionBullet    Action = "bullet"
	ActionNumber    Action = "number"
	ActionChecklist Action = "checklist"
)

var allActions = []Action{
	ActionBold,
	ActionItalic,
	ActionUnderline,
	ActionHeading1,
	ActionHeading2,
	ActionHeading3,
	ActionHeading4,
	ActionHeading5,
	ActionHeading6,
	ActionParagraph,
	ActionCode,
	ActionQuote,
	ActionBullet,
	ActionNumber,
	ActionChecklist,
}

// Actions returns every known action in toolbar order.
// The returned slice is a copy and may be modified by the caller.
func Actions() []Action {
	out := make([]Action, len(allActions))
	copy(out, allActions)
	return out
}

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	for _, known := range allActions {
		if a == known {
			return true
		}
	}
	return false
}

// IsHeading reports whether a is one of heading1 through heading6.
func (a Action) IsHeading() bool {
	switch a {
	case ActionHeading1, ActionHeading2, ActionHeading3,
		ActionHeading4, ActionHeading5, ActionHeading6:
		return true
	}
	return false
}

// String returns the action name.
func (a Action) String() string {
	return string(a)
}

// ParseAction converts a case-insensitive action name into an Action.
// Returns an error wrapping [ErrUnknownAction] if name is not a known action.
func ParseAction(name string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(name)))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}
