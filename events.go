package markup

// -----------------------------------------------------------------------------
// Hook Event Interface
// -----------------------------------------------------------------------------

// HookEvent is a marker interface for all hook events.
type HookEvent interface {
	hookEvent()
}

// -----------------------------------------------------------------------------
// Formatting Events
// -----------------------------------------------------------------------------

// FormatAppliedEvent is emitted after an engine applied a known action.
type FormatAppliedEvent struct {
	// Action is the applied action.
	Action Action

	// Edit is the splice that was performed, in byte offsets.
	Edit Edit

	// Result is what the caller receives, with the caret in the engine's unit.
	Result Result
}

func (FormatAppliedEvent) hookEvent() {}

// MathInsertedEvent is emitted after an engine inserted a math formula.
type MathInsertedEvent struct {
	// Edit is the splice that was performed, in byte offsets.
	Edit Edit

	// Block is true when block delimiters ($$) were used.
	Block bool

	// Result is what the caller receives, with the caret in the engine's unit.
	Result Result
}

func (MathInsertedEvent) hookEvent() {}

// -----------------------------------------------------------------------------
// Anomaly Events
// -----------------------------------------------------------------------------

// RangeAdjustedEvent is emitted when the requested selection had to be clamped,
// swapped, or moved to a rune boundary. This indicates a caller bug; the call still
// completes with the adjusted range.
type RangeAdjustedEvent struct {
	// RequestedStart and RequestedEnd are the offsets the caller asked for, in the
	// engine's offset unit.
	RequestedStart int
	RequestedEnd   int

	// Start and End are the byte offsets actually used.
	Start int
	End   int

	// TextLength is the byte length of the buffer at the time of the call.
	TextLength int
}

func (RangeAdjustedEvent) hookEvent() {}

// UnknownActionEvent is emitted when an action has no catalog entry. The buffer is
// returned unchanged.
type UnknownActionEvent struct {
	// Action is the unrecognized value.
	Action Action

	// Err wraps [ErrUnknownAction].
	Err error
}

func (UnknownActionEvent) hookEvent() {}
