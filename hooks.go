package markup

import "context"

// -----------------------------------------------------------------------------
// Engine Hook Interfaces
// -----------------------------------------------------------------------------
//
// Hooks observe formatting calls made through an engine. To use hooks:
//
//  1. Implement the desired hook interface(s)
//  2. Register with hooks.Registry
//  3. Pass the registry to engine.Engine.WithHooks, or call RegisterHook
//
// Example:
//
//	type AuditHook struct {
//	    logger *log.Logger
//	}
//
//	func (h *AuditHook) OnUnknownAction(ctx context.Context, e markup.UnknownActionEvent) {
//	    h.logger.Printf("ignored action %q", e.Action)
//	}
//
//	eng, _ := engine.New(engine.DefaultConfig())
//	eng.RegisterHook(&AuditHook{logger: log.Default()})
//
// Hooks are called synchronously in registration order, on the caller's goroutine.
// They must not return errors or block: the formatting call is on the UI event path.
// Anomaly hooks (range adjusted, unknown action) fire before the result is returned,
// so a hook can record the anomaly even though the call itself never fails.
// -----------------------------------------------------------------------------

// AfterFormatHook is implemented by hooks that want to see every applied action.
type AfterFormatHook interface {
	// OnAfterFormat is called once per successful ApplyFormat call.
	OnAfterFormat(ctx context.Context, event FormatAppliedEvent)
}

// AfterMathHook is implemented by hooks that want to see every math insertion.
type AfterMathHook interface {
	// OnAfterMath is called once per InsertMathFormula call.
	OnAfterMath(ctx context.Context, event MathInsertedEvent)
}

// RangeAdjustedHook is implemented by hooks that want to be told about selections
// that were out of range or reversed.
type RangeAdjustedHook interface {
	// OnRangeAdjusted is called before the splice, after normalization.
	OnRangeAdjusted(ctx context.Context, event RangeAdjustedEvent)
}

// UnknownActionHook is implemented by hooks that want to be told about actions
// with no catalog entry.
type UnknownActionHook interface {
	// OnUnknownAction is called instead of OnAfterFormat.
	OnUnknownAction(ctx context.Context, event UnknownActionEvent)
}
