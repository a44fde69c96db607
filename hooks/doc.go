// Package hooks provides a registry for observing formatting calls.
//
// Each hook interface corresponds to a specific event type - implement only
// the interfaces you need.
//
// # Hook Interfaces
//
// Call hooks:
//   - [markup.AfterFormatHook] - Called after each applied action
//   - [markup.AfterMathHook] - Called after each math insertion
//
// Anomaly hooks:
//   - [markup.RangeAdjustedHook] - Called when a selection was clamped or swapped
//   - [markup.UnknownActionHook] - Called when an action has no catalog entry
//
// # Creating a Hook
//
//	type CountingHook struct {
//	    formats atomic.Int64
//	}
//
//	func (h *CountingHook) OnAfterFormat(ctx context.Context, e markup.FormatAppliedEvent) {
//	    h.formats.Add(1)
//	}
//
// # Registering Hooks
//
//	registry := hooks.NewRegistry()
//	registry.Register(&CountingHook{})
//	eng.WithHooks(registry)
//
// Hooks never return errors and never affect the formatting result. The engine's
// output is identical with or without hooks registered.
package hooks
