package hooks

import (
	"context"

	"github.com/rickchristie/markup"
)

// Registry manages a collection of hooks and dispatches events to them.
//
// # Overview
//
// Registry is the central coordination point for hooks. It:
//   - Stores registered hooks in order
//   - Dispatches events to hooks that implement the relevant interface
//
// Hooks can implement any combination of hook interfaces - they only receive
// events for the interfaces they implement.
//
// # Creating and Using
//
//	registry := hooks.NewRegistry()
//	registry.Register(loggers.NewLoggerHook())
//	registry.Register(&AuditHook{})
//
//	eng, _ := engine.New(engine.DefaultConfig())
//	eng.WithHooks(registry)
//
// # Hooks with Multiple Interfaces
//
//	type AnomalyHook struct {
//	    logger *log.Logger
//	}
//
//	func (h *AnomalyHook) OnRangeAdjusted(ctx context.Context, e markup.RangeAdjustedEvent) {
//	    h.logger.Printf("selection [%d:%d] outside buffer of %d bytes",
//	        e.RequestedStart, e.RequestedEnd, e.TextLength)
//	}
//
//	func (h *AnomalyHook) OnUnknownAction(ctx context.Context, e markup.UnknownActionEvent) {
//	    h.logger.Printf("ignored action %q", e.Action)
//	}
//
// # Thread Safety
//
// Registry is NOT thread-safe for registration. Register all hooks before sharing the
// engine between goroutines. Fire methods only read the hook list and may run
// concurrently; hooks themselves must be safe for concurrent use if the engine is.
type Registry struct {
	hooks []any
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		hooks: make([]any, 0),
	}
}

// Register adds a hook to the registry. The hook can implement any combination
// of hook interfaces (AfterFormatHook, UnknownActionHook, etc.).
//
// Hooks are called in the order they are registered.
func (r *Registry) Register(hook any) *Registry {
	r.hooks = append(r.hooks, hook)
	return r
}

// FireAfterFormat dispatches a FormatAppliedEvent to all registered
// AfterFormatHook implementations.
func (r *Registry) FireAfterFormat(ctx context.Context, event markup.FormatAppliedEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(markup.AfterFormatHook); ok {
			hook.OnAfterFormat(ctx, event)
		}
	}
}

// FireAfterMath dispatches a MathInsertedEvent to all registered
// AfterMathHook implementations.
func (r *Registry) FireAfterMath(ctx context.Context, event markup.MathInsertedEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(markup.AfterMathHook); ok {
			hook.OnAfterMath(ctx, event)
		}
	}
}

// FireRangeAdjusted dispatches a RangeAdjustedEvent to all registered
// RangeAdjustedHook implementations.
func (r *Registry) FireRangeAdjusted(ctx context.Context, event markup.RangeAdjustedEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(markup.RangeAdjustedHook); ok {
			hook.OnRangeAdjusted(ctx, event)
		}
	}
}

// FireUnknownAction dispatches an UnknownActionEvent to all registered
// UnknownActionHook implementations.
func (r *Registry) FireUnknownAction(ctx context.Context, event markup.UnknownActionEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(markup.UnknownActionHook); ok {
			hook.OnUnknownAction(ctx, event)
		}
	}
}

// Len returns the number of registered hooks.
func (r *Registry) Len() int {
	return len(r.hooks)
}

// Clear removes all registered hooks.
func (r *Registry) Clear() {
	r.hooks = make([]any, 0)
}
