// Package tt holds helpers shared by this module's tests.
package tt

import (
	"context"
	"sync"

	"github.com/rickchristie/markup"
)

// RecordingHook implements every hook interface and keeps the events it receives in
// arrival order. It is safe for concurrent use.
type RecordingHook struct {
	mu     sync.Mutex
	events []markup.HookEvent
}

// NewRecordingHook creates an empty RecordingHook.
func NewRecordingHook() *RecordingHook {
	return &RecordingHook{}
}

func (h *RecordingHook) record(e markup.HookEvent) {
	h.mu.Lock()
	h.events = append(h.events, e)
	h.mu.Unlock()
}

func (h *RecordingHook) OnAfterFormat(_ context.Context, e markup.FormatAppliedEvent) {
	h.record(e)
}

func (h *RecordingHook) OnAfterMath(_ context.Context, e markup.MathInsertedEvent) {
	h.record(e)
}

func (h *RecordingHook) OnRangeAdjusted(_ context.Context, e markup.RangeAdjustedEvent) {
	h.record(e)
}

func (h *RecordingHook) OnUnknownAction(_ context.Context, e markup.UnknownActionEvent) {
	h.record(e)
}

// Events returns a copy of the recorded events.
func (h *RecordingHook) Events() []markup.HookEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]markup.HookEvent, len(h.events))
	copy(out, h.events)
	return out
}

// Formats returns the recorded FormatAppliedEvents.
func (h *RecordingHook) Formats() []markup.FormatAppliedEvent {
	return collect[markup.FormatAppliedEvent](h)
}

// Maths returns the recorded MathInsertedEvents.
func (h *RecordingHook) Maths() []markup.MathInsertedEvent {
	return collect[markup.MathInsertedEvent](h)
}

// RangeAdjustments returns the recorded RangeAdjustedEvents.
func (h *RecordingHook) RangeAdjustments() []markup.RangeAdjustedEvent {
	return collect[markup.RangeAdjustedEvent](h)
}

// UnknownActions returns the recorded UnknownActionEvents.
func (h *RecordingHook) UnknownActions() []markup.UnknownActionEvent {
	return collect[markup.UnknownActionEvent](h)
}

func collect[E markup.HookEvent](h *RecordingHook) []E {
	var out []E
	for _, e := range h.Events() {
		if typed, ok := e.(E); ok {
			out = append(out, typed)
		}
	}
	return out
}
