// Package engine wraps the markup formatting functions with configuration, hooks and
// stats for use by an editor UI.
//
// An Engine is created once and shared by every document the UI edits. Each call is
// independent: the engine converts the caller's offsets to bytes, runs the pure
// splice from package markup, converts the caret back, and notifies hooks.
//
//	eng, err := engine.New(engine.Config{Unit: offset.UTF16})
//	if err != nil {
//	    return err
//	}
//	eng.RegisterHook(loggers.NewLoggerHook())
//
//	res := eng.ApplyFormat(ctx, text, selStart, selEnd, markup.ActionBold)
//	input.SetText(res.Text)
//	input.SetSelection(res.NewCursorPosition, res.NewCursorPosition)
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/rickchristie/markup"
	"github.com/rickchristie/markup/hooks"
	"github.com/rickchristie/markup/offset"
)

// Engine applies formatting actions with a fixed configuration.
//
// The Engine is responsible for:
//   - Converting offsets between the configured unit and bytes
//   - Reporting repaired selections and unknown actions to hooks
//   - Counting calls in Stats
//
// All methods are safe for concurrent use once hooks are registered.
type Engine struct {
	config  Config
	catalog markup.Catalog
	hooks   *hooks.Registry
	stats   *markup.Stats
}

// New creates a new Engine. Zero-valued config fields take their DefaultConfig values
// and the unit name is normalized, so "UTF16" and "utf16" are the same unit.
func New(config Config) (*Engine, error) {
	unit, err := offset.ParseUnit(string(config.Unit))
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	config.Unit = unit
	if config.MathPlaceholder == "" {
		config.MathPlaceholder = markup.DefaultMathFormula
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	catalog := markup.DefaultCatalog()
	for a, text := range config.Placeholders {
		catalog = catalog.WithPlaceholder(a, text)
	}

	return &Engine{
		config:  config,
		catalog: catalog,
		hooks:   hooks.NewRegistry(),
		stats:   markup.NewStats(),
	}, nil
}

// WithHooks replaces the engine's hook registry with the provided one.
// Use this when you need to share a registry across multiple engines.
// Returns the engine for chaining.
func (e *Engine) WithHooks(h *hooks.Registry) *Engine {
	e.hooks = h
	return e
}

// RegisterHook adds a hook to the engine's existing hook registry.
// The hook can implement any combination of hook interfaces.
// Returns the engine for chaining.
func (e *Engine) RegisterHook(hook any) *Engine {
	e.hooks.Register(hook)
	return e
}

// Config returns the configuration the engine was created with, with defaults applied.
func (e *Engine) Config() Config {
	return e.config
}

// Catalog returns a copy of the catalog in use, including placeholder overrides.
func (e *Engine) Catalog() markup.Catalog {
	return e.catalog.Clone()
}

// Stats returns the engine's counters.
func (e *Engine) Stats() *markup.Stats {
	return e.stats
}

// ApplyFormat applies action to text[start:end]. start and end are in the configured
// unit, and so is the returned caret. See markup.ApplyFormat for the splice rules.
//
// The call never fails. An out-of-range or reversed selection is repaired and reported
// through RangeAdjustedHook; an unknown action returns text unchanged and is reported
// through UnknownActionHook.
func (e *Engine) ApplyFormat(
	ctx context.Context,
	text string,
	start, end int,
	action markup.Action,
) markup.Result {
	bs, be := e.byteRange(ctx, text, start, end)

	edit, err := e.catalog.Plan(text, bs, be, action)
	if err != nil {
		e.stats.IncrCounter(markup.KeyUnknownAction, 1)
		if e.hooks != nil {
			e.hooks.FireUnknownAction(ctx, markup.UnknownActionEvent{Action: action, Err: err})
		}
		return markup.Result{
			Text:              text,
			NewCursorPosition: offset.FromByte(text, edit.Caret, e.config.Unit),
		}
	}

	res := e.toUnit(edit.Apply(text))

	e.stats.IncrCounter(markup.KeyFormatCalls, 1)
	e.stats.IncrCounter(markup.KeyFormatCallsFor.For(string(action)), 1)
	if edit.Placeholder {
		e.stats.IncrCounter(markup.KeyPlaceholders, 1)
	}
	if e.hooks != nil {
		e.hooks.FireAfterFormat(ctx, markup.FormatAppliedEvent{
			Action: action,
			Edit:   edit,
			Result: res,
		})
	}
	return res
}

// InsertMathFormula wraps text[start:end] in math delimiters, or inserts the configured
// math placeholder for an empty selection. Offsets are in the configured unit.
func (e *Engine) InsertMathFormula(ctx context.Context, text string, start, end int) markup.Result {
	bs, be := e.byteRange(ctx, text, start, end)

	edit := markup.PlanMath(text, bs, be, e.config.MathPlaceholder)
	res := e.toUnit(edit.Apply(text))

	e.stats.IncrCounter(markup.KeyMathCalls, 1)
	if edit.Placeholder {
		e.stats.IncrCounter(markup.KeyPlaceholders, 1)
	}
	if e.hooks != nil {
		e.hooks.FireAfterMath(ctx, markup.MathInsertedEvent{
			Edit:   edit,
			Block:  strings.HasPrefix(edit.Prefix, "$$"),
			Result: res,
		})
	}
	return res
}

// byteRange converts a selection in the configured unit into a normalized byte range,
// reporting any repair.
func (e *Engine) byteRange(ctx context.Context, text string, start, end int) (int, int) {
	length := offset.Len(text, e.config.Unit)
	outside := start < 0 || end < 0 || start > length || end > length || start > end

	bs := offset.ToByte(text, start, e.config.Unit)
	be := offset.ToByte(text, end, e.config.Unit)
	s, en, adjusted := markup.NormalizeRange(text, bs, be)

	if outside || adjusted {
		e.stats.IncrCounter(markup.KeyRangeAdjusted, 1)
		if e.hooks != nil {
			e.hooks.FireRangeAdjusted(ctx, markup.RangeAdjustedEvent{
				RequestedStart: start,
				RequestedEnd:   end,
				Start:          s,
				End:            en,
				TextLength:     len(text),
			})
		}
	}
	return s, en
}

func (e *Engine) toUnit(res markup.Result) markup.Result {
	res.NewCursorPosition = offset.FromByte(res.Text, res.NewCursorPosition, e.config.Unit)
	return res
}
