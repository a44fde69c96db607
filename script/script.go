// Package script replays recorded formatting sessions.
//
// A script is a YAML document holding a starting buffer and a list of steps. Each
// step selects a range and presses one toolbar button:
//
//	document: "hello world"
//	unit: byte
//	steps:
//	  - action: bold
//	    start: 0
//	    end: 5
//	    expect:
//	      text: "**hello** world"
//	      cursor: 9
//	  - math: true
//	    start: 15
//	    end: 15
//
// Scripts double as regression fixtures: a step with an expect block is checked
// against the engine's output and mismatches are reported with a diff.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rickchristie/markup"
	"github.com/rickchristie/markup/engine"
	"github.com/rickchristie/markup/internal/diffview"
	"github.com/rickchristie/markup/offset"
	"github.com/rickchristie/markup/schema"
	"github.com/rickchristie/markup/session"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned when a script fails validation.
var ErrInvalidScript = errors.New("invalid script")

// Script is a starting buffer plus the steps to replay against it.
type Script struct {
	Document string      `yaml:"document"`
	Unit     offset.Unit `yaml:"unit,omitempty"`
	Steps    []Step      `yaml:"steps"`
}

// Step selects [Start, End) and runs either Action or, when Math is set, a math
// insertion.
type Step struct {
	Action markup.Action `yaml:"action,omitempty"`
	Math   bool          `yaml:"math,omitempty"`
	Start  int           `yaml:"start"`
	End    int           `yaml:"end"`
	Expect *Expect       `yaml:"expect,omitempty"`
}

// Expect is the outcome a step must produce. Nil fields are not checked.
type Expect struct {
	Text   *string `yaml:"text,omitempty"`
	Cursor *int    `yaml:"cursor,omitempty"`
}

// Name returns a short label for the step.
func (s Step) Name() string {
	if s.Math {
		return fmt.Sprintf("math [%d:%d]", s.Start, s.End)
	}
	return fmt.Sprintf("%s [%d:%d]", s.Action, s.Start, s.End)
}

// StepResult is the outcome of one replayed step.
type StepResult struct {
	Step   Step
	Before string
	Result markup.Result

	// Mismatch is set when the step's expectation was not met. Diff then holds a
	// unified diff from the expected text to the actual text, if the text differed.
	Mismatch bool
	Diff     string
}

var stepSchema = schema.Object(map[string]*schema.Property{
	"action": schema.String("Format action to apply").Enum(schema.Values(markup.Actions())...),
	"math":   schema.Boolean("Insert a math formula instead of applying an action"),
	"start":  schema.Integer("Selection start"),
	"end":    schema.Integer("Selection end"),
	"expect": schema.Nested("Expected outcome of the step", schema.Object(map[string]*schema.Property{
		"text":   schema.String("Expected buffer"),
		"cursor": schema.Integer("Expected caret").Min(0),
	})),
}, "start", "end")

var scriptSchema = schema.MustCompile(schema.Object(map[string]*schema.Property{
	"document": schema.String("Starting buffer"),
	"unit":     schema.String("Offset unit of every step").Enum(schema.Values(offset.Units())...),
	"steps":    schema.Array("Steps to replay in order", stepSchema),
}, "steps"))

// Load reads and validates a YAML script from r.
func Load(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if err := scriptSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every step names exactly one of action or math.
func (s *Script) Validate() error {
	if _, err := offset.ParseUnit(string(s.Unit)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	for i, step := range s.Steps {
		switch {
		case step.Math && step.Action != "":
			return fmt.Errorf("%w: step %d sets both action and math", ErrInvalidScript, i)
		case !step.Math && step.Action == "":
			return fmt.Errorf("%w: step %d sets neither action nor math", ErrInvalidScript, i)
		case !step.Math && !step.Action.Valid():
			return fmt.Errorf("%w: step %d: %w: %q", ErrInvalidScript, i, markup.ErrUnknownAction, step.Action)
		}
	}
	return nil
}

// Run replays s against a fresh document. The script's unit must match the engine's.
// Run stops early only when ctx is done.
func Run(ctx context.Context, eng *engine.Engine, s *Script) ([]StepResult, error) {
	unit, err := offset.ParseUnit(string(s.Unit))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if unit != eng.Config().Unit {
		return nil, fmt.Errorf("%w: script unit %q does not match engine unit %q",
			ErrInvalidScript, unit, eng.Config().Unit)
	}

	doc := session.New(eng, s.Document)
	results := make([]StepResult, 0, len(s.Steps))

	for _, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		before := doc.Text()
		doc.Select(step.Start, step.End)

		var res markup.Result
		if step.Math {
			res = doc.InsertMath(ctx)
		} else {
			res = doc.Format(ctx, step.Action)
		}

		sr := StepResult{Step: step, Before: before, Result: res}
		if err := check(&sr); err != nil {
			return results, err
		}
		results = append(results, sr)
	}
	return results, nil
}

func check(sr *StepResult) error {
	exp := sr.Step.Expect
	if exp == nil {
		return nil
	}
	if exp.Cursor != nil && *exp.Cursor != sr.Result.NewCursorPosition {
		sr.Mismatch = true
	}
	if exp.Text != nil && *exp.Text != sr.Result.Text {
		sr.Mismatch = true
		diff, err := diffview.Unified(*exp.Text, sr.Result.Text)
		if err != nil {
			return err
		}
		sr.Diff = diff
	}
	return nil
}

// Failures returns the results whose expectations were not met.
func Failures(results []StepResult) []StepResult {
	var out []StepResult
	for _, r := range results {
		if r.Mismatch {
			out = append(out, r)
		}
	}
	return out
}
