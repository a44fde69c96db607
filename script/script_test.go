package script

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/rickchristie/markup"
	"github.com/rickchristie/markup/engine"
	"github.com/rickchristie/markup/offset"
	"github.com/rickchristie/markup/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, unit offset.Unit) *engine.Engine {
	t.Helper()
	eng, err := engine.New(engine.Config{Unit: unit})
	require.NoError(t, err)
	return eng
}

func TestLoadAndRun_Fixture(t *testing.T) {
	f, err := os.Open("testdata/session.yaml")
	require.NoError(t, err)
	defer f.Close()

	s, err := Load(f)
	require.NoError(t, err)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, markup.ActionBold, s.Steps[0].Action)
	assert.True(t, s.Steps[2].Math)

	results, err := Run(context.Background(), newEngine(t, offset.Byte), s)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Empty(t, Failures(results))

	assert.Equal(t, "hello world", results[0].Before)
	assert.Equal(t, "**hello** world", results[1].Before)
}

func TestRun_Mismatch(t *testing.T) {
	input := `
document: "abc"
steps:
  - action: italic
    start: 0
    end: 3
    expect:
      text: "_abc_"
`
	s, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	results, err := Run(context.Background(), newEngine(t, offset.Byte), s)
	require.NoError(t, err)

	failures := Failures(results)
	require.Len(t, failures, 1)
	assert.Equal(t, "italic [0:3]", failures[0].Step.Name())
	assert.Equal(t, "--- before\n+++ after\n@@ -1 +1 @@\n-_abc_\n+*abc*\n", failures[0].Diff)
}

func TestRun_CursorMismatchOnly(t *testing.T) {
	cursor := 1
	s := &Script{
		Document: "",
		Steps:    []Step{{Math: true, Expect: &Expect{Cursor: &cursor}}},
	}

	results, err := Run(context.Background(), newEngine(t, offset.Byte), s)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Mismatch)
	assert.Empty(t, results[0].Diff)
}

func TestRun_UnitMismatch(t *testing.T) {
	s := &Script{Unit: offset.UTF16}
	_, err := Run(context.Background(), newEngine(t, offset.Byte), s)
	assert.ErrorIs(t, err, ErrInvalidScript)
}

func TestRun_GraphemeUnit(t *testing.T) {
	input := "document: \"cafe\u0301 au lait\"\n" +
		"unit: grapheme\n" +
		"steps:\n" +
		"  - action: code\n" +
		"    start: 0\n" +
		"    end: 4\n" +
		"    expect:\n" +
		"      text: \"`cafe\u0301` au lait\"\n" +
		"      cursor: 6\n"

	s, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	results, err := Run(context.Background(), newEngine(t, offset.Grapheme), s)
	require.NoError(t, err)
	assert.Empty(t, Failures(results))
}

func TestRun_ContextCanceled(t *testing.T) {
	s := &Script{Steps: []Step{{Action: markup.ActionBold}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, newEngine(t, offset.Byte), s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		schemaE bool
	}{
		{name: "missing steps", input: "document: x\n", schemaE: true},
		{name: "unknown action", input: "steps:\n  - action: strike\n    start: 0\n    end: 0\n", schemaE: true},
		{name: "unknown unit", input: "unit: furlong\nsteps: []\n", schemaE: true},
		{name: "missing offsets", input: "steps:\n  - action: bold\n", schemaE: true},
		{name: "negative expected cursor", input: "steps:\n  - math: true\n    start: 0\n    end: 0\n    expect:\n      cursor: -1\n", schemaE: true},
		{name: "both action and math", input: "steps:\n  - action: bold\n    math: true\n    start: 0\n    end: 0\n"},
		{name: "neither action nor math", input: "steps:\n  - start: 0\n    end: 0\n"},
		{name: "malformed yaml", input: "steps: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidScript)

			var vErr *schema.ValidationError
			assert.Equal(t, tc.schemaE, errors.As(err, &vErr), "error: %v", err)
		})
	}
}
