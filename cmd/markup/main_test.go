package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rickchristie/markup"
	"github.com/rickchristie/markup/engine"
	"github.com/rickchristie/markup/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestREPL(t *testing.T, text string) (*repl, *bytes.Buffer) {
	t.Helper()
	eng, err := engine.New(engine.DefaultConfig())
	require.NoError(t, err)
	var buf bytes.Buffer
	return newREPL(eng, text, &buf), &buf
}

func TestREPL_Exec(t *testing.T) {
	ctx := context.Background()
	r, out := newTestREPL(t, "hello world")

	for _, line := range []string{"select 0 5", "BOLD", "caret 15", "type \\n", "checklist", "math"} {
		quit, err := r.exec(ctx, line)
		require.NoError(t, err, line)
		assert.False(t, quit)
	}

	assert.Equal(t, "**hello** world\n- [ ] Task$E = mc^2$", r.doc.Text())
	assert.Contains(t, out.String(), "+**hello** world")
	assert.Equal(t, int64(1), r.eng.Stats().GetCounter(markup.KeyMathCalls))
}

func TestREPL_Errors(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestREPL(t, "x")

	_, err := r.exec(ctx, "strike")
	assert.ErrorIs(t, err, markup.ErrUnknownAction)

	_, err = r.exec(ctx, "select 1")
	assert.Error(t, err)

	_, err = r.exec(ctx, "caret one")
	assert.Error(t, err)

	assert.Equal(t, "x", r.doc.Text())
}

func TestREPL_Quit(t *testing.T) {
	r, _ := newTestREPL(t, "")
	for _, line := range []string{"q", "quit", "EXIT"} {
		quit, err := r.exec(context.Background(), line)
		assert.NoError(t, err)
		assert.True(t, quit, line)
	}
}

func TestREPL_Export(t *testing.T) {
	r, out := newTestREPL(t, "# notes\n")
	path := filepath.Join(t.TempDir(), "notes.md")

	_, err := r.exec(context.Background(), "export "+path)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# notes\n", string(data))
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "a\nb", unescape(`a\nb`))
	assert.Equal(t, `say "hi"`, unescape(`say "hi"`))
	assert.Equal(t, `bad \q`, unescape(`bad \q`))
	assert.Equal(t, `say "hi"`, unescape(`say \"hi\"`))
	assert.Equal(t, "tab\there \"q\"\n", unescape(`tab\there \"q\"\n`))
	assert.Equal(t, "caf\u00e9", unescape(`caf\u00e9`))
	assert.Equal(t, `trailing \`, unescape(`trailing \`))
}

func TestREPL_TypeEscapedQuote(t *testing.T) {
	r, _ := newTestREPL(t, "")
	_, err := r.exec(context.Background(), `type say \"hi\"\n`)
	require.NoError(t, err)
	assert.Equal(t, "say \"hi\"\n", r.doc.Text())
}

func TestReportScript(t *testing.T) {
	want := "x"
	results := []script.StepResult{
		{Step: script.Step{Action: markup.ActionBold}, Result: markup.Result{Text: "**bold text**"}},
		{
			Step:     script.Step{Action: markup.ActionItalic, Expect: &script.Expect{Text: &want}},
			Result:   markup.Result{Text: "*x*"},
			Mismatch: true,
			Diff:     "--- before\n+++ after\n@@ -1 +1 @@\n-x\n+*x*\n",
		},
	}

	var buf bytes.Buffer
	err := reportScript(&buf, results)
	assert.ErrorIs(t, err, errStepsFailed)
	assert.Contains(t, buf.String(), "2 steps, 1 failed")
	assert.Contains(t, buf.String(), "italic [0:0]")

	buf.Reset()
	assert.NoError(t, reportScript(&buf, results[:1]))
}

func TestRunScript_File(t *testing.T) {
	var buf bytes.Buffer
	err := runScript(context.Background(), globalFlags{},
		[]string{filepath.Join("..", "..", "script", "testdata", "session.yaml")}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "3 steps, 0 failed")
}

func TestPrintActions(t *testing.T) {
	var buf bytes.Buffer
	printActions(&buf)
	out := buf.String()
	assert.Contains(t, out, "Insert LaTeX Formula")
	assert.Contains(t, out, "Ctrl+B")
	assert.Contains(t, out, "checklist")
}
