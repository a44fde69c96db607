package tt

import (
	"testing"
	"unicode/utf8"

	"github.com/rickchristie/markup"
	"github.com/stretchr/testify/assert"
)

// AssertResultValid checks the invariants every formatting result must satisfy:
// the caret is inside the text and the text is valid UTF-8.
func AssertResultValid(t *testing.T, res markup.Result) {
	t.Helper()
	assert.GreaterOrEqual(t, res.NewCursorPosition, 0, "caret before buffer start")
	assert.LessOrEqual(t, res.NewCursorPosition, len(res.Text), "caret past buffer end")
	assert.True(t, utf8.ValidString(res.Text), "result is not valid UTF-8: %q", res.Text)
}
