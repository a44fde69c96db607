package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Action
		err      error
	}{
		{name: "exact", input: "bold", expected: ActionBold},
		{name: "mixed case and spaces", input: "  Heading3 ", expected: ActionHeading3},
		{name: "checklist", input: "CHECKLIST", expected: ActionChecklist},
		{name: "unknown", input: "strike", err: ErrUnknownAction},
		{name: "empty", input: "", err: ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestActions(t *testing.T) {
	all := Actions()
	assert.Len(t, all, 15)
	assert.Equal(t, ActionBold, all[0])
	assert.Equal(t, ActionChecklist, all[len(all)-1])

	all[0] = Action("mutated")
	assert.Equal(t, ActionBold, Actions()[0])
}

func TestAction_Predicates(t *testing.T) {
	assert.True(t, ActionHeading1.IsHeading())
	assert.True(t, ActionHeading6.IsHeading())
	assert.False(t, ActionParagraph.IsHeading())

	assert.True(t, ActionNumber.Valid())
	assert.False(t, Action("heading7").Valid())
	assert.Equal(t, "quote", ActionQuote.String())
}
