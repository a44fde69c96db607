package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolbar_CoversEveryAction(t *testing.T) {
	items := Toolbar()
	require.Len(t, items, len(Actions())+1)

	for i, a := range Actions() {
		assert.Equal(t, a, items[i].Action)
		assert.False(t, items[i].IsMath())
	}
	last := items[len(items)-1]
	assert.True(t, last.IsMath())
	assert.Empty(t, last.Action)
}

func TestToolbarItemFor(t *testing.T) {
	item, ok := ToolbarItemFor(ActionBold)
	require.True(t, ok)
	assert.Equal(t, "Ctrl+B", item.Shortcut)

	item, ok = ToolbarItemFor(ActionQuote)
	require.True(t, ok)
	assert.Equal(t, "Citation Block", item.Label)

	_, ok = ToolbarItemFor(Action(""))
	assert.False(t, ok)
}
