package offset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// "a" (1 byte), "é" (2 bytes), "😀" (4 bytes, 2 UTF-16 units),
// "e" + U+0301 (3 bytes, 2 runes, 1 grapheme), "z".
const sample = "a\u00e9\U0001F600e\u0301z"

func TestToByte(t *testing.T) {
	type input struct {
		n    int
		unit Unit
	}

	tests := []struct {
		name     string
		input    input
		expected int
	}{
		{name: "byte passthrough", input: input{3, Byte}, expected: 3},
		{name: "byte clamped", input: input{99, Byte}, expected: len(sample)},
		{name: "negative", input: input{-4, Rune}, expected: 0},
		{name: "rune after accent", input: input{2, Rune}, expected: 3},
		{name: "rune after emoji", input: input{3, Rune}, expected: 7},
		{name: "rune past end", input: input{50, Rune}, expected: len(sample)},
		{name: "utf16 before emoji", input: input{2, UTF16}, expected: 3},
		{name: "utf16 inside surrogate pair", input: input{3, UTF16}, expected: 3},
		{name: "utf16 after emoji", input: input{4, UTF16}, expected: 7},
		{name: "grapheme after emoji", input: input{3, Grapheme}, expected: 7},
		{name: "grapheme after combining mark", input: input{4, Grapheme}, expected: 10},
		{name: "grapheme end", input: input{5, Grapheme}, expected: len(sample)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToByte(sample, tt.input.n, tt.input.unit))
		})
	}
}

func TestFromByte(t *testing.T) {
	tests := []struct {
		name     string
		b        int
		unit     Unit
		expected int
	}{
		{name: "byte", b: 7, unit: Byte, expected: 7},
		{name: "rune", b: 7, unit: Rune, expected: 3},
		{name: "utf16", b: 7, unit: UTF16, expected: 4},
		{name: "grapheme", b: 10, unit: Grapheme, expected: 4},
		{name: "clamped", b: 100, unit: Rune, expected: 6},
		{name: "zero", b: 0, unit: Grapheme, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromByte(sample, tt.b, tt.unit))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, unit := range Units() {
		n := Len(sample, unit)
		for i := 0; i <= n; i++ {
			b := ToByte(sample, i, unit)
			assert.Equal(t, b, ToByte(sample, FromByte(sample, b, unit), unit), "%s %d", unit, i)
		}
	}
}

func TestLen(t *testing.T) {
	assert.Equal(t, 11, Len(sample, Byte))
	assert.Equal(t, 6, Len(sample, Rune))
	assert.Equal(t, 7, Len(sample, UTF16))
	assert.Equal(t, 5, Len(sample, Grapheme))
	assert.Equal(t, 0, Len("", Grapheme))
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit(" UTF16 ")
	require.NoError(t, err)
	assert.Equal(t, UTF16, u)

	u, err = ParseUnit("")
	require.NoError(t, err)
	assert.Equal(t, Byte, u)

	_, err = ParseUnit("codepoint")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}
