// Package offset converts caret offsets between the units different callers use.
//
// The formatting core works in byte offsets. Browser text inputs report UTF-16 code
// units, terminal editors usually track grapheme clusters, and most Go editors track
// either bytes or runes. ToByte and FromByte translate between them.
//
// Conversions clamp: a negative offset maps to 0 and an offset past the end maps to
// the end of the text. An offset that falls inside a unit (for example the second
// half of a UTF-16 surrogate pair) maps to the start of that unit.
package offset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Unit is the measure an offset is expressed in.
type Unit string

const (
	Byte     Unit = "byte"
	Rune     Unit = "rune"
	UTF16    Unit = "utf16"
	Grapheme Unit = "grapheme"
)

// ErrUnknownUnit is returned by ParseUnit for unrecognized unit names.
var ErrUnknownUnit = errors.New("unknown offset unit")

// Units returns all supported units.
func Units() []Unit {
	return []Unit{Byte, Rune, UTF16, Grapheme}
}

// ParseUnit converts a case-insensitive name into a Unit. The empty string is Byte.
func ParseUnit(name string) (Unit, error) {
	switch u := Unit(strings.ToLower(strings.TrimSpace(name))); u {
	case "":
		return Byte, nil
	case Byte, Rune, UTF16, Grapheme:
		return u, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// ToByte converts n, measured in unit, into a byte offset into text.
func ToByte(text string, n int, unit Unit) int {
	if n <= 0 {
		return 0
	}
	switch unit {
	case Rune:
		return runeToByte(text, n)
	case UTF16:
		return utf16ToByte(text, n)
	case Grapheme:
		return graphemeToByte(text, n)
	}
	if n > len(text) {
		return len(text)
	}
	return n
}

// FromByte converts byte offset b into unit. b is clamped into [0, len(text)].
func FromByte(text string, b int, unit Unit) int {
	if b <= 0 {
		return 0
	}
	if b > len(text) {
		b = len(text)
	}
	switch unit {
	case Rune:
		return utf8.RuneCountInString(text[:b])
	case UTF16:
		return utf16Len(text[:b])
	case Grapheme:
		return uniseg.GraphemeClusterCount(text[:b])
	}
	return b
}

// Len returns the length of text measured in unit.
func Len(text string, unit Unit) int {
	return FromByte(text, len(text), unit)
}

func runeToByte(text string, n int) int {
	i := 0
	for b := range text {
		if i == n {
			return b
		}
		i++
	}
	return len(text)
}

func utf16ToByte(text string, n int) int {
	units := 0
	for b, r := range text {
		w := 1
		if r > 0xFFFF {
			w = 2
		}
		if units+w > n {
			return b
		}
		units += w
	}
	return len(text)
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func graphemeToByte(text string, n int) int {
	g := uniseg.NewGraphemes(text)
	i := 0
	for g.Next() {
		if i == n {
			start, _ := g.Positions()
			return start
		}
		i++
	}
	return len(text)
}
