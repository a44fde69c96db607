// Package diffview renders line diffs between two versions of a buffer.
package diffview

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
)

// Unified returns a unified diff from before to after with three lines of context.
// Identical inputs produce an empty string.
func Unified(before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "before",
		ToFile:   "after",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("failed to diff buffers: %w", err)
	}
	return diff, nil
}

// Colorize adds ANSI colors to a unified diff for terminal output.
func Colorize(diff string) string {
	if diff == "" {
		return ""
	}
	lines := strings.SplitAfter(diff, "\n")
	var b strings.Builder
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString(line)
		case strings.HasPrefix(line, "@@"):
			b.WriteString(wrap(colorCyan, line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(wrap(colorGreen, line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(wrap(colorRed, line))
		default:
			b.WriteString(line)
		}
	}
	return b.String()
}

// wrap colors line, keeping its trailing line break outside the escape codes.
func wrap(color, line string) string {
	body := strings.TrimSuffix(line, "\n")
	out := color + body + colorReset
	if len(body) != len(line) {
		out += "\n"
	}
	return out
}
