// Package preview renders a markdown buffer for terminal display.
//
// Rendering is a collaborator of the formatting engine, not part of it: the engine
// only inserts markup, and whatever the user typed is handed to the renderer as is.
// Malformed markup never causes an error; it renders as literal text.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Styles accepted by Options.Style.
const (
	StylePlain = "notty"
	StyleASCII = "ascii"
	StyleDark  = "dark"
	StyleLight = "light"
)

// Options configures a Renderer.
type Options struct {
	// Width wraps output at this many columns. Zero disables wrapping.
	Width int

	// Style is a glamour standard style name. Empty means StylePlain.
	Style string
}

// Renderer renders markdown with fixed options.
type Renderer struct {
	tr *glamour.TermRenderer
}

// New creates a Renderer.
func New(opts Options) (*Renderer, error) {
	style := opts.Style
	if style == "" {
		style = StylePlain
	}

	glamourOpts := []glamour.TermRendererOption{glamour.WithStylePath(style)}
	if opts.Width > 0 {
		glamourOpts = append(glamourOpts, glamour.WithWordWrap(opts.Width))
	}

	tr, err := glamour.NewTermRenderer(glamourOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return &Renderer{tr: tr}, nil
}

// Render renders text. On failure the plain text is returned together with the error,
// so callers can always display something.
func (r *Renderer) Render(text string) (string, error) {
	rendered, err := r.tr.Render(text)
	if err != nil {
		return text, fmt.Errorf("failed to render preview: %w", err)
	}
	return trimRight(rendered), nil
}

// Close releases the renderer.
func (r *Renderer) Close() error {
	return r.tr.Close()
}

// Render renders text in the plain style wrapped at width columns. It degrades the
// same way Renderer.Render does.
func Render(text string, width int) (string, error) {
	r, err := New(Options{Width: width})
	if err != nil {
		return text, err
	}
	defer r.Close()
	return r.Render(text)
}

// trimRight removes the padding glamour adds to the end of every line.
func trimRight(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
