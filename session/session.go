// Package session keeps one document buffer and its selection in sync with an engine.
//
// An editor UI holds a Document per open buffer. Every call runs against the latest
// text and selection, so toolbar actions fired in quick succession never act on a
// stale snapshot.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rickchristie/markup"
	"github.com/rickchristie/markup/engine"
	"github.com/rickchristie/markup/offset"
)

// DefaultExportName is the file name used when exporting without an explicit path.
const DefaultExportName = "document.md"

// Selection is a selection as two offsets in the engine's unit.
// Anchor is where the selection started, Cursor is where it currently extends to.
type Selection struct {
	Anchor, Cursor int
}

// Active reports whether the selection covers a non-empty range.
func (s Selection) Active() bool {
	return s.Anchor != s.Cursor
}

// Ordered returns the selection bounds in ascending order (start, end).
func (s Selection) Ordered() (start, end int) {
	if s.Anchor <= s.Cursor {
		return s.Anchor, s.Cursor
	}
	return s.Cursor, s.Anchor
}

// Caret returns a collapsed selection at pos.
func Caret(pos int) Selection {
	return Selection{Anchor: pos, Cursor: pos}
}

// Document is a text buffer with a selection. It is safe for concurrent use.
type Document struct {
	mu   sync.Mutex
	eng  *engine.Engine
	text string
	sel  Selection
}

// New creates a document holding text with the caret at its end.
func New(eng *engine.Engine, text string) *Document {
	return &Document{
		eng:  eng,
		text: text,
		sel:  Caret(offset.Len(text, eng.Config().Unit)),
	}
}

// Text returns the current buffer.
func (d *Document) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// Selection returns the current selection.
func (d *Document) Selection() Selection {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sel
}

// Select sets the selection. Offsets are stored as given; the engine repairs
// out-of-range selections when an action runs.
func (d *Document) Select(anchor, cursor int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sel = Selection{Anchor: anchor, Cursor: cursor}
}

// SelectAll selects the whole buffer.
func (d *Document) SelectAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sel = Selection{Anchor: 0, Cursor: offset.Len(d.text, d.eng.Config().Unit)}
}

// Format applies action to the selection, replaces the buffer and collapses the
// selection to the returned caret.
func (d *Document) Format(ctx context.Context, action markup.Action) markup.Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	start, end := d.sel.Ordered()
	return d.commit(d.eng.ApplyFormat(ctx, d.text, start, end, action))
}

// InsertMath wraps the selection in math delimiters, or inserts the engine's formula
// placeholder when the selection is empty.
func (d *Document) InsertMath(ctx context.Context) markup.Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	start, end := d.sel.Ordered()
	return d.commit(d.eng.InsertMathFormula(ctx, d.text, start, end))
}

// Run dispatches a toolbar item: the math item inserts a formula, every other item
// applies its action.
func (d *Document) Run(ctx context.Context, item markup.ToolbarItem) markup.Result {
	if item.IsMath() {
		return d.InsertMath(ctx)
	}
	return d.Format(ctx, item.Action)
}

// Insert replaces the selection with s, the way typing does, and leaves the caret
// after the inserted text.
func (d *Document) Insert(s string) markup.Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	unit := d.eng.Config().Unit
	start, end := d.sel.Ordered()
	bs, be, _ := markup.NormalizeRange(d.text,
		offset.ToByte(d.text, start, unit),
		offset.ToByte(d.text, end, unit))

	edit := markup.Edit{Start: bs, End: be, Content: s, Caret: bs + len(s)}
	res := edit.Apply(d.text)
	res.NewCursorPosition = offset.FromByte(res.Text, res.NewCursorPosition, unit)
	return d.commit(res)
}

func (d *Document) commit(res markup.Result) markup.Result {
	d.text = res.Text
	d.sel = Caret(res.NewCursorPosition)
	return res
}

// Export writes the buffer as plain text to w.
func (d *Document) Export(w io.Writer) (int64, error) {
	n, err := io.Copy(w, strings.NewReader(d.Text()))
	if err != nil {
		return n, fmt.Errorf("failed to export document: %w", err)
	}
	return n, nil
}

// ExportFile writes the buffer to path, or to DefaultExportName when path is empty.
func (d *Document) ExportFile(path string) (string, error) {
	if path == "" {
		path = DefaultExportName
	}
	if err := os.WriteFile(path, []byte(d.Text()), 0o644); err != nil {
		return "", fmt.Errorf("failed to export document: %w", err)
	}
	return path, nil
}
