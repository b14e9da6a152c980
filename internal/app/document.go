package app

import (
	"fmt"

	"github.com/scribetui/scribe/internal/edit"
)

// Text returns the document content.
func (a *App) Text() string { return a.text }

// SetText replaces the document content and clears the selection and
// match state.
func (a *App) SetText(text string) {
	a.text = text
	a.dirty = true
	a.ClearSelection()
	a.matches = nil
	if a.cursor > len(text) {
		a.cursor = len(text)
	}
}

// Dirty reports whether the document has unsaved changes.
func (a *App) Dirty() bool { return a.dirty }

// Cursor returns the cursor byte offset.
func (a *App) Cursor() int { return a.cursor }

// SetCursor moves the cursor, clamped to the document bounds.
func (a *App) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(a.text) {
		pos = len(a.text)
	}
	a.cursor = pos
}

// Select sets the selection to the byte range [start, end).
func (a *App) Select(start, end int) {
	if start > end {
		start, end = end, start
	}
	a.selStart, a.selEnd = start, end
	a.selActive = true
}

// Selection returns the selected range, or ok=false when nothing is
// selected.
func (a *App) Selection() (start, end int, ok bool) {
	return a.selStart, a.selEnd, a.selActive
}

// ClearSelection drops the selection.
func (a *App) ClearSelection() {
	a.selStart, a.selEnd, a.selActive = 0, 0, false
}

// CutSelection removes the selected text into the clipboard.
func (a *App) CutSelection() (string, error) {
	if !a.selActive {
		return "", ErrNoSelection
	}

	newText, removed := a.engine.Cut(a.text, a.selStart, a.selEnd)
	if removed == "" && a.selStart != a.selEnd {
		return "", fmt.Errorf("cut [%d, %d): selection out of range", a.selStart, a.selEnd)
	}

	a.text = newText
	a.dirty = true
	a.cursor = a.selStart
	a.ClearSelection()
	return removed, nil
}

// CopySelection copies the selected text into the clipboard without
// changing the document.
func (a *App) CopySelection() (string, error) {
	if !a.selActive {
		return "", ErrNoSelection
	}

	copied := a.engine.Copy(a.text, a.selStart, a.selEnd)
	if copied == "" && a.selStart != a.selEnd {
		return "", fmt.Errorf("copy [%d, %d): selection out of range", a.selStart, a.selEnd)
	}
	return copied, nil
}

// PasteClipboard inserts the clipboard at the cursor and advances the
// cursor past the inserted text.
func (a *App) PasteClipboard() {
	inserted := a.engine.Clipboard()
	a.text = a.engine.Paste(a.text, a.cursor)
	a.cursor += len(inserted)
	if inserted != "" {
		a.dirty = true
	}
}

// Find searches the whole document, remembering the matches for
// NextMatch.
func (a *App) Find(query string) ([]edit.Span, error) {
	spans, err := a.engine.Find(a.text, query, 0)
	if err != nil {
		return nil, err
	}
	a.matches = spans
	a.matchIdx = -1
	return spans, nil
}

// NextMatch advances to the next match from the last Find, wrapping at
// the end. It returns ok=false when there are no matches.
func (a *App) NextMatch() (edit.Span, bool) {
	if len(a.matches) == 0 {
		return edit.Span{}, false
	}
	a.matchIdx = (a.matchIdx + 1) % len(a.matches)
	span := a.matches[a.matchIdx]
	a.cursor = span.Start
	a.Select(span.Start, span.End)
	return span, true
}

// ReplaceNext replaces the first match at or after the cursor. It
// returns the replacement count (0 or 1).
func (a *App) ReplaceNext(query, replacement string) (int, error) {
	newText, n, err := a.engine.Replace(a.text, query, replacement, a.cursor, false)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		a.text = newText
		a.dirty = true
		a.matches = nil
	}
	return n, nil
}

// ReplaceAll replaces every match in the document.
func (a *App) ReplaceAll(query, replacement string) (int, error) {
	newText, n, err := a.engine.Replace(a.text, query, replacement, 0, true)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		a.text = newText
		a.dirty = true
		a.matches = nil
	}
	return n, nil
}

// NewDocument resets to an empty, untracked document.
func (a *App) NewDocument() {
	a.text = ""
	a.dirty = false
	a.cursor = 0
	a.ClearSelection()
	a.matches = nil
}

// OpenDocument loads a file into the document.
func (a *App) OpenDocument(path string) error {
	content, err := a.files.Open(path)
	if err != nil {
		return NewOperationError("open", path, err)
	}

	a.text = content
	a.dirty = false
	a.cursor = 0
	a.ClearSelection()
	a.matches = nil
	return nil
}

// SaveDocument writes the document to its current file.
func (a *App) SaveDocument() error {
	if a.files.Current() == "" {
		return ErrNoDocument
	}
	if err := a.files.Save(a.text); err != nil {
		return NewOperationError("save", a.files.Current(), err)
	}
	a.dirty = false
	return nil
}

// SaveDocumentAs writes the document to a new file, which becomes
// current.
func (a *App) SaveDocumentAs(name string) error {
	if err := a.files.SaveAs(name, a.text); err != nil {
		return NewOperationError("save", name, err)
	}
	a.dirty = false
	return nil
}

// ExportDocument writes the document to name in the given format and
// returns the path written.
func (a *App) ExportDocument(name, format string) (string, error) {
	path, err := a.files.Export(name, a.text, format)
	if err != nil {
		return "", NewOperationError("export", name, err)
	}
	return path, nil
}
