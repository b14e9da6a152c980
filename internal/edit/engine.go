package edit

// Engine performs search, replace, and clipboard operations over text
// buffers. Create one per editing session; the zero value is not usable,
// use New.
type Engine struct {
	opts        Options
	lastSearch  string
	lastReplace string
	clipboard   string
}

// New creates an engine with default options.
func New() *Engine {
	return &Engine{opts: DefaultOptions()}
}

// NewWithOptions creates an engine with the given options.
func NewWithOptions(opts Options) *Engine {
	return &Engine{opts: opts}
}

// SetOptions replaces the current search options.
func (e *Engine) SetOptions(opts Options) {
	e.opts = opts
}

// Options returns the current search options.
func (e *Engine) Options() Options {
	return e.opts
}

// LastSearch returns the most recent search query.
func (e *Engine) LastSearch() string {
	return e.lastSearch
}

// LastReplace returns the most recent replacement string.
func (e *Engine) LastReplace() string {
	return e.lastReplace
}

// Clipboard returns the current clipboard content.
func (e *Engine) Clipboard() string {
	return e.clipboard
}

// SetClipboard replaces the clipboard content.
func (e *Engine) SetClipboard(text string) {
	e.clipboard = text
}

// Cut removes text[start:end] and stores it as the clipboard content.
// It returns the remaining text and the removed text. Out-of-range
// offsets leave the input unchanged and return an empty removed string;
// callers detect failure by comparing output to input.
func (e *Engine) Cut(text string, start, end int) (string, string) {
	if start < 0 || end > len(text) || start > end {
		return text, ""
	}

	removed := text[start:end]
	e.clipboard = removed
	return text[:start] + text[end:], removed
}

// Copy stores text[start:end] as the clipboard content and returns it.
// Out-of-range offsets return an empty string and leave the clipboard
// untouched.
func (e *Engine) Copy(text string, start, end int) string {
	if start < 0 || end > len(text) || start > end {
		return ""
	}

	copied := text[start:end]
	e.clipboard = copied
	return copied
}

// Paste inserts the clipboard content at position. An out-of-range
// position returns the input unchanged.
func (e *Engine) Paste(text string, position int) string {
	if position < 0 || position > len(text) {
		return text
	}

	return text[:position] + e.clipboard + text[position:]
}
