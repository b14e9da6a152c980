// Package edit provides the text search, replace, and clipboard engine
// for the editor shell.
//
// An Engine operates on plain string buffers supplied by the caller and
// returns modified buffers; it never touches the file system. All offsets
// are byte offsets into the original, untruncated text. The engine keeps
// a small amount of session state (last search, last replacement, current
// options, clipboard content) and is not safe for concurrent use;
// callers embedding it in concurrent hosts must serialize access
// externally.
package edit
