// Package file provides the document store for the editor shell: open,
// save, create, delete, export, directory listing, and the recent-files
// list.
package file

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"time"
)

// Store errors.
var (
	// ErrNoCurrentFile indicates a save with no file open.
	ErrNoCurrentFile = errors.New("no current file")

	// ErrUnsupportedFormat indicates an unknown export format.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// DefaultMaxRecent is the default recent-files capacity.
const DefaultMaxRecent = 10

// Entry describes one item in a directory listing.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// Store tracks the current file, working directory, and recent files.
type Store struct {
	dir       string
	current   string
	recent    []string
	maxRecent int
}

// NewStore creates a store rooted at dir. An empty dir uses the process
// working directory.
func NewStore(dir string) *Store {
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	return &Store{
		dir:       dir,
		maxRecent: DefaultMaxRecent,
	}
}

// SetMaxRecent sets the recent-files capacity, trimming if needed.
func (s *Store) SetMaxRecent(n int) {
	s.maxRecent = n
	if n >= 0 && len(s.recent) > n {
		s.recent = s.recent[:n]
	}
}

// Dir returns the store's working directory.
func (s *Store) Dir() string {
	return s.dir
}

// Current returns the path of the current file, or "" if none is open.
func (s *Store) Current() string {
	return s.current
}

// Recent returns the recent files, most recent first.
func (s *Store) Recent() []string {
	out := make([]string, len(s.recent))
	copy(out, s.recent)
	return out
}

// Open reads a file, makes it current, and records it in the recent list.
// Relative names resolve against the store's working directory.
func (s *Store) Open(name string) (string, error) {
	path := s.resolve(name)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}

	s.current = path
	s.addRecent(path)
	return string(data), nil
}

// Save writes content to the current file.
func (s *Store) Save(content string) error {
	if s.current == "" {
		return ErrNoCurrentFile
	}

	if err := os.WriteFile(s.current, []byte(content), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", s.current, err)
	}
	return nil
}

// SaveAs writes content to a new file, which becomes current.
func (s *Store) SaveAs(name, content string) error {
	path := s.resolve(name)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	s.current = path
	s.addRecent(path)
	return nil
}

// Create writes a new file, creating parent directories as needed. The
// file becomes current.
func (s *Store) Create(name, content string) error {
	path := s.resolve(name)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	s.current = path
	s.addRecent(path)
	return nil
}

// Delete removes a file, clearing the current file and recent entry if
// they point at it.
func (s *Store) Delete(name string) error {
	path := s.resolve(name)

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting %s: %w", path, err)
	}

	if s.current == path {
		s.current = ""
	}
	for i, r := range s.recent {
		if r == path {
			s.recent = append(s.recent[:i], s.recent[i+1:]...)
			break
		}
	}
	return nil
}

// Export writes content to name in the given format ("txt", "md",
// "html"), appending the format extension if missing. It returns the
// path written.
func (s *Store) Export(name, content, format string) (string, error) {
	ext := "." + format
	if filepath.Ext(name) != ext {
		name += ext
	}
	path := s.resolve(name)

	var data string
	switch format {
	case "txt", "md":
		data = content
	case "html":
		data = fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>%s</title>
</head>
<body>
    <pre>%s</pre>
</body>
</html>
`, html.EscapeString(filepath.Base(path)), html.EscapeString(content))
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return "", fmt.Errorf("exporting %s: %w", path, err)
	}
	return path, nil
}

// List returns the entries of a directory. An empty dir lists the
// store's working directory.
func (s *Store) List(dir string) ([]Entry, error) {
	if dir == "" {
		dir = s.dir
	}

	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entry := Entry{
			Name:  item.Name(),
			Path:  filepath.Join(dir, item.Name()),
			IsDir: item.IsDir(),
		}
		if info, err := item.Info(); err == nil {
			if !entry.IsDir {
				entry.Size = info.Size()
			}
			entry.ModTime = info.ModTime()
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// addRecent moves path to the front of the recent list, trimming to
// capacity.
func (s *Store) addRecent(path string) {
	for i, r := range s.recent {
		if r == path {
			s.recent = append(s.recent[:i], s.recent[i+1:]...)
			break
		}
	}

	s.recent = append([]string{path}, s.recent...)
	if s.maxRecent >= 0 && len(s.recent) > s.maxRecent {
		s.recent = s.recent[:s.maxRecent]
	}
}

// resolve returns the absolute path for name, resolving relative names
// against the store's working directory.
func (s *Store) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}
