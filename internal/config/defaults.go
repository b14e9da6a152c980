package config

import (
	"os"
	"path/filepath"

	"github.com/tidwall/sjson"
)

// defaultDocument is the factory configuration. file.default_directory is
// filled in at load time with the user's home directory.
const defaultDocument = `{
  "app": {
    "name": "Scribe",
    "version": "1.0.0",
    "theme": "dark",
    "zoom_level": 1.0
  },
  "ui": {
    "sidebar_visible": true,
    "status_bar_visible": true,
    "sidebar_width": 30,
    "main_panel_min_width": 40,
    "status_bar_height": 1,
    "menu_bar_height": 1
  },
  "editor": {
    "tab_size": 4,
    "use_spaces": true,
    "word_wrap": true,
    "show_line_numbers": true,
    "highlight_current_line": true,
    "auto_indent": true,
    "auto_save": false,
    "auto_save_interval": 60
  },
  "file": {
    "recent_files": [],
    "max_recent_files": 10,
    "default_directory": ""
  },
  "search": {
    "case_sensitive": false,
    "whole_word": false,
    "use_regex": false
  },
  "keyboard": {
    "bindings": {
      "quit": "q",
      "toggle_help": "f1",
      "toggle_sidebar": "f2",
      "command_palette": "f3",
      "save": "ctrl+s",
      "save_as": "ctrl+shift+s",
      "open": "ctrl+o",
      "new": "ctrl+n",
      "cut": "ctrl+x",
      "copy": "ctrl+c",
      "paste": "ctrl+v",
      "find": "ctrl+f",
      "replace": "ctrl+h",
      "zoom_in": "ctrl++",
      "zoom_out": "ctrl+-",
      "reset_zoom": "ctrl+0"
    }
  }
}`

// newDefaultDocument builds the default document with environment-derived
// values filled in.
func newDefaultDocument() []byte {
	doc := []byte(defaultDocument)

	home, err := os.UserHomeDir()
	if err != nil {
		return doc
	}

	doc, err = sjson.SetBytes(doc, "file.default_directory", home)
	if err != nil {
		return []byte(defaultDocument)
	}
	return doc
}

// DefaultPath returns the default configuration file location,
// ~/.scribe/config.json, creating the directory if needed.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".scribe")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.json"), nil
}
