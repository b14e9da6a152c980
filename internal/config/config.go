package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Config holds the settings document and its backing file path.
type Config struct {
	mu   sync.RWMutex
	path string
	doc  []byte
}

// Open loads the configuration from path. A missing file initializes the
// defaults and writes them out; an unreadable or malformed file falls
// back to the defaults without persisting, so the broken file is not
// clobbered.
func Open(path string) (*Config, error) {
	c := &Config{path: path, doc: newDefaultDocument()}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if saveErr := c.Save(); saveErr != nil {
			return nil, fmt.Errorf("writing default config: %w", saveErr)
		}
		return c, nil
	}
	if err != nil {
		return c, nil
	}

	doc, err := decode(path, data)
	if err != nil {
		return c, nil
	}

	c.doc = doc
	return c, nil
}

// decode parses file data into the internal JSON document, converting
// from TOML when the path calls for it.
func decode(path string, data []byte) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return json.Marshal(m)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing %s: invalid JSON", path)
	}
	return data, nil
}

// Save writes the document to the backing file.
func (c *Config) Save() error {
	c.mu.RLock()
	doc := c.doc
	path := c.path
	c.mu.RUnlock()

	data := doc
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var m map[string]any
		if err := json.Unmarshal(doc, &m); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		out, err := toml.Marshal(m)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		data = out
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Get returns the raw value at a dotted key path.
func (c *Config) Get(key string) gjson.Result {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return gjson.GetBytes(c.doc, key)
}

// GetString returns the string at key, or def if the key is absent or
// not a string.
func (c *Config) GetString(key, def string) string {
	v := c.Get(key)
	if v.Type != gjson.String {
		return def
	}
	return v.String()
}

// GetBool returns the boolean at key, or def if absent or not a boolean.
func (c *Config) GetBool(key string, def bool) bool {
	v := c.Get(key)
	if !v.IsBool() {
		return def
	}
	return v.Bool()
}

// GetInt returns the integer at key, or def if absent or not a number.
func (c *Config) GetInt(key string, def int) int {
	v := c.Get(key)
	if v.Type != gjson.Number {
		return def
	}
	return int(v.Int())
}

// GetFloat returns the float at key, or def if absent or not a number.
func (c *Config) GetFloat(key string, def float64) float64 {
	v := c.Get(key)
	if v.Type != gjson.Number {
		return def
	}
	return v.Float()
}

// StringMap returns the object at key as a string-to-string map. Missing
// keys and non-object values return an empty map.
func (c *Config) StringMap(key string) map[string]string {
	v := c.Get(key)

	result := make(map[string]string)
	if !v.IsObject() {
		return result
	}

	v.ForEach(func(k, val gjson.Result) bool {
		result[k.String()] = val.String()
		return true
	})
	return result
}

// Set stores a value at a dotted key path and persists the document.
// Intermediate objects are created as needed.
func (c *Config) Set(key string, value any) error {
	c.mu.Lock()
	doc, err := sjson.SetBytes(c.doc, key, value)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("setting %s: %w", key, err)
	}
	c.doc = doc
	c.mu.Unlock()

	return c.Save()
}

// Delete removes the value at a dotted key path. Deleting an absent key
// is a no-op and does not persist.
func (c *Config) Delete(key string) error {
	c.mu.Lock()
	if !gjson.GetBytes(c.doc, key).Exists() {
		c.mu.Unlock()
		return nil
	}

	doc, err := sjson.DeleteBytes(c.doc, key)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	c.doc = doc
	c.mu.Unlock()

	return c.Save()
}

// Reset restores the default document and persists it.
func (c *Config) Reset() error {
	c.mu.Lock()
	c.doc = newDefaultDocument()
	c.mu.Unlock()

	return c.Save()
}

// Document returns a copy of the raw JSON document.
func (c *Config) Document() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]byte, len(c.doc))
	copy(out, c.doc)
	return out
}

// Path returns the backing file path.
func (c *Config) Path() string {
	return c.path
}
