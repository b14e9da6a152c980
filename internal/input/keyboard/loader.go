package keyboard

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// bindingConfig is the on-disk form of a binding.
type bindingConfig struct {
	Key         string `json:"key"`
	Action      string `json:"action"`
	Description string `json:"description"`
}

// LoadFile loads bindings from a JSON file containing an array of
// {key, action, description} objects.
func LoadFile(path string) ([]Binding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bindings file: %w", err)
	}
	defer f.Close()

	return LoadReader(f)
}

// LoadReader loads bindings from a reader.
func LoadReader(r io.Reader) ([]Binding, error) {
	var configs []bindingConfig
	if err := json.NewDecoder(r).Decode(&configs); err != nil {
		return nil, fmt.Errorf("decoding bindings: %w", err)
	}

	bindings := make([]Binding, 0, len(configs))
	for i, bc := range configs {
		if bc.Key == "" {
			return nil, fmt.Errorf("binding %d: empty key", i)
		}
		if bc.Action == "" {
			return nil, fmt.Errorf("binding %d (%s): empty action", i, bc.Key)
		}
		bindings = append(bindings, Binding{
			Key:         bc.Key,
			Action:      bc.Action,
			Description: bc.Description,
		})
	}

	return bindings, nil
}

// AddAll adds each binding to the registry.
func (r *Registry) AddAll(bindings []Binding) {
	for _, b := range bindings {
		r.Add(b.Key, b.Action, b.Description, b.Handler)
	}
}

// Rebind moves an action's primary binding to a new key, removing the old
// key first so no stale entry is left behind. It returns false if the
// action has no current binding.
func (r *Registry) Rebind(action, newKey string) bool {
	b, ok := r.ForAction(action)
	if !ok {
		return false
	}

	r.Remove(b.Key)
	r.Add(newKey, b.Action, b.Description, b.Handler)
	return true
}
