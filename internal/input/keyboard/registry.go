package keyboard

import "sort"

// Registry maps canonical key combinations to bindings and indexes the
// primary key for each action. Access is single-threaded; callers in
// concurrent hosts must serialize externally.
type Registry struct {
	bindings   map[string]Binding
	actionKeys map[string]string
	evictStale bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithStaleEviction controls what happens when Add rebinds an action that
// already had a different key: when enabled the old key's binding is
// evicted; when disabled (the default) it stays reachable via Get but not
// via ForAction.
func WithStaleEviction(enable bool) Option {
	return func(r *Registry) {
		r.evictStale = enable
	}
}

// New creates a registry pre-loaded with the given bindings.
func New(defaults []Binding, opts ...Option) *Registry {
	r := &Registry{
		bindings:   make(map[string]Binding),
		actionKeys: make(map[string]string),
	}

	for _, opt := range opts {
		opt(r)
	}

	for _, b := range defaults {
		r.Add(b.Key, b.Action, b.Description, b.Handler)
	}

	return r
}

// Add inserts or overwrites the binding for a key combination and points
// the action index at it.
func (r *Registry) Add(key, action, description string, handler func()) {
	key = Normalize(key)

	if r.evictStale {
		if old, ok := r.actionKeys[action]; ok && old != key {
			delete(r.bindings, old)
		}
	}

	r.bindings[key] = Binding{
		Key:         key,
		Action:      action,
		Description: description,
		Handler:     handler,
	}
	r.actionKeys[action] = key
}

// Remove deletes the binding for a key combination. Removing an unbound
// key is a no-op. The action index entry is cleared only if it still
// points at this key.
func (r *Registry) Remove(key string) {
	key = Normalize(key)

	b, ok := r.bindings[key]
	if !ok {
		return
	}
	delete(r.bindings, key)

	if r.actionKeys[b.Action] == key {
		delete(r.actionKeys, b.Action)
	}
}

// Get returns the binding for a key combination.
func (r *Registry) Get(key string) (Binding, bool) {
	b, ok := r.bindings[Normalize(key)]
	return b, ok
}

// ForAction returns the binding for an action's primary key.
func (r *Registry) ForAction(action string) (Binding, bool) {
	key, ok := r.actionKeys[action]
	if !ok {
		return Binding{}, false
	}
	b, ok := r.bindings[key]
	return b, ok
}

// HandleKey resolves a key press to its action, invoking the binding's
// handler if one is set. The second return is false when the key is
// unbound.
func (r *Registry) HandleKey(key string) (string, bool) {
	b, ok := r.bindings[Normalize(key)]
	if !ok {
		return "", false
	}

	if b.Handler != nil {
		b.Handler()
	}

	return b.Action, true
}

// All returns every binding, sorted by canonical key so the order is
// stable for a given registry state.
func (r *Registry) All() []Binding {
	result := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		result = append(result, b)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// ByCategory returns bindings grouped by the fixed category table.
// Every category is present in the result; actions without a registered
// binding are skipped.
func (r *Registry) ByCategory() map[string][]Binding {
	result := make(map[string][]Binding, len(Categories))

	for _, cat := range Categories {
		result[cat.Name] = []Binding{}
		for _, action := range cat.Actions {
			if b, ok := r.ForAction(action); ok {
				result[cat.Name] = append(result[cat.Name], b)
			}
		}
	}

	return result
}

// Len returns the number of key bindings.
func (r *Registry) Len() int {
	return len(r.bindings)
}
