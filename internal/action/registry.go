package action

import "sort"

// Registry maps action names to handler functions.
type Registry struct {
	handlers map[string]Func
}

// NewRegistry creates an empty action registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Func),
	}
}

// Register adds a handler for an action name, replacing any existing one.
func (r *Registry) Register(name string, fn Func) {
	r.handlers[name] = fn
}

// Unregister removes the handler for an action name.
func (r *Registry) Unregister(name string) {
	delete(r.handlers, name)
}

// Has reports whether a handler is registered for the action.
func (r *Registry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Dispatch invokes the handler for an action. The second return is false
// when no handler is registered.
func (r *Registry) Dispatch(name string) (Result, bool) {
	fn, ok := r.handlers[name]
	if !ok {
		return Result{}, false
	}
	return fn(), true
}

// Actions returns all registered action names, sorted.
func (r *Registry) Actions() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
