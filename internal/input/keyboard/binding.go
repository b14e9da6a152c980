package keyboard

import "fmt"

// Binding maps a canonical key combination to an action.
type Binding struct {
	// Key is the canonical key combination (e.g. "ctrl+s").
	Key string

	// Action is the action identifier the key resolves to (e.g. "save").
	Action string

	// Description documents the binding for help displays.
	Description string

	// Handler is an optional callback invoked when the key is handled.
	Handler func()
}

// String returns a display form like "ctrl+s: Save file".
func (b Binding) String() string {
	return fmt.Sprintf("%s: %s", b.Key, b.Description)
}
