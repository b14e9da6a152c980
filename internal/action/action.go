// Package action provides an explicit action-name to handler mapping for
// the editor shell. Key bindings, menus, and the command palette all
// resolve to action identifiers; the registry maps each identifier to a
// callback registered at startup, so a missing handler is a detectable
// condition rather than a silent no-op.
package action

// Status indicates the outcome of a dispatched action.
type Status uint8

const (
	// StatusOK indicates successful execution.
	StatusOK Status = iota
	// StatusNoOp indicates the action had no effect.
	StatusNoOp
	// StatusError indicates an error occurred.
	StatusError
	// StatusQuit indicates the application should exit.
	StatusQuit
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result is the outcome of handling an action. Message is suitable for
// display in a status bar; Err carries the underlying failure when Status
// is StatusError.
type Result struct {
	Status  Status
	Message string
	Err     error
}

// OK returns a successful result with an optional status message.
func OK(message string) Result {
	return Result{Status: StatusOK, Message: message}
}

// NoOp returns a no-effect result with a status message.
func NoOp(message string) Result {
	return Result{Status: StatusNoOp, Message: message}
}

// Error returns an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Err: err}
}

// Quit returns a quit result.
func Quit() Result {
	return Result{Status: StatusQuit}
}

// Func handles a single action.
type Func func() Result
