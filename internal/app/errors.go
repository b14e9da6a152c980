// Package app wires the editor components together and coordinates
// key handling, actions, and document state.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNoDocument indicates no document is currently open.
	ErrNoDocument = errors.New("no document open")

	// ErrNoSelection indicates an operation that needs a selection.
	ErrNoSelection = errors.New("no selection")

	// ErrUnknownAction indicates a dispatch for an unregistered action.
	ErrUnknownAction = errors.New("unknown action")

	// ErrInitialization indicates a startup failure.
	ErrInitialization = errors.New("initialization failed")
)

// OperationError is an error from a named operation on a target.
type OperationError struct {
	Op     string // operation name ("save", "open", "export")
	Target string // target of the operation, usually a file path
	Err    error
}

// NewOperationError creates an OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
