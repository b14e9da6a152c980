// Package keyboard manages key-combination bindings for the editor shell.
//
// Key combinations are canonicalized before storage and lookup: the combo
// string is lowercased, its modifier tokens are sorted, and the tokens are
// rejoined with "+". Any spelling of the same logical combination
// ("Ctrl+Shift+S", "shift+ctrl+s") therefore resolves to one canonical
// key. Canonicalization does not validate token names.
//
// A Registry maps canonical keys to bindings and actions back to their
// primary key. It performs no I/O; default bindings are passed in at
// construction and persisted bindings are applied by the caller.
package keyboard
