// Package config manages persisted application settings.
//
// Settings live in a single JSON document addressed by dotted key paths
// ("editor.tab_size", "keyboard.bindings.save"). Writes persist
// immediately, matching the original application's behavior. Files ending
// in .toml are supported transparently: they are converted to and from
// the internal JSON document on load and save.
package config
