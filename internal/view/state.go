// Package view tracks presentation state for the editor shell: zoom
// level, dark mode, and panel visibility. It holds state only; drawing
// belongs to the caller.
package view

import "math"

// Zoom bounds and step.
const (
	MinZoom  = 0.5
	MaxZoom  = 2.0
	ZoomStep = 0.1
)

// State holds the togglable view settings.
type State struct {
	zoom     float64
	darkMode bool
	panels   map[string]bool
}

// NewState returns view state at default zoom with the sidebar and
// status bar visible.
func NewState() *State {
	return &State{
		zoom: 1.0,
		panels: map[string]bool{
			"sidebar":    true,
			"status_bar": true,
			"help":       false,
		},
	}
}

// Zoom returns the current zoom level.
func (s *State) Zoom() float64 {
	return s.zoom
}

// SetZoom sets the zoom level, clamped to the allowed range.
func (s *State) SetZoom(level float64) float64 {
	s.zoom = clampZoom(level)
	return s.zoom
}

// ZoomIn raises the zoom level by one step up to the maximum. It
// returns the new level.
func (s *State) ZoomIn() float64 {
	return s.SetZoom(s.zoom + ZoomStep)
}

// ZoomOut lowers the zoom level by one step down to the minimum. It
// returns the new level.
func (s *State) ZoomOut() float64 {
	return s.SetZoom(s.zoom - ZoomStep)
}

// ResetZoom restores the default zoom level.
func (s *State) ResetZoom() float64 {
	s.zoom = 1.0
	return s.zoom
}

// DarkMode reports whether dark mode is on.
func (s *State) DarkMode() bool {
	return s.darkMode
}

// ToggleDarkMode flips dark mode and returns the new value.
func (s *State) ToggleDarkMode() bool {
	s.darkMode = !s.darkMode
	return s.darkMode
}

// ToggleSidebar flips sidebar visibility and returns the new value.
func (s *State) ToggleSidebar() bool {
	return s.TogglePanel("sidebar")
}

// ToggleStatusBar flips status bar visibility and returns the new value.
func (s *State) ToggleStatusBar() bool {
	return s.TogglePanel("status_bar")
}

// ToggleHelp flips help overlay visibility and returns the new value.
func (s *State) ToggleHelp() bool {
	return s.TogglePanel("help")
}

// ShowPanel marks a panel visible.
func (s *State) ShowPanel(name string) {
	s.panels[name] = true
}

// HidePanel marks a panel hidden.
func (s *State) HidePanel(name string) {
	s.panels[name] = false
}

// TogglePanel flips a panel's visibility and returns the new value.
// Unknown panels start hidden.
func (s *State) TogglePanel(name string) bool {
	s.panels[name] = !s.panels[name]
	return s.panels[name]
}

// PanelVisible reports whether a panel is visible.
func (s *State) PanelVisible(name string) bool {
	return s.panels[name]
}

// clampZoom bounds level to [MinZoom, MaxZoom] and rounds to the step
// grid so repeated steps stay on clean values.
func clampZoom(level float64) float64 {
	level = math.Round(level/ZoomStep) * ZoomStep
	if level < MinZoom {
		return MinZoom
	}
	if level > MaxZoom {
		return MaxZoom
	}
	return level
}
