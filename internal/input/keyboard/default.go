package keyboard

// DefaultBindings returns the built-in binding set. The registry does not
// load these implicitly; pass them to New so the default table stays an
// explicit, testable input.
func DefaultBindings() []Binding {
	return []Binding{
		{Key: "q", Action: "quit", Description: "Quit the application"},
		{Key: "f1", Action: "toggle_help", Description: "Show help"},
		{Key: "f2", Action: "toggle_sidebar", Description: "Toggle sidebar"},
		{Key: "f3", Action: "command_palette", Description: "Open command palette"},
		{Key: "ctrl+s", Action: "save", Description: "Save file"},
		{Key: "ctrl+shift+s", Action: "save_as", Description: "Save file as"},
		{Key: "ctrl+o", Action: "open", Description: "Open file"},
		{Key: "ctrl+n", Action: "new", Description: "New file"},
		{Key: "ctrl+x", Action: "cut", Description: "Cut"},
		{Key: "ctrl+c", Action: "copy", Description: "Copy"},
		{Key: "ctrl+v", Action: "paste", Description: "Paste"},
		{Key: "ctrl+f", Action: "find", Description: "Find"},
		{Key: "ctrl+h", Action: "replace", Description: "Replace"},
		{Key: "ctrl++", Action: "zoom_in", Description: "Zoom in"},
		{Key: "ctrl+-", Action: "zoom_out", Description: "Zoom out"},
		{Key: "ctrl+0", Action: "reset_zoom", Description: "Reset zoom"},
	}
}

// Category groups actions for help and palette displays.
type Category struct {
	Name    string
	Actions []string
}

// Categories is the fixed category table. Order is display order.
var Categories = []Category{
	{Name: "File", Actions: []string{"new", "open", "save", "save_as", "quit"}},
	{Name: "Edit", Actions: []string{"cut", "copy", "paste", "find", "replace"}},
	{Name: "View", Actions: []string{"toggle_sidebar", "toggle_help", "zoom_in", "zoom_out", "reset_zoom"}},
	{Name: "Tools", Actions: []string{"command_palette"}},
}
