package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/scribetui/scribe/internal/action"
	"github.com/scribetui/scribe/internal/config"
	"github.com/scribetui/scribe/internal/edit"
	"github.com/scribetui/scribe/internal/file"
	"github.com/scribetui/scribe/internal/input/keyboard"
	"github.com/scribetui/scribe/internal/input/palette"
	"github.com/scribetui/scribe/internal/input/term"
	"github.com/scribetui/scribe/internal/view"
)

// App owns the editor components and routes key input to actions.
type App struct {
	cfg     *config.Config
	logger  *Logger
	engine  *edit.Engine
	keys    *keyboard.Registry
	actions *action.Registry
	views   *view.State
	files   *file.Store
	palette *palette.Palette

	// document state
	text      string
	dirty     bool
	cursor    int
	selStart  int
	selEnd    int
	selActive bool
	matches   []edit.Span
	matchIdx  int
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the application logger.
func WithLogger(l *Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// New builds an App from configuration: search options, view state,
// file store, and key bindings all come from cfg, with binding
// overrides applied over the defaults.
func New(cfg *config.Config, opts ...Option) *App {
	a := &App{
		cfg:    cfg,
		logger: NewLogger(DefaultLoggerConfig()),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.engine = edit.NewWithOptions(edit.Options{
		CaseSensitive: cfg.GetBool("search.case_sensitive", false),
		WholeWord:     cfg.GetBool("search.whole_word", false),
		UseRegex:      cfg.GetBool("search.use_regex", false),
	})

	a.views = view.NewState()
	a.views.SetZoom(cfg.GetFloat("app.zoom_level", 1.0))
	if !cfg.GetBool("ui.sidebar_visible", true) {
		a.views.HidePanel("sidebar")
	}
	if !cfg.GetBool("ui.status_bar_visible", true) {
		a.views.HidePanel("status_bar")
	}

	a.files = file.NewStore(cfg.GetString("file.default_directory", ""))
	a.files.SetMaxRecent(cfg.GetInt("file.max_recent_files", file.DefaultMaxRecent))

	a.keys = keyboard.New(keyboard.DefaultBindings())
	for act, key := range cfg.StringMap("keyboard.bindings") {
		if b, ok := a.keys.ForAction(act); !ok || b.Key != keyboard.Normalize(key) {
			if !a.keys.Rebind(act, key) {
				a.logger.Warn("ignoring binding override for unknown action %q", act)
			}
		}
	}

	a.actions = action.NewRegistry()
	a.registerActions()
	a.palette = a.buildPalette()

	return a
}

// Engine returns the search and clipboard engine.
func (a *App) Engine() *edit.Engine { return a.engine }

// Keys returns the key binding registry.
func (a *App) Keys() *keyboard.Registry { return a.keys }

// Actions returns the action registry.
func (a *App) Actions() *action.Registry { return a.actions }

// Views returns the view state.
func (a *App) Views() *view.State { return a.views }

// Files returns the file store.
func (a *App) Files() *file.Store { return a.files }

// Palette returns the command palette.
func (a *App) Palette() *palette.Palette { return a.palette }

// Logger returns the application logger.
func (a *App) Logger() *Logger { return a.logger }

// HandleKey resolves a combo string through the binding registry and
// dispatches the bound action. Unbound keys are a no-op.
func (a *App) HandleKey(combo string) action.Result {
	name, ok := a.keys.HandleKey(combo)
	if !ok {
		a.logger.Debug("unbound key %q", combo)
		return action.NoOp(fmt.Sprintf("unbound key: %s", combo))
	}

	res, ok := a.actions.Dispatch(name)
	if !ok {
		return action.Error(fmt.Errorf("%w: %s", ErrUnknownAction, name))
	}
	if res.Err != nil {
		a.logger.WithComponent("action").Error("%s: %v", name, res.Err)
	}
	return res
}

// HandleEvent translates a terminal key event and handles it.
func (a *App) HandleEvent(ev *tcell.EventKey) action.Result {
	combo := term.Combo(ev)
	if combo == "" {
		return action.NoOp("unrecognized key event")
	}
	return a.HandleKey(combo)
}

// Close persists session state back to the configuration file.
func (a *App) Close() error {
	if err := a.cfg.Set("app.zoom_level", a.views.Zoom()); err != nil {
		return fmt.Errorf("saving zoom level: %w", err)
	}
	if err := a.cfg.Set("file.recent_files", a.files.Recent()); err != nil {
		return fmt.Errorf("saving recent files: %w", err)
	}
	return nil
}

// registerActions binds every named action to its handler. The mapping
// is explicit so a missing handler is a visible gap, not a silent
// fallthrough.
func (a *App) registerActions() {
	handlers := map[string]action.Func{
		"quit": func() action.Result {
			return action.Quit()
		},
		"new": func() action.Result {
			a.NewDocument()
			return action.OK("new document")
		},
		"open": func() action.Result {
			a.views.ShowPanel("file_browser")
			return action.OK("file browser opened")
		},
		"save": func() action.Result {
			if err := a.SaveDocument(); err != nil {
				return action.Error(err)
			}
			return action.OK(fmt.Sprintf("saved %s", a.files.Current()))
		},
		"save_as": func() action.Result {
			a.views.ShowPanel("save_as")
			return action.OK("save as prompt opened")
		},
		"cut": func() action.Result {
			if _, err := a.CutSelection(); err != nil {
				return action.NoOp(err.Error())
			}
			return action.OK("cut selection")
		},
		"copy": func() action.Result {
			if _, err := a.CopySelection(); err != nil {
				return action.NoOp(err.Error())
			}
			return action.OK("copied selection")
		},
		"paste": func() action.Result {
			if a.engine.Clipboard() == "" {
				return action.NoOp("clipboard empty")
			}
			a.PasteClipboard()
			return action.OK("pasted")
		},
		"find": func() action.Result {
			a.views.ShowPanel("search")
			return action.OK("search panel opened")
		},
		"replace": func() action.Result {
			a.views.ShowPanel("replace")
			return action.OK("replace panel opened")
		},
		"toggle_help": func() action.Result {
			if a.views.ToggleHelp() {
				return action.OK("help shown")
			}
			return action.OK("help hidden")
		},
		"toggle_sidebar": func() action.Result {
			if a.views.ToggleSidebar() {
				return action.OK("sidebar shown")
			}
			return action.OK("sidebar hidden")
		},
		"command_palette": func() action.Result {
			if a.views.TogglePanel("palette") {
				return action.OK("palette opened")
			}
			return action.OK("palette closed")
		},
		"zoom_in": func() action.Result {
			return action.OK(fmt.Sprintf("zoom %.0f%%", a.views.ZoomIn()*100))
		},
		"zoom_out": func() action.Result {
			return action.OK(fmt.Sprintf("zoom %.0f%%", a.views.ZoomOut()*100))
		},
		"reset_zoom": func() action.Result {
			return action.OK(fmt.Sprintf("zoom %.0f%%", a.views.ResetZoom()*100))
		},
	}

	for name, fn := range handlers {
		a.actions.Register(name, fn)
	}
}

// buildPalette assembles palette commands from the binding table, in
// category order.
func (a *App) buildPalette() *palette.Palette {
	p := palette.New(nil)
	for _, cat := range keyboard.Categories {
		for _, act := range cat.Actions {
			cmd := palette.Command{
				ID:       act,
				Title:    titleFor(act),
				Category: cat.Name,
			}
			if b, ok := a.keys.ForAction(act); ok {
				cmd.Binding = keyboard.Display(b.Key)
			}
			p.Add(cmd)
		}
	}
	return p
}

// paletteTitles maps action names to palette display titles.
var paletteTitles = map[string]string{
	"new":             "New File",
	"open":            "Open File",
	"save":            "Save File",
	"save_as":         "Save File As",
	"quit":            "Quit",
	"cut":             "Cut",
	"copy":            "Copy",
	"paste":           "Paste",
	"find":            "Find",
	"replace":         "Replace",
	"toggle_sidebar":  "Toggle Sidebar",
	"toggle_help":     "Toggle Help",
	"zoom_in":         "Zoom In",
	"zoom_out":        "Zoom Out",
	"reset_zoom":      "Reset Zoom",
	"command_palette": "Command Palette",
}

func titleFor(act string) string {
	if t, ok := paletteTitles[act]; ok {
		return t
	}
	return act
}
