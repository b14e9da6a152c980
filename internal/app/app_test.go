package app

import (
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/scribetui/scribe/internal/action"
	"github.com/scribetui/scribe/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg, err := config.Open(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("config.Open failed: %v", err)
	}
	return New(cfg, WithLogger(NullLogger))
}

func TestAppDefaultsFromConfig(t *testing.T) {
	a := newTestApp(t)

	opts := a.Engine().Options()
	if opts.CaseSensitive || opts.WholeWord || opts.UseRegex {
		t.Errorf("engine options = %+v, want all false", opts)
	}
	if a.Keys().Len() != 16 {
		t.Errorf("Keys().Len() = %d, want 16", a.Keys().Len())
	}
	if !a.Views().PanelVisible("sidebar") {
		t.Error("sidebar should start visible")
	}
}

func TestAppBindingOverride(t *testing.T) {
	cfg, err := config.Open(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("config.Open failed: %v", err)
	}
	if err := cfg.Set("keyboard.bindings.save", "ctrl+w"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	a := New(cfg, WithLogger(NullLogger))

	b, ok := a.Keys().ForAction("save")
	if !ok {
		t.Fatal("save should stay bound")
	}
	if b.Key != "ctrl+w" {
		t.Errorf("save bound to %q, want ctrl+w", b.Key)
	}
	if _, ok := a.Keys().Get("ctrl+s"); ok {
		t.Error("old save key should be unbound after override")
	}
}

func TestAppHandleKeyQuit(t *testing.T) {
	a := newTestApp(t)

	res := a.HandleKey("q")
	if res.Status != action.StatusQuit {
		t.Errorf("HandleKey(q).Status = %v, want StatusQuit", res.Status)
	}
}

func TestAppHandleKeyUnbound(t *testing.T) {
	a := newTestApp(t)

	res := a.HandleKey("ctrl+alt+delete")
	if res.Status != action.StatusNoOp {
		t.Errorf("unbound key Status = %v, want StatusNoOp", res.Status)
	}
}

func TestAppHandleKeyNormalizes(t *testing.T) {
	a := newTestApp(t)

	res := a.HandleKey("SHIFT+CTRL+S")
	if res.Status != action.StatusOK {
		t.Errorf("save_as via unnormalized combo Status = %v, want StatusOK", res.Status)
	}
	if !a.Views().PanelVisible("save_as") {
		t.Error("save_as panel should open")
	}
}

func TestAppHandleEvent(t *testing.T) {
	a := newTestApp(t)

	ev := tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone)
	res := a.HandleEvent(ev)
	if res.Status != action.StatusOK {
		t.Errorf("HandleEvent(F2).Status = %v, want StatusOK", res.Status)
	}
	if a.Views().PanelVisible("sidebar") {
		t.Error("F2 should hide the sidebar")
	}
}

func TestAppZoomActions(t *testing.T) {
	a := newTestApp(t)

	a.HandleKey("ctrl++")
	if got := a.Views().Zoom(); got < 1.09 || got > 1.11 {
		t.Errorf("zoom after zoom_in = %v, want 1.1", got)
	}

	a.HandleKey("ctrl+0")
	if got := a.Views().Zoom(); got < 0.99 || got > 1.01 {
		t.Errorf("zoom after reset = %v, want 1.0", got)
	}
}

func TestAppClipboardActions(t *testing.T) {
	a := newTestApp(t)
	a.SetText("hello world")

	// Cut with no selection is a no-op.
	res := a.HandleKey("ctrl+x")
	if res.Status != action.StatusNoOp {
		t.Errorf("cut without selection Status = %v, want StatusNoOp", res.Status)
	}

	a.Select(0, 5)
	res = a.HandleKey("ctrl+x")
	if res.Status != action.StatusOK {
		t.Errorf("cut Status = %v, want StatusOK", res.Status)
	}
	if a.Text() != " world" {
		t.Errorf("text after cut = %q, want %q", a.Text(), " world")
	}
	if a.Engine().Clipboard() != "hello" {
		t.Errorf("clipboard = %q, want %q", a.Engine().Clipboard(), "hello")
	}

	a.SetCursor(len(a.Text()))
	res = a.HandleKey("ctrl+v")
	if res.Status != action.StatusOK {
		t.Errorf("paste Status = %v, want StatusOK", res.Status)
	}
	if a.Text() != " worldhello" {
		t.Errorf("text after paste = %q, want %q", a.Text(), " worldhello")
	}
}

func TestAppPasteEmptyClipboard(t *testing.T) {
	a := newTestApp(t)
	a.SetText("abc")

	res := a.HandleKey("ctrl+v")
	if res.Status != action.StatusNoOp {
		t.Errorf("paste with empty clipboard Status = %v, want StatusNoOp", res.Status)
	}
	if a.Text() != "abc" {
		t.Errorf("text = %q, want unchanged", a.Text())
	}
}

func TestAppSaveWithoutFile(t *testing.T) {
	a := newTestApp(t)
	a.SetText("content")

	res := a.HandleKey("ctrl+s")
	if res.Status != action.StatusError {
		t.Errorf("save without file Status = %v, want StatusError", res.Status)
	}
}

func TestAppPaletteContents(t *testing.T) {
	a := newTestApp(t)

	cmds := a.Palette().Commands()
	if len(cmds) != 16 {
		t.Fatalf("len(palette commands) = %d, want 16", len(cmds))
	}

	results := a.Palette().Search("save", 0)
	if len(results) < 2 {
		t.Errorf("palette search for save matched %d commands, want at least 2", len(results))
	}
	for _, r := range results {
		if r.Command.ID == "save" && r.Command.Binding != "Ctrl+S" {
			t.Errorf("save binding display = %q, want Ctrl+S", r.Command.Binding)
		}
	}
}

func TestAppClosePersistsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := config.Open(path)
	if err != nil {
		t.Fatalf("config.Open failed: %v", err)
	}

	a := New(cfg, WithLogger(NullLogger))
	a.HandleKey("ctrl++")
	if err := a.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := config.Open(path)
	if err != nil {
		t.Fatalf("reopening config failed: %v", err)
	}
	if got := reopened.GetFloat("app.zoom_level", 0); got < 1.09 || got > 1.11 {
		t.Errorf("persisted zoom = %v, want 1.1", got)
	}
}
