package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestComboRunes(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"plain letter", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), "q"},
		{"upper letter lowercased", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), "q"},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '0', tcell.ModNone), "0"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "alt+x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combo(tt.ev); got != tt.want {
				t.Errorf("Combo = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComboCtrlLetters(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		want string
	}{
		{tcell.KeyCtrlS, "ctrl+s"},
		{tcell.KeyCtrlF, "ctrl+f"},
		{tcell.KeyCtrlX, "ctrl+x"},
		{tcell.KeyCtrlV, "ctrl+v"},
	}

	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, 0, tcell.ModCtrl)
		if got := Combo(ev); got != tt.want {
			t.Errorf("Combo(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestComboCtrlImpliedByKey(t *testing.T) {
	// Some terminals deliver the control key without the modifier bit.
	ev := tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModNone)
	if got := Combo(ev); got != "ctrl+s" {
		t.Errorf("Combo = %q, want %q", got, "ctrl+s")
	}
}

func TestComboSpecialKeys(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		want string
	}{
		{tcell.KeyF1, "f1"},
		{tcell.KeyF12, "f12"},
		{tcell.KeyEscape, "esc"},
		{tcell.KeyEnter, "enter"},
		{tcell.KeyTab, "tab"},
		{tcell.KeyBackspace, "backspace"},
		{tcell.KeyBackspace2, "backspace"},
		{tcell.KeyUp, "up"},
		{tcell.KeyPgDn, "pagedown"},
		{tcell.KeyHome, "home"},
	}

	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, 0, tcell.ModNone)
		if got := Combo(ev); got != tt.want {
			t.Errorf("Combo(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestComboModifierOrderCanonical(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModShift|tcell.ModAlt)
	if got := Combo(ev); got != "alt+shift+f1" {
		t.Errorf("Combo = %q, want %q", got, "alt+shift+f1")
	}

	ev = tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModMeta|tcell.ModCtrl)
	if got := Combo(ev); got != "ctrl+meta+f2" {
		t.Errorf("Combo = %q, want %q", got, "ctrl+meta+f2")
	}
}

func TestComboCtrlShift(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl|tcell.ModShift)
	if got := Combo(ev); got != "ctrl+shift+s" {
		t.Errorf("Combo = %q, want %q", got, "ctrl+shift+s")
	}
}

func TestComboCtrlSpace(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModNone)
	if got := Combo(ev); got != "ctrl+space" {
		t.Errorf("Combo = %q, want %q", got, "ctrl+space")
	}
}
