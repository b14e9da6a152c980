// Package term translates terminal key events into the combo strings
// the key binding registry understands.
package term

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/scribetui/scribe/internal/input/keyboard"
)

// specialKeys maps tcell named keys to combo key names.
var specialKeys = map[tcell.Key]string{
	tcell.KeyEscape:     "esc",
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "backtab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pageup",
	tcell.KeyPgDn:       "pagedown",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyF1:         "f1",
	tcell.KeyF2:         "f2",
	tcell.KeyF3:         "f3",
	tcell.KeyF4:         "f4",
	tcell.KeyF5:         "f5",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
	tcell.KeyF9:         "f9",
	tcell.KeyF10:        "f10",
	tcell.KeyF11:        "f11",
	tcell.KeyF12:        "f12",
}

// Combo converts a key event to a normalized combo string such as
// "ctrl+s" or "alt+shift+f1". It returns "" for events with no combo
// representation.
func Combo(ev *tcell.EventKey) string {
	name, impliedCtrl := keyName(ev)
	if name == "" {
		return ""
	}

	mods := ev.Modifiers()
	if impliedCtrl {
		mods |= tcell.ModCtrl
	}

	var parts []string
	if mods&tcell.ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if mods&tcell.ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if mods&tcell.ModShift != 0 {
		parts = append(parts, "shift")
	}
	if mods&tcell.ModMeta != 0 {
		parts = append(parts, "meta")
	}
	parts = append(parts, name)

	return keyboard.Normalize(strings.Join(parts, "+"))
}

// keyName returns the base key name for an event and whether the key
// itself implies the ctrl modifier.
func keyName(ev *tcell.EventKey) (string, bool) {
	k := ev.Key()

	if name, ok := specialKeys[k]; ok {
		return name, false
	}

	// Control characters arrive as dedicated keys.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return string(rune('a' + k - tcell.KeyCtrlA)), true
	}
	if k == tcell.KeyCtrlSpace {
		return "space", true
	}

	if k == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "space", false
		}
		return string(unicode.ToLower(r)), false
	}

	return "", false
}
