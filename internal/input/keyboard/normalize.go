package keyboard

import (
	"sort"
	"strings"
)

// modifierDisplay maps known modifier tokens to their title-cased display
// form. Unrecognized tokens are rendered upper-case as-is.
var modifierDisplay = map[string]string{
	"ctrl":  "Ctrl",
	"alt":   "Alt",
	"shift": "Shift",
	"meta":  "Meta",
	"cmd":   "Cmd",
	"super": "Super",
}

// Normalize canonicalizes a key combination: lowercase, modifier tokens
// (all but the last) sorted ascending, rejoined with "+". Token names are
// not validated.
func Normalize(combo string) string {
	combo = strings.ToLower(combo)

	parts := strings.Split(combo, "+")
	if len(parts) <= 1 {
		return combo
	}

	mods := parts[:len(parts)-1]
	sort.Strings(mods)

	return strings.Join(append(mods, parts[len(parts)-1]), "+")
}

// Display returns a display-friendly form of a key combination, e.g.
// "ctrl+s" becomes "Ctrl+S". The combo is normalized first; known
// modifier tokens are title-cased and everything else is upper-cased.
func Display(combo string) string {
	parts := strings.Split(Normalize(combo), "+")

	for i, part := range parts {
		if d, ok := modifierDisplay[part]; ok {
			parts[i] = d
		} else {
			parts[i] = strings.ToUpper(part)
		}
	}

	return strings.Join(parts, "+")
}
