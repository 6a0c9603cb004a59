package hotkey

import (
	"fmt"
	"slices"
	"strings"
)

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"shift":   "shift",
	"alt":     "alt",
	"option":  "alt",
	"cmd":     "cmd",
	"command": "cmd",
	"meta":    "cmd",
	"super":   "cmd",
}

// Combo is a key pressed together with zero or more modifiers
type Combo struct {
	Key       string
	Modifiers []string
}

// Parse reads combos written like "ctrl+shift+d"
func Parse(s string) (Combo, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return Combo{}, fmt.Errorf("hotkey: %q has no key", s)
	}

	key := strings.TrimSpace(parts[len(parts)-1])
	if _, isMod := modifierAliases[key]; isMod {
		return Combo{}, fmt.Errorf("hotkey: %q ends with a modifier", s)
	}

	var mods []string
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierAliases[strings.TrimSpace(p)]
		if !ok {
			return Combo{}, fmt.Errorf("hotkey: %q: unknown modifier %q", s, p)
		}
		if !slices.Contains(mods, mod) {
			mods = append(mods, mod)
		}
	}

	return Combo{Key: key, Modifiers: mods}, nil
}

// Keys lists the combo in the order gohook expects, key first
func (c Combo) Keys() []string {
	return append([]string{c.Key}, c.Modifiers...)
}

func (c Combo) String() string {
	return strings.Join(append(slices.Clone(c.Modifiers), c.Key), "+")
}
