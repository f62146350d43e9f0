package keys

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidKey is returned when a key string cannot be parsed.
var ErrInvalidKey = errors.New("invalid key")

var namedKeys = map[string]BareKey{
	"enter":       Enter,
	"return":      Enter,
	"esc":         Esc,
	"escape":      Esc,
	"backspace":   Backspace,
	"tab":         Tab,
	"delete":      Delete,
	"del":         Delete,
	"insert":      Insert,
	"ins":         Insert,
	"home":        Home,
	"end":         End,
	"pgup":        PageUp,
	"pageup":      PageUp,
	"pgdown":      PageDown,
	"pgdn":        PageDown,
	"pagedown":    PageDown,
	"left":        Left,
	"down":        Down,
	"up":          Up,
	"right":       Right,
	"space":       Space,
	"capslock":    Named(KindCapsLock),
	"scrolllock":  Named(KindScrollLock),
	"numlock":     Named(KindNumLock),
	"printscreen": Named(KindPrintScreen),
	"pause":       Named(KindPause),
	"menu":        Named(KindMenu),
}

// Parse reads a keystroke in the "ctrl+alt+a" form used by key.WithKeys.
// Modifier names and named keys are case-insensitive; a single character
// is taken literally, so "A" and "a" are different keys. The key must read
// back unchanged from the terminal key press it describes, which rules out
// control characters such as a literal tab.
func Parse(s string) (KeyBinding, error) {
	if s == "" {
		return KeyBinding{}, fmt.Errorf("%w: empty", ErrInvalidKey)
	}

	var mods ModifierSet
	rest := s
	for {
		i := strings.IndexByte(rest, '+')
		// A trailing "+" (or a lone one) is the key itself.
		if i <= 0 || i == len(rest)-1 {
			break
		}
		name := strings.ToLower(rest[:i])
		m, ok := modifierNames[name]
		if !ok {
			return KeyBinding{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidKey, rest[:i], s)
		}
		mods = mods.Union(Mods(m))
		rest = rest[i+1:]
	}

	bare, err := parseBare(rest)
	if err != nil {
		return KeyBinding{}, fmt.Errorf("%w: %q", err, s)
	}

	k := KeyBinding{Key: bare, Modifiers: mods}
	if got, ok := FromKeyPress(k.KeyPress()); !ok || got != k {
		return KeyBinding{}, fmt.Errorf("%w: no key press for %q", ErrInvalidKey, s)
	}
	return k, nil
}

// MustParse is like Parse but panics on error. Intended for static tables.
func MustParse(s string) KeyBinding {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

func parseBare(s string) (BareKey, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			return BareKey{}, ErrInvalidKey
		}
		return Char(r), nil
	}

	lower := strings.ToLower(s)
	if b, ok := namedKeys[lower]; ok {
		return b, nil
	}

	if strings.HasPrefix(lower, "f") {
		n, err := strconv.Atoi(lower[1:])
		if err == nil && n >= 1 && n <= 12 {
			return F(n), nil
		}
	}

	return BareKey{}, ErrInvalidKey
}
