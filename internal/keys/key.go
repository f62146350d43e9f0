// Package keys models physical key bindings: a bare key plus a set of modifiers.
package keys

import (
	"fmt"
	"strconv"
)

// Kind identifies the bare key when it is not a printable character.
type Kind uint8

const (
	KindChar Kind = iota
	KindEnter
	KindEsc
	KindBackspace
	KindTab
	KindDelete
	KindInsert
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindLeft
	KindDown
	KindUp
	KindRight
	KindF
	KindCapsLock
	KindScrollLock
	KindNumLock
	KindPrintScreen
	KindPause
	KindMenu
)

// BareKey is a key identity without modifiers. Rune is set for KindChar,
// N (1..) for KindF.
type BareKey struct {
	Kind Kind
	Rune rune
	N    int
}

// Char returns the bare key for a printable character.
func Char(r rune) BareKey { return BareKey{Kind: KindChar, Rune: r} }

// F returns the bare key for function key n.
func F(n int) BareKey { return BareKey{Kind: KindF, N: n} }

// Named returns the bare key of a non-character kind.
func Named(k Kind) BareKey { return BareKey{Kind: k} }

var (
	Enter     = Named(KindEnter)
	Esc       = Named(KindEsc)
	Backspace = Named(KindBackspace)
	Tab       = Named(KindTab)
	Delete    = Named(KindDelete)
	Insert    = Named(KindInsert)
	Home      = Named(KindHome)
	End       = Named(KindEnd)
	PageUp    = Named(KindPageUp)
	PageDown  = Named(KindPageDown)
	Left      = Named(KindLeft)
	Down      = Named(KindDown)
	Up        = Named(KindUp)
	Right     = Named(KindRight)
	Space     = Char(' ')
)

// String returns the glyph shown to the user: arrows as arrow glyphs,
// named keys uppercased ("ENTER", "BACKSPACE"), characters as themselves.
func (b BareKey) String() string {
	switch b.Kind {
	case KindChar:
		if b.Rune == ' ' {
			return "SPACE"
		}
		return string(b.Rune)
	case KindEnter:
		return "ENTER"
	case KindEsc:
		return "ESC"
	case KindBackspace:
		return "BACKSPACE"
	case KindTab:
		return "TAB"
	case KindDelete:
		return "DEL"
	case KindInsert:
		return "INS"
	case KindHome:
		return "HOME"
	case KindEnd:
		return "END"
	case KindPageUp:
		return "PgUp"
	case KindPageDown:
		return "PgDn"
	case KindLeft:
		return "←"
	case KindDown:
		return "↓"
	case KindUp:
		return "↑"
	case KindRight:
		return "→"
	case KindF:
		return "F" + strconv.Itoa(b.N)
	case KindCapsLock:
		return "CAPSLOCK"
	case KindScrollLock:
		return "SCROLLLOCK"
	case KindNumLock:
		return "NUMLOCK"
	case KindPrintScreen:
		return "PRINTSCREEN"
	case KindPause:
		return "PAUSE"
	case KindMenu:
		return "MENU"
	default:
		return fmt.Sprintf("Kind(%d)", b.Kind)
	}
}

// KeyBinding is a bare key plus modifiers. It is a comparable value type;
// two bindings are equal when key and modifiers are equal.
type KeyBinding struct {
	Key       BareKey
	Modifiers ModifierSet
}

// New returns a binding for key with the given modifiers.
func New(key BareKey, mods ...Modifier) KeyBinding {
	return KeyBinding{Key: key, Modifiers: Mods(mods...)}
}

// WithCtrl returns a copy of k with Ctrl added.
func (k KeyBinding) WithCtrl() KeyBinding {
	k.Modifiers = k.Modifiers.Union(Mods(Ctrl))
	return k
}

// StripModifiers returns a copy of k without the modifiers in common.
// Modifiers absent from k are ignored.
func (k KeyBinding) StripModifiers(common ModifierSet) KeyBinding {
	k.Modifiers = k.Modifiers.Without(common)
	return k
}

// String is the canonical display form: "Ctrl-Alt a", "ENTER", "←".
func (k KeyBinding) String() string {
	if k.Modifiers.IsEmpty() {
		return k.Key.String()
	}
	return k.Modifiers.String() + " " + k.Key.String()
}

// ShortString compresses modifiers to their codes, e.g. "^C-^A a".
// Without modifiers it falls back to String.
func (k KeyBinding) ShortString() string {
	if k.Modifiers.IsEmpty() {
		return k.String()
	}
	return k.Modifiers.Short() + " " + k.Key.String()
}

// IsReturnToNormal reports whether k is one of the default keys that switch
// back to normal mode (Space, Enter, Esc). Modifiers are not considered.
func (k KeyBinding) IsReturnToNormal() bool {
	return k.Key == Space || k.Key == Enter || k.Key == Esc
}
