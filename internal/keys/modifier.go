package keys

import "strings"

// Modifier is a single co-pressed qualifier key.
type Modifier uint8

const (
	Ctrl Modifier = 1 << iota
	Alt
	Shift
	Super
)

// allModifiers lists modifiers in display order.
var allModifiers = []Modifier{Ctrl, Alt, Shift, Super}

// String returns the long display name ("Ctrl", "Alt", "Shift", "Super").
func (m Modifier) String() string {
	switch m {
	case Ctrl:
		return "Ctrl"
	case Alt:
		return "Alt"
	case Shift:
		return "Shift"
	case Super:
		return "Super"
	default:
		return ""
	}
}

// Short returns the compressed code used by the shortened-modifier tier.
func (m Modifier) Short() string {
	switch m {
	case Ctrl:
		return "^C"
	case Alt:
		return "^A"
	case Super:
		return "^Su"
	case Shift:
		return "^Sh"
	default:
		return ""
	}
}

// ModifierSet is an immutable set of modifiers.
type ModifierSet uint8

// NoModifiers is the empty set.
const NoModifiers ModifierSet = 0

// Mods builds a set from individual modifiers.
func Mods(mods ...Modifier) ModifierSet {
	var s ModifierSet
	for _, m := range mods {
		s |= ModifierSet(m)
	}
	return s
}

// Has reports whether m is in the set.
func (s ModifierSet) Has(m Modifier) bool {
	return s&ModifierSet(m) != 0
}

// IsEmpty reports whether the set contains no modifiers.
func (s ModifierSet) IsEmpty() bool {
	return s == NoModifiers
}

// Intersect returns the modifiers present in both sets.
func (s ModifierSet) Intersect(o ModifierSet) ModifierSet {
	return s & o
}

// Union returns the modifiers present in either set.
func (s ModifierSet) Union(o ModifierSet) ModifierSet {
	return s | o
}

// Without returns s with every modifier of o removed.
func (s ModifierSet) Without(o ModifierSet) ModifierSet {
	return s &^ o
}

// Contains reports whether every modifier of o is also in s.
func (s ModifierSet) Contains(o ModifierSet) bool {
	return s&o == o
}

// List returns the modifiers in display order.
func (s ModifierSet) List() []Modifier {
	var out []Modifier
	for _, m := range allModifiers {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the number of modifiers in the set.
func (s ModifierSet) Len() int {
	return len(s.List())
}

// String joins the long names with "-", e.g. "Ctrl-Alt".
func (s ModifierSet) String() string {
	return s.join(Modifier.String, "-")
}

// Short joins the compressed codes with "-", e.g. "^C-^A".
func (s ModifierSet) Short() string {
	return s.join(Modifier.Short, "-")
}

func (s ModifierSet) join(name func(Modifier) string, sep string) string {
	mods := s.List()
	parts := make([]string, 0, len(mods))
	for _, m := range mods {
		parts = append(parts, name(m))
	}
	return strings.Join(parts, sep)
}

// modifierNames maps lowercase key-string prefixes to modifiers.
var modifierNames = map[string]Modifier{
	"ctrl":  Ctrl,
	"alt":   Alt,
	"shift": Shift,
	"super": Super,
}
