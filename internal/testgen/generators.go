// Package testgen provides rapid generators for keys, modes and keybinding tables.
package testgen

import (
	"github.com/chatter/keybar/internal/keys"
	"github.com/chatter/keybar/internal/mode"
	"pgregory.net/rapid"
)

// KeyBindingOption transforms a KeyBinding generator.
type KeyBindingOption func(*rapid.Generator[keys.KeyBinding]) *rapid.Generator[keys.KeyBinding]

// printable are the characters drawn for character keys. Space is excluded
// so generated keys are never return-to-normal keys unless asked for.
var printable = []rune("abcdefghijklmnopqrstuvwxyz0123456789[]<>/?")

var namedKeys = []keys.BareKey{
	keys.Backspace, keys.Tab, keys.Delete, keys.Insert, keys.Home, keys.End,
	keys.PageUp, keys.PageDown, keys.Left, keys.Down, keys.Up, keys.Right,
}

// BareKey generates a character, named or function key. Never Space, Enter or Esc.
func BareKey() *rapid.Generator[keys.BareKey] {
	return rapid.Custom(func(t *rapid.T) keys.BareKey {
		switch rapid.IntRange(0, 2).Draw(t, "kind") {
		case 0:
			return keys.Char(rapid.SampledFrom(printable).Draw(t, "char"))
		case 1:
			return rapid.SampledFrom(namedKeys).Draw(t, "named")
		default:
			return keys.F(rapid.IntRange(1, 12).Draw(t, "f"))
		}
	})
}

// Modifiers generates any modifier set, including the empty one.
func Modifiers() *rapid.Generator[keys.ModifierSet] {
	return rapid.Custom(func(t *rapid.T) keys.ModifierSet {
		var mods []keys.Modifier
		for _, m := range []keys.Modifier{keys.Ctrl, keys.Alt, keys.Shift, keys.Super} {
			if rapid.Bool().Draw(t, m.String()) {
				mods = append(mods, m)
			}
		}
		return keys.Mods(mods...)
	})
}

// KeyBinding generates a key binding.
//
// By default, generates any BareKey with any modifiers.
// Options are transformers that modify the generator.
//
// Examples:
//
//	KeyBinding()                           // Ctrl-Shift F4
//	KeyBinding(WithCtrl)                   // Ctrl a, Ctrl-Alt ←
//	KeyBinding(WithoutModifiers)           // a, BACKSPACE
//	KeyBinding(WithoutModifiers, WithCtrl) // Ctrl a
func KeyBinding(opts ...KeyBindingOption) *rapid.Generator[keys.KeyBinding] {
	gen := rapid.Custom(func(t *rapid.T) keys.KeyBinding {
		return keys.KeyBinding{
			Key:       BareKey().Draw(t, "key"),
			Modifiers: Modifiers().Draw(t, "mods"),
		}
	})
	for _, opt := range opts {
		gen = opt(gen)
	}
	return gen
}

// WithCtrl adds Ctrl to the generated binding.
func WithCtrl(gen *rapid.Generator[keys.KeyBinding]) *rapid.Generator[keys.KeyBinding] {
	return rapid.Custom(func(t *rapid.T) keys.KeyBinding {
		return gen.Draw(t, "binding").WithCtrl()
	})
}

// WithoutModifiers clears the modifiers of the generated binding.
func WithoutModifiers(gen *rapid.Generator[keys.KeyBinding]) *rapid.Generator[keys.KeyBinding] {
	return rapid.Custom(func(t *rapid.T) keys.KeyBinding {
		k := gen.Draw(t, "binding")
		k.Modifiers = keys.NoModifiers
		return k
	})
}

// ReturnToNormal generates one of Space, Enter or Esc with any modifiers.
func ReturnToNormal() *rapid.Generator[keys.KeyBinding] {
	return rapid.Custom(func(t *rapid.T) keys.KeyBinding {
		return keys.KeyBinding{
			Key:       rapid.SampledFrom([]keys.BareKey{keys.Space, keys.Enter, keys.Esc}).Draw(t, "key"),
			Modifiers: Modifiers().Draw(t, "mods"),
		}
	})
}

// InputMode generates any input mode.
func InputMode() *rapid.Generator[mode.InputMode] {
	return rapid.SampledFrom(mode.AllModes)
}

// SwitchTarget generates a mode that has its own status-bar tile.
func SwitchTarget() *rapid.Generator[mode.InputMode] {
	return rapid.SampledFrom([]mode.InputMode{
		mode.Locked, mode.Pane, mode.Tab, mode.Resize, mode.Move, mode.Scroll, mode.Session,
	})
}

// Keybinds generates a table where Normal, Locked, Pane and Tab bind
// distinct keys to mode switches. Keys are drawn with opts.
func Keybinds(opts ...KeyBindingOption) *rapid.Generator[mode.Keybinds] {
	return rapid.Custom(func(t *rapid.T) mode.Keybinds {
		table := mode.Keybinds{}
		for _, m := range []mode.InputMode{mode.Normal, mode.Locked, mode.Pane, mode.Tab} {
			n := rapid.IntRange(0, 8).Draw(t, "n")
			seen := map[keys.KeyBinding]bool{}
			for range n {
				k := KeyBinding(opts...).Draw(t, "key")
				if seen[k] {
					continue
				}
				seen[k] = true
				target := rapid.OneOf(SwitchTarget(), rapid.Just(mode.Normal)).Draw(t, "target")
				table[m] = append(table[m], mode.Binding{Key: k, Actions: []mode.Action{mode.SwitchToMode(target)}})
			}
		}
		return table
	})
}
