package mode

import (
	"slices"

	"github.com/chatter/keybar/internal/keys"
)

// Binding maps one key to an ordered list of actions. The first action is
// the one used to classify the binding.
type Binding struct {
	Key     keys.KeyBinding
	Actions []Action
}

// Keybinds is the per-mode keybinding table, in the order the host declared it.
type Keybinds map[InputMode][]Binding

// ActionKeys returns the keys whose action list is exactly actions.
func ActionKeys(binds []Binding, actions ...Action) []keys.KeyBinding {
	var out []keys.KeyBinding
	for _, b := range binds {
		if slices.Equal(b.Actions, actions) {
			out = append(out, b.Key)
		}
	}
	return out
}

// ActionKeyGroup concatenates ActionKeys for each group in order.
func ActionKeyGroup(binds []Binding, groups ...[]Action) []keys.KeyBinding {
	var out []keys.KeyBinding
	for _, g := range groups {
		out = append(out, ActionKeys(binds, g...)...)
	}
	return out
}

// DisplayKey picks the key to show for a shortcut: the first key that is not
// one of the generic return-to-normal keys, else the first key at all.
func DisplayKey(ks []keys.KeyBinding) (keys.KeyBinding, bool) {
	for _, k := range ks {
		if !k.IsReturnToNormal() {
			return k, true
		}
	}
	if len(ks) > 0 {
		return ks[0], true
	}
	return keys.KeyBinding{}, false
}

// PreferredKey returns want if it is among ks, else the first key.
func PreferredKey(ks []keys.KeyBinding, want keys.KeyBinding) (keys.KeyBinding, bool) {
	if slices.Contains(ks, want) {
		return want, true
	}
	if len(ks) > 0 {
		return ks[0], true
	}
	return keys.KeyBinding{}, false
}

// SwitchKeys returns the keys of binds whose first action switches to a
// displayed mode or quits. Return-to-normal keys are skipped.
func SwitchKeys(binds []Binding) []keys.KeyBinding {
	var out []keys.KeyBinding
	for _, b := range binds {
		if len(b.Actions) == 0 || b.Key.IsReturnToNormal() {
			continue
		}
		first := b.Actions[0]
		switch first.Kind {
		case ActionQuit:
			out = append(out, b.Key)
		case ActionSwitchToMode:
			switch first.Mode {
			case Normal, Locked, Pane, Tab, Resize, Move, Scroll, Session:
				out = append(out, b.Key)
			}
		}
	}
	return out
}
