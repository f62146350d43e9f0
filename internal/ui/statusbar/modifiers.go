package statusbar

import (
	"github.com/chatter/keybar/internal/keys"
	"github.com/chatter/keybar/internal/mode"
)

const allMods = keys.ModifierSet(keys.Ctrl) | keys.ModifierSet(keys.Alt) |
	keys.ModifierSet(keys.Shift) | keys.ModifierSet(keys.Super)

// CommonModifiers intersects the modifiers of every key. Empty input yields
// no modifiers.
func CommonModifiers(ks []keys.KeyBinding) keys.ModifierSet {
	if len(ks) == 0 {
		return keys.NoModifiers
	}
	common := allMods
	for _, k := range ks {
		common = common.Intersect(k.Modifiers)
	}
	return common
}

// ShortcutModifiers is the modifier set shared by a sequence of shortcuts.
// A shortcut without a key makes the result empty. Return-to-normal keys
// (Space, Enter, Esc) are not considered.
func ShortcutModifiers(shortcuts []KeyShortcut) keys.ModifierSet {
	ks, ok := informativeKeys(shortcuts)
	if !ok || len(ks) == 0 {
		return keys.NoModifiers
	}
	return CommonModifiers(ks)
}

// ModifiersInAllModes is the modifier set shared by the shortcuts of every
// mode in table. Any empty mode, or any shortcut without a key, makes the
// result empty.
func ModifiersInAllModes(table map[mode.InputMode][]KeyShortcut) keys.ModifierSet {
	if len(table) == 0 {
		return keys.NoModifiers
	}
	common := allMods
	for _, shortcuts := range table {
		if len(shortcuts) == 0 {
			return keys.NoModifiers
		}
		ks, ok := informativeKeys(shortcuts)
		if !ok || len(ks) == 0 {
			return keys.NoModifiers
		}
		common = common.Intersect(CommonModifiers(ks))
	}
	return common
}

func informativeKeys(shortcuts []KeyShortcut) ([]keys.KeyBinding, bool) {
	ks := make([]keys.KeyBinding, 0, len(shortcuts))
	for _, s := range shortcuts {
		if s.Key == nil {
			return nil, false
		}
		if s.Key.IsReturnToNormal() {
			continue
		}
		ks = append(ks, *s.Key)
	}
	return ks, true
}
