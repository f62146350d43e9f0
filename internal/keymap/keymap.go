// Package keymap declares the default keybindings and converts them into the
// per-mode table the status bar renders.
package keymap

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/chatter/keybar/internal/keys"
	"github.com/chatter/keybar/internal/mode"
)

// ActionBinding combines a display binding with the actions it triggers.
type ActionBinding struct {
	key.Binding
	Actions []mode.Action
}

// KeyMap holds the bindings of every input mode, in display order.
type KeyMap map[mode.InputMode][]ActionBinding

func bind(help, desc string, a mode.Action, ks ...string) ActionBinding {
	return ActionBinding{
		Binding: key.NewBinding(key.WithKeys(ks...), key.WithHelp(help, desc)),
		Actions: []mode.Action{a},
	}
}

func toNormal(ks ...string) ActionBinding {
	return bind(ks[0], "normal", mode.SwitchToMode(mode.Normal), ks...)
}

func toLocked() ActionBinding {
	return bind("^g", "lock", mode.SwitchToMode(mode.Locked), "ctrl+g")
}

// returnKeys switch back to normal mode from any non-base mode.
var returnKeys = []string{"enter", "esc"}

// Default returns the default key bindings
func Default() KeyMap {
	swap := []ActionBinding{
		bind("alt+[", "previous layout", mode.Simple(mode.ActionPreviousSwapLayout), "alt+["),
		bind("alt+]", "next layout", mode.Simple(mode.ActionNextSwapLayout), "alt+]"),
	}

	return KeyMap{
		mode.Normal: append([]ActionBinding{
			toLocked(),
			bind("^p", "pane", mode.SwitchToMode(mode.Pane), "ctrl+p"),
			bind("^t", "tab", mode.SwitchToMode(mode.Tab), "ctrl+t"),
			bind("^n", "resize", mode.SwitchToMode(mode.Resize), "ctrl+n"),
			bind("^h", "move", mode.SwitchToMode(mode.Move), "ctrl+h"),
			bind("^s", "scroll", mode.SwitchToMode(mode.Scroll), "ctrl+s"),
			bind("^o", "session", mode.SwitchToMode(mode.Session), "ctrl+o"),
			bind("^q", "quit", mode.Simple(mode.ActionQuit), "ctrl+q"),
			bind("alt+n", "new pane", mode.Simple(mode.ActionNewPane), "alt+n"),
			bind("alt+←/h", "focus left", mode.MoveFocusOrTab(mode.Left), "alt+left", "alt+h"),
			bind("alt+↓/j", "focus down", mode.MoveFocus(mode.Down), "alt+down", "alt+j"),
			bind("alt+↑/k", "focus up", mode.MoveFocus(mode.Up), "alt+up", "alt+k"),
			bind("alt+→/l", "focus right", mode.MoveFocusOrTab(mode.Right), "alt+right", "alt+l"),
		}, swap...),
		mode.Locked: {
			bind("^g", "unlock", mode.SwitchToMode(mode.Normal), "ctrl+g"),
		},
		mode.Pane: append([]ActionBinding{
			toLocked(),
			toNormal("ctrl+p"),
			toNormal(returnKeys...),
			bind("n", "new", mode.Simple(mode.ActionNewPane), "n"),
			bind("x", "close", mode.Simple(mode.ActionCloseFocus), "x"),
			bind("f", "fullscreen", mode.Simple(mode.ActionToggleFocusFullscreen), "f"),
			bind("h/←", "focus left", mode.MoveFocus(mode.Left), "left", "h"),
			bind("j/↓", "focus down", mode.MoveFocus(mode.Down), "down", "j"),
			bind("k/↑", "focus up", mode.MoveFocus(mode.Up), "up", "k"),
			bind("l/→", "focus right", mode.MoveFocus(mode.Right), "right", "l"),
		}, swap...),
		mode.Tab: {
			toLocked(),
			toNormal("ctrl+t"),
			toNormal(returnKeys...),
			bind("n", "new", mode.Simple(mode.ActionNewTab), "n"),
			bind("x", "close", mode.Simple(mode.ActionCloseTab), "x"),
			bind("h/←", "previous", mode.Simple(mode.ActionGoToPreviousTab), "left", "h"),
			bind("l/→", "next", mode.Simple(mode.ActionGoToNextTab), "right", "l"),
		},
		mode.Resize: {
			toLocked(),
			toNormal("ctrl+n"),
			toNormal(returnKeys...),
			bind("+", "increase", mode.ResizeBy(mode.Increase), "+", "="),
			bind("-", "decrease", mode.ResizeBy(mode.Decrease), "-"),
		},
		mode.Move: {
			toLocked(),
			toNormal("ctrl+h"),
			toNormal(returnKeys...),
			bind("←", "move left", mode.MovePane(mode.Left), "left"),
			bind("↓", "move down", mode.MovePane(mode.Down), "down"),
			bind("↑", "move up", mode.MovePane(mode.Up), "up"),
			bind("→", "move right", mode.MovePane(mode.Right), "right"),
		},
		mode.Scroll: {
			toLocked(),
			toNormal("ctrl+s"),
			toNormal(returnKeys...),
			bind("j/↓", "scroll down", mode.Simple(mode.ActionScrollDown), "down", "j"),
			bind("k/↑", "scroll up", mode.Simple(mode.ActionScrollUp), "up", "k"),
			bind("s", "search", mode.SwitchToMode(mode.EnterSearch), "s"),
		},
		mode.EnterSearch: {
			bind("⏎", "search", mode.SwitchToMode(mode.Search), "enter"),
			bind("⎋", "cancel", mode.SwitchToMode(mode.Scroll), "esc"),
		},
		mode.Search: {
			toLocked(),
			toNormal("ctrl+s"),
			toNormal(returnKeys...),
			bind("j/↓", "scroll down", mode.Simple(mode.ActionScrollDown), "down", "j"),
			bind("k/↑", "scroll up", mode.Simple(mode.ActionScrollUp), "up", "k"),
			bind("s", "search", mode.SwitchToMode(mode.EnterSearch), "s"),
		},
		mode.Session: {
			toLocked(),
			toNormal("ctrl+o"),
			toNormal(returnKeys...),
			bind("d", "detach", mode.Simple(mode.ActionDetach), "d"),
		},
	}
}

// Keybinds flattens km into the status-bar table: one entry per key string,
// in declaration order. Disabled bindings are skipped.
func (km KeyMap) Keybinds() (mode.Keybinds, error) {
	table := make(mode.Keybinds, len(km))
	for m, bindings := range km {
		for _, ab := range bindings {
			if !ab.Enabled() {
				continue
			}
			for _, s := range ab.Keys() {
				k, err := keys.Parse(s)
				if err != nil {
					return nil, fmt.Errorf("%s binding %q: %w", m, ab.Help().Desc, err)
				}
				table[m] = append(table[m], mode.Binding{Key: k, Actions: ab.Actions})
			}
		}
	}
	return table, nil
}

// Resolve returns the actions bound to msg in m. ok is false when no
// enabled binding matches.
func (km KeyMap) Resolve(m mode.InputMode, msg tea.KeyPressMsg) ([]mode.Action, bool) {
	for _, ab := range km[m] {
		if key.Matches(msg, ab.Binding) {
			return ab.Actions, true
		}
	}
	return nil, false
}

// FromKeybinds rebuilds a key map from a table, e.g. one loaded from a
// snapshot, so key presses can be resolved against it.
func FromKeybinds(table mode.Keybinds) KeyMap {
	km := make(KeyMap, len(table))
	for m, binds := range table {
		for _, b := range binds {
			km[m] = append(km[m], ActionBinding{
				Binding: key.NewBinding(key.WithKeys(b.Key.Keystroke()), key.WithHelp(b.Key.String(), actionsHelp(b.Actions))),
				Actions: b.Actions,
			})
		}
	}
	return km
}

func actionsHelp(actions []mode.Action) string {
	if len(actions) == 0 {
		return ""
	}
	return actions[0].String()
}
