package statusbar

import (
	"github.com/chatter/keybar/internal/keys"
	"github.com/chatter/keybar/internal/mode"
)

// KeyAction is the category a shortcut tile stands for.
type KeyAction int

const (
	ActionNormal KeyAction = iota
	ActionLock
	ActionUnlock
	ActionPane
	ActionTab
	ActionResize
	ActionSearch
	ActionQuit
	ActionSession
	ActionMove
	ActionTmux
)

// Label is the uppercase text printed in long tiles.
func (a KeyAction) Label() string {
	switch a {
	case ActionNormal, ActionUnlock:
		return "UNLOCK"
	case ActionLock:
		return "LOCK"
	case ActionPane:
		return "PANE"
	case ActionTab:
		return "TAB"
	case ActionResize:
		return "RESIZE"
	case ActionSearch:
		return "SEARCH"
	case ActionQuit:
		return "QUIT"
	case ActionSession:
		return "SESSION"
	case ActionMove:
		return "MOVE"
	case ActionTmux:
		return "TMUX"
	default:
		return "UNLOCK"
	}
}

func (a KeyAction) String() string {
	return a.Label()
}

// ActionFromMode classifies an input mode. Modes without a tile of their own
// (Tmux included) fall back to ActionNormal.
func ActionFromMode(m mode.InputMode) KeyAction {
	switch m {
	case mode.Normal:
		return ActionNormal
	case mode.Locked:
		return ActionLock
	case mode.Pane:
		return ActionPane
	case mode.Tab:
		return ActionTab
	case mode.Resize:
		return ActionResize
	case mode.Search:
		return ActionSearch
	case mode.Session:
		return ActionSession
	case mode.Move:
		return ActionMove
	default:
		// TODO: give Tmux its own label instead of UNLOCK.
		return ActionNormal
	}
}

// KeyMode selects the style profile of a tile.
type KeyMode int

const (
	Unselected KeyMode = iota
	UnselectedAlternate
	Selected
	Disabled
)

func (m KeyMode) String() string {
	switch m {
	case Unselected:
		return "unselected"
	case UnselectedAlternate:
		return "unselected-alternate"
	case Selected:
		return "selected"
	case Disabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// KeyShortcut is one tile to render. Key is nil when the action is unbound.
type KeyShortcut struct {
	Mode   KeyMode
	Action KeyAction
	Key    *keys.KeyBinding
}

// NewShortcut builds a shortcut; ok=false leaves it unbound.
func NewShortcut(m KeyMode, a KeyAction, k keys.KeyBinding, ok bool) KeyShortcut {
	s := KeyShortcut{Mode: m, Action: a}
	if ok {
		s.Key = &k
	}
	return s
}

// Renderable reports whether any tile would print something for s.
func (s KeyShortcut) Renderable() bool {
	return s.Key != nil || s.Mode == Disabled
}

// LetterShortcut is the key text without the common modifiers, or "?" if unbound.
func (s KeyShortcut) LetterShortcut(common keys.ModifierSet) string {
	if s.Key == nil {
		return "?"
	}
	return s.Key.StripModifiers(common).String()
}

// ShortenedModifiers is like LetterShortcut with each remaining modifier
// compressed to its code, e.g. "^C-^A a".
func (s KeyShortcut) ShortenedModifiers(common keys.ModifierSet) string {
	if s.Key == nil {
		return "?"
	}
	return s.Key.StripModifiers(common).ShortString()
}
