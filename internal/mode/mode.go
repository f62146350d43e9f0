// Package mode describes the host application's input modes, actions and
// per-mode keybinding tables as consumed by the status bar.
package mode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode name is not recognised.
var ErrUnknownMode = errors.New("unknown input mode")

// InputMode is the application's current input mode.
type InputMode int

const (
	Normal InputMode = iota
	Locked
	Resize
	Pane
	Tab
	Scroll
	EnterSearch
	Search
	RenameTab
	RenamePane
	Session
	Move
	Prompt
	Tmux
)

// AllModes lists every input mode in declaration order.
var AllModes = []InputMode{
	Normal, Locked, Resize, Pane, Tab, Scroll, EnterSearch, Search,
	RenameTab, RenamePane, Session, Move, Prompt, Tmux,
}

var modeNames = map[InputMode]string{
	Normal:      "Normal",
	Locked:      "Locked",
	Resize:      "Resize",
	Pane:        "Pane",
	Tab:         "Tab",
	Scroll:      "Scroll",
	EnterSearch: "EnterSearch",
	Search:      "Search",
	RenameTab:   "RenameTab",
	RenamePane:  "RenamePane",
	Session:     "Session",
	Move:        "Move",
	Prompt:      "Prompt",
	Tmux:        "Tmux",
}

func (m InputMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("InputMode(%d)", int(m))
}

// IsBase reports whether m is one of the two resting modes (Normal, Locked).
func (m InputMode) IsBase() bool {
	return m == Normal || m == Locked
}

// ParseInputMode reads a mode name, ignoring case and "_"/"-" separators,
// so "enter_search" and "EnterSearch" are the same mode.
func ParseInputMode(s string) (InputMode, error) {
	norm := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(s))
	for m, name := range modeNames {
		if strings.ToLower(name) == norm {
			return m, nil
		}
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m InputMode) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *InputMode) UnmarshalText(text []byte) error {
	parsed, err := ParseInputMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
