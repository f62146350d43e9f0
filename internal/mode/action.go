package mode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned when an action string cannot be parsed.
var ErrUnknownAction = errors.New("unknown action")

// ActionKind identifies what a bound key does.
type ActionKind int

const (
	ActionSwitchToMode ActionKind = iota
	ActionQuit
	ActionNewPane
	ActionCloseFocus
	ActionToggleFocusFullscreen
	ActionMoveFocus
	ActionMoveFocusOrTab
	ActionMovePane
	ActionResize
	ActionNewTab
	ActionCloseTab
	ActionGoToNextTab
	ActionGoToPreviousTab
	ActionScrollUp
	ActionScrollDown
	ActionDetach
	ActionPreviousSwapLayout
	ActionNextSwapLayout
)

var actionNames = map[ActionKind]string{
	ActionSwitchToMode:          "SwitchToMode",
	ActionQuit:                  "Quit",
	ActionNewPane:               "NewPane",
	ActionCloseFocus:            "CloseFocus",
	ActionToggleFocusFullscreen: "ToggleFocusFullscreen",
	ActionMoveFocus:             "MoveFocus",
	ActionMoveFocusOrTab:        "MoveFocusOrTab",
	ActionMovePane:              "MovePane",
	ActionResize:                "Resize",
	ActionNewTab:                "NewTab",
	ActionCloseTab:              "CloseTab",
	ActionGoToNextTab:           "GoToNextTab",
	ActionGoToPreviousTab:       "GoToPreviousTab",
	ActionScrollUp:              "ScrollUp",
	ActionScrollDown:            "ScrollDown",
	ActionDetach:                "Detach",
	ActionPreviousSwapLayout:    "PreviousSwapLayout",
	ActionNextSwapLayout:        "NextSwapLayout",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Direction is the argument of focus and move actions.
type Direction int

const (
	NoDirection Direction = iota
	Left
	Down
	Up
	Right
)

var directionNames = map[Direction]string{
	Left:  "Left",
	Down:  "Down",
	Up:    "Up",
	Right: "Right",
}

func (d Direction) String() string {
	return directionNames[d]
}

// ResizeKind is the argument of a resize action.
type ResizeKind int

const (
	NoResize ResizeKind = iota
	Increase
	Decrease
)

func (r ResizeKind) String() string {
	switch r {
	case Increase:
		return "Increase"
	case Decrease:
		return "Decrease"
	default:
		return ""
	}
}

// Action is one host action. Only the field matching Kind is meaningful;
// the rest stay zero so actions compare with ==.
type Action struct {
	Kind      ActionKind
	Mode      InputMode
	Direction Direction
	Resize    ResizeKind
}

// SwitchToMode returns the action that enters m.
func SwitchToMode(m InputMode) Action {
	return Action{Kind: ActionSwitchToMode, Mode: m}
}

// MoveFocus returns the action that moves focus in d.
func MoveFocus(d Direction) Action {
	return Action{Kind: ActionMoveFocus, Direction: d}
}

// MoveFocusOrTab returns the action that moves focus in d, crossing tabs at the edge.
func MoveFocusOrTab(d Direction) Action {
	return Action{Kind: ActionMoveFocusOrTab, Direction: d}
}

// MovePane returns the action that moves the focused pane in d.
func MovePane(d Direction) Action {
	return Action{Kind: ActionMovePane, Direction: d}
}

// ResizeBy returns the resize action of the given kind.
func ResizeBy(r ResizeKind) Action {
	return Action{Kind: ActionResize, Resize: r}
}

// Simple returns an action that takes no argument.
func Simple(k ActionKind) Action {
	return Action{Kind: k}
}

// String renders the action as "SwitchToMode Pane", "MoveFocus Left" or "Quit".
func (a Action) String() string {
	switch a.Kind {
	case ActionSwitchToMode:
		return a.Kind.String() + " " + a.Mode.String()
	case ActionMoveFocus, ActionMoveFocusOrTab, ActionMovePane:
		return a.Kind.String() + " " + a.Direction.String()
	case ActionResize:
		return a.Kind.String() + " " + a.Resize.String()
	default:
		return a.Kind.String()
	}
}

// ParseAction reads the form produced by String. Names are case-insensitive.
func ParseAction(s string) (Action, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("%w: empty", ErrUnknownAction)
	}

	kind, ok := lookupKind(fields[0])
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}

	arg := ""
	if len(fields) > 1 {
		arg = strings.Join(fields[1:], "")
	}

	switch kind {
	case ActionSwitchToMode:
		m, err := ParseInputMode(arg)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %q: %w", ErrUnknownAction, s, err)
		}
		return SwitchToMode(m), nil
	case ActionMoveFocus, ActionMoveFocusOrTab, ActionMovePane:
		d, ok := lookupDirection(arg)
		if !ok {
			return Action{}, fmt.Errorf("%w: bad direction in %q", ErrUnknownAction, s)
		}
		return Action{Kind: kind, Direction: d}, nil
	case ActionResize:
		switch strings.ToLower(arg) {
		case "increase", "+":
			return ResizeBy(Increase), nil
		case "decrease", "-":
			return ResizeBy(Decrease), nil
		default:
			return Action{}, fmt.Errorf("%w: bad resize in %q", ErrUnknownAction, s)
		}
	default:
		if arg != "" {
			return Action{}, fmt.Errorf("%w: %s takes no argument: %q", ErrUnknownAction, kind, s)
		}
		return Simple(kind), nil
	}
}

func lookupKind(name string) (ActionKind, bool) {
	for k, n := range actionNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}

func lookupDirection(name string) (Direction, bool) {
	for d, n := range directionNames {
		if strings.EqualFold(n, name) {
			return d, true
		}
	}
	return NoDirection, false
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
