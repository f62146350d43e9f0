package statusbar

import (
	"github.com/chatter/keybar/internal/mode"
	"github.com/chatter/keybar/internal/ui/theme"
)

type navHint struct {
	label  string
	groups [][]mode.Action
}

func single(a mode.Action) [][]mode.Action {
	return [][]mode.Action{{a}}
}

func each(as ...mode.Action) [][]mode.Action {
	out := make([][]mode.Action, 0, len(as))
	for _, a := range as {
		out = append(out, []mode.Action{a})
	}
	return out
}

var scrollHints = []navHint{
	{"Scroll", each(mode.Simple(mode.ActionScrollDown), mode.Simple(mode.ActionScrollUp))},
	{"Search", single(mode.SwitchToMode(mode.EnterSearch))},
}

var quicknavHints = map[mode.InputMode][]navHint{
	mode.Pane: {
		{"New", single(mode.Simple(mode.ActionNewPane))},
		{"Close", single(mode.Simple(mode.ActionCloseFocus))},
		{"Fullscreen", single(mode.Simple(mode.ActionToggleFocusFullscreen))},
		{"Move focus", each(mode.MoveFocus(mode.Left), mode.MoveFocus(mode.Down), mode.MoveFocus(mode.Up), mode.MoveFocus(mode.Right))},
	},
	mode.Tab: {
		{"New", single(mode.Simple(mode.ActionNewTab))},
		{"Close", single(mode.Simple(mode.ActionCloseTab))},
		{"Select", each(mode.Simple(mode.ActionGoToPreviousTab), mode.Simple(mode.ActionGoToNextTab))},
	},
	mode.Resize: {
		{"Increase", single(mode.ResizeBy(mode.Increase))},
		{"Decrease", single(mode.ResizeBy(mode.Decrease))},
	},
	mode.Move: {
		{"Move", each(mode.MovePane(mode.Left), mode.MovePane(mode.Down), mode.MovePane(mode.Up), mode.MovePane(mode.Right))},
	},
	mode.Scroll:      scrollHints,
	mode.Search:      scrollHints,
	mode.EnterSearch: scrollHints,
	mode.Session: {
		{"Detach", single(mode.Simple(mode.ActionDetach))},
	},
}

// Quicknav renders the in-mode hints for non-base modes within budget:
// labelled hints if they fit, else the key groups alone, else nothing.
func Quicknav(info mode.ModeInfo, budget int) LinePart {
	hints, ok := quicknavHints[info.Mode]
	if !ok {
		return LinePart{}
	}
	hs := theme.NewHintStyles(info.Palette)
	binds := info.ModeKeybinds()

	for _, labelled := range []bool{true, false} {
		var out LinePart
		for _, h := range hints {
			label := ""
			if labelled {
				label = h.label
			}
			out = out.Append(Hint(out, label, mode.ActionKeyGroup(binds, h.groups...), hs))
		}
		if out.Len <= budget {
			return out
		}
	}

	return LinePart{}
}
