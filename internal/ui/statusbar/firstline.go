package statusbar

import (
	"fmt"
	"strings"

	"github.com/chatter/keybar/internal/mode"
	"github.com/chatter/keybar/internal/ui/theme"
)

// indicatorModes are the modes with a tile of their own.
var indicatorModes = []mode.InputMode{
	mode.Pane, mode.Tab, mode.Resize, mode.Move, mode.Scroll, mode.Session,
}

// indicatorAction is the tile category shown for a mode in the indicator
// tables. Scroll shares the SEARCH tile.
func indicatorAction(m mode.InputMode) KeyAction {
	if m == mode.Scroll {
		return ActionSearch
	}
	return ActionFromMode(m)
}

// switchShortcut builds a shortcut bound to the key in from that switches to target.
func switchShortcut(info mode.ModeInfo, from mode.InputMode, km KeyMode, a KeyAction, target mode.Action) KeyShortcut {
	k, ok := mode.DisplayKey(mode.ActionKeys(info.KeybindsFor(from), target))
	return NewShortcut(km, a, k, ok)
}

// normalModeShortcuts is the row of mode tiles shown in Normal mode. The
// first tile switches to Locked; the rest alternate their emphasis.
func normalModeShortcuts(info mode.ModeInfo, first KeyMode, firstAction KeyAction) []KeyShortcut {
	row := []struct {
		action KeyAction
		target mode.Action
	}{
		{ActionPane, mode.SwitchToMode(mode.Pane)},
		{ActionTab, mode.SwitchToMode(mode.Tab)},
		{ActionResize, mode.SwitchToMode(mode.Resize)},
		{ActionMove, mode.SwitchToMode(mode.Move)},
		{ActionSearch, mode.SwitchToMode(mode.Scroll)},
		{ActionSession, mode.SwitchToMode(mode.Session)},
		{ActionQuit, mode.Simple(mode.ActionQuit)},
	}

	out := []KeyShortcut{
		switchShortcut(info, mode.Normal, first, firstAction, mode.SwitchToMode(mode.Locked)),
	}
	for i, r := range row {
		km := UnselectedAlternate
		if i%2 == 1 {
			km = Unselected
		}
		out = append(out, switchShortcut(info, mode.Normal, km, r.action, r.target))
	}
	return out
}

// NormalBaseIndicators is the indicator table used when Normal is the
// resting mode.
func NormalBaseIndicators(info mode.ModeInfo) map[mode.InputMode][]KeyShortcut {
	table := map[mode.InputMode][]KeyShortcut{
		mode.Locked: {
			switchShortcut(info, mode.Locked, Selected, ActionLock, mode.SwitchToMode(mode.Normal)),
		},
		mode.Normal: normalModeShortcuts(info, Unselected, ActionLock),
	}
	for _, m := range indicatorModes {
		table[m] = []KeyShortcut{
			switchShortcut(info, m, Selected, indicatorAction(m), mode.SwitchToMode(mode.Normal)),
		}
	}
	return table
}

// LockedBaseIndicators is the indicator table used when Locked is the
// resting mode. Every non-locked mode leads with a selected UNLOCK tile.
func LockedBaseIndicators(info mode.ModeInfo) map[mode.InputMode][]KeyShortcut {
	table := map[mode.InputMode][]KeyShortcut{
		mode.Locked: {
			switchShortcut(info, mode.Locked, Unselected, ActionUnlock, mode.SwitchToMode(mode.Normal)),
		},
		mode.Normal: normalModeShortcuts(info, Selected, ActionUnlock),
	}
	for _, m := range indicatorModes {
		table[m] = []KeyShortcut{
			switchShortcut(info, m, Selected, ActionUnlock, mode.SwitchToMode(mode.Locked)),
			switchShortcut(info, m, Selected, indicatorAction(m), mode.SwitchToMode(mode.Normal)),
		}
	}
	return table
}

// Indicators picks the indicator table for info's base mode.
func Indicators(info mode.ModeInfo) map[mode.InputMode][]KeyShortcut {
	if info.BaseMode == mode.Locked {
		return LockedBaseIndicators(info)
	}
	return NormalBaseIndicators(info)
}

// ModeIndicators appends the current mode's tiles to line. The shared
// modifiers are taken across all modes when possible so the banner does not
// change when switching modes. Otherwise they are the modifiers shared by the
// tiles that will render and by every mode-switching key of the current mode.
func ModeIndicators(line LinePart, info mode.ModeInfo, maxLen int, sep string) LinePart {
	table := Indicators(info)
	shortcuts := table[info.Mode]

	common := ModifiersInAllModes(table)
	if common.IsEmpty() {
		var visible []KeyShortcut
		for _, s := range shortcuts {
			if s.Renderable() {
				visible = append(visible, s)
			}
		}
		common = ShortcutModifiers(visible).Intersect(CommonModifiers(mode.SwitchKeys(info.ModeKeybinds())))
	}

	e := theme.NewElements(info.Palette, info.Capabilities.SimplifiedUI)
	return KeyIndicators(line, maxLen, shortcuts, common, e, sep, info.Capabilities.ArrowFonts())
}

// FirstLine renders the full status line for info within maxLen characters.
// Base modes get the secondary hints right-aligned; other modes get their
// quick-navigation hints when they fit.
func FirstLine(info mode.ModeInfo, tab *mode.TabInfo, maxLen int, sep string) LinePart {
	line := ModeIndicators(LinePart{}, info, maxLen, sep)

	if info.Mode.IsBase() {
		if line.Len < maxLen {
			line = SecondaryInfo(line, info, tab, maxLen, sep)
		}
		return line
	}

	if nav := Quicknav(info, maxLen-line.Len); line.Len+nav.Len <= maxLen {
		line = line.Append(nav)
	}
	return line
}

// CurrentMode appends a badge with the mode name centred in seven cells,
// " NORMAL  ", when it fits in maxLen.
func CurrentMode(line LinePart, info mode.ModeInfo, maxLen int) LinePart {
	text := " " + center(strings.ToUpper(info.Mode.String()), 7) + " "
	badge := paint(fragment{
		theme.ModeBadge(info.Palette, info.Mode == mode.Locked, info.Mode == mode.Normal),
		text,
	})
	if badge.Len > maxLen {
		return line
	}
	return line.Append(badge)
}

// center pads s to width, putting the odd cell on the right.
func center(s string, width int) string {
	pad := width - runeLen(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return fmt.Sprintf("%s%s%s", strings.Repeat(" ", left), s, strings.Repeat(" ", pad-left))
}
