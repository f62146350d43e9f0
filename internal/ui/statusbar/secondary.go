package statusbar

import (
	"strings"

	"github.com/chatter/keybar/internal/keys"
	"github.com/chatter/keybar/internal/mode"
	"github.com/chatter/keybar/internal/ui/theme"
)

// SecondaryKeybinds renders the hints shown next to the base-mode tiles:
// "New Pane" and "Change Focus".
func SecondaryKeybinds(info mode.ModeInfo, hs theme.HintStyles) LinePart {
	binds := info.ModeKeybinds()

	var hints LinePart
	if k, ok := mode.PreferredKey(
		mode.ActionKeys(binds, mode.Simple(mode.ActionNewPane)),
		keys.New(keys.Char('n'), keys.Alt),
	); ok {
		hints = hints.Append(Hint(hints, "New Pane", []keys.KeyBinding{k}, hs))
	}

	focus := []struct {
		action mode.Action
		want   keys.BareKey
	}{
		{mode.MoveFocusOrTab(mode.Left), keys.Left},
		{mode.MoveFocus(mode.Down), keys.Down},
		{mode.MoveFocus(mode.Up), keys.Up},
		{mode.MoveFocusOrTab(mode.Right), keys.Right},
	}
	var focusKeys []keys.KeyBinding
	for _, f := range focus {
		if k, ok := mode.PreferredKey(mode.ActionKeys(binds, f.action), keys.New(f.want, keys.Alt)); ok {
			focusKeys = append(focusKeys, k)
		}
	}
	hints = hints.Append(Hint(hints, "Change Focus", focusKeys, hs))

	return hints
}

// SecondaryInfo pads line with blank cells and appends the secondary hints
// and swap-layout status, leaving one free cell at the end of maxLen. When
// the secondary part is wider than the room left, no padding is added and
// the line may exceed maxLen.
func SecondaryInfo(line LinePart, info mode.ModeInfo, tab *mode.TabInfo, maxLen int, sep string) LinePart {
	e := theme.NewElements(info.Palette, info.Capabilities.SimplifiedUI)
	hs := theme.NewHintStyles(info.Palette)

	secondary := SecondaryKeybinds(info, hs)
	if status, ok := SwapLayoutStatus(maxLen, tab, info, e, hs, sep); ok {
		secondary = secondary.Append(status)
	}

	if remaining := maxLen - line.Len - secondary.Len - 1; remaining > 0 {
		line = line.Append(LinePart{
			Part: strings.Repeat(e.SuperkeyPrefix.Render(" "), remaining),
			Len:  remaining,
		})
	}

	return line.Append(secondary)
}
