package statusbar

import (
	"strings"

	"github.com/chatter/keybar/internal/mode"
	"github.com/chatter/keybar/internal/ui/theme"
)

// SwapLayoutKeycode is the key group that cycles swap layouts in the current mode.
func SwapLayoutKeycode(info mode.ModeInfo, hs theme.HintStyles) LinePart {
	ks := mode.ActionKeyGroup(info.ModeKeybinds(),
		[]mode.Action{mode.Simple(mode.ActionPreviousSwapLayout)},
		[]mode.Action{mode.Simple(mode.ActionNextSwapLayout)},
	)
	return KeyGroup(ks, hs)
}

// SwapLayoutStatus renders the active swap layout, " STACKED " between
// separators, preceded by its keycode when that fits in maxLen. Without the
// keycode it is indented by one space, and never shown in locked mode.
// A dirty layout is drawn unselected. ok is false when nothing fits.
func SwapLayoutStatus(maxLen int, tab *mode.TabInfo, info mode.ModeInfo, e theme.Elements, hs theme.HintStyles, sep string) (LinePart, bool) {
	if tab == nil || tab.SwapLayoutName == "" {
		return LinePart{}, false
	}

	st := e.Selected
	if tab.SwapLayoutDirty {
		st = e.Unselected
	}
	indicator := paint(
		fragment{st.PrefixSeparator, sep},
		fragment{st.StyledText, " " + strings.ToUpper(tab.SwapLayoutName) + " "},
		fragment{st.SuffixSeparator, sep},
	)

	keycode := SwapLayoutKeycode(info, hs)
	if full := keycode.Append(indicator); full.Len <= maxLen {
		return full, true
	}

	short := paint(fragment{e.SuperkeyPrefix, " "}).Append(indicator)
	if short.Len <= maxLen && info.Mode != mode.Locked {
		return short, true
	}

	return LinePart{}, false
}
