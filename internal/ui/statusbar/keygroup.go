package statusbar

import (
	"strings"

	"github.com/chatter/keybar/internal/keys"
	"github.com/chatter/keybar/internal/ui/theme"
)

// Groups that read naturally without a "|" between the keys.
var unseparatedGroups = map[string]bool{
	"hjkl": true,
	"HJKL": true,
	"←↓↑→": true,
	"←→":   true,
	"↓↑":   true,
	"[]":   true,
}

// KeyGroup renders several keys as one hint: "Alt + <←|→>" when they share
// modifiers, "<a|b>" otherwise.
func KeyGroup(ks []keys.KeyBinding, hs theme.HintStyles) LinePart {
	if len(ks) == 0 {
		return LinePart{}
	}

	common := CommonModifiers(ks)
	names := make([]string, 0, len(ks))
	for _, k := range ks {
		names = append(names, k.StripModifiers(common).String())
	}
	sep := "|"
	if unseparatedGroups[strings.Join(names, "")] {
		sep = ""
	}

	frags := make([]fragment, 0, 2*len(ks)+4)
	if !common.IsEmpty() {
		frags = append(frags,
			fragment{hs.Modifier, common.String()},
			fragment{hs.Bracket, " + "},
		)
	}
	frags = append(frags, fragment{hs.Bracket, "<"})
	for i, name := range names {
		if i > 0 && sep != "" {
			frags = append(frags, fragment{hs.Bracket, sep})
		}
		frags = append(frags, fragment{hs.Key, name})
	}
	frags = append(frags, fragment{hs.Bracket, ">"})

	return paint(frags...)
}

// Hint renders one " <keys> Label" entry of a hint list. The first entry of
// a list starts with " ", later ones with " / ". An empty label renders the
// keys alone; no keys renders nothing.
func Hint(list LinePart, label string, ks []keys.KeyBinding, hs theme.HintStyles) LinePart {
	group := KeyGroup(ks, hs)
	if group.IsEmpty() {
		return LinePart{}
	}

	lead := " "
	if !list.IsEmpty() {
		lead = " / "
	}

	out := paint(fragment{hs.Text, lead}).Append(group)
	if label != "" {
		out = out.Append(paint(fragment{hs.Text, " " + label}))
	}
	return out
}
