package statusbar

import (
	"github.com/chatter/keybar/internal/keys"
	"github.com/chatter/keybar/internal/ui/theme"
)

// Tier is a tile verbosity level, tried in declaration order.
type Tier int

const (
	TierLong Tier = iota
	TierShortenedModifiers
	TierShort
)

var tiers = []Tier{TierLong, TierShortenedModifiers, TierShort}

func (t Tier) String() string {
	switch t {
	case TierLong:
		return "long"
	case TierShortenedModifiers:
		return "shortened"
	case TierShort:
		return "short"
	default:
		return "unknown"
	}
}

// Tile renders s at tier t.
func Tile(t Tier, s KeyShortcut, e theme.Elements, sep string, common keys.ModifierSet, first bool) LinePart {
	switch t {
	case TierShortenedModifiers:
		return ShortenedModifierTile(s, e, sep, common, first)
	case TierShort:
		return ShortTile(s, e, sep, common, first)
	default:
		return LongTile(s, e, sep, common, first)
	}
}

// LongTile renders "sep <key> LABEL sep". An unbound Disabled shortcut
// prints "<>"; any other unbound shortcut renders nothing.
func LongTile(s KeyShortcut, e theme.Elements, sep string, common keys.ModifierSet, first bool) LinePart {
	if !s.Renderable() {
		return LinePart{}
	}
	key := ""
	if s.Key != nil {
		key = s.LetterShortcut(common)
	}
	return labelledTile(s, e, sep, key, common, first)
}

// ShortenedModifierTile is LongTile with modifiers compressed to "^C"-style codes.
func ShortenedModifierTile(s KeyShortcut, e theme.Elements, sep string, common keys.ModifierSet, first bool) LinePart {
	if !s.Renderable() {
		return LinePart{}
	}
	key := ""
	if s.Key != nil {
		key = s.ShortenedModifiers(common)
	}
	return labelledTile(s, e, sep, key, common, first)
}

// ShortTile renders "sep key sep" with no label. Unbound shortcuts render
// nothing, Disabled ones included.
func ShortTile(s KeyShortcut, e theme.Elements, sep string, common keys.ModifierSet, first bool) LinePart {
	if s.Key == nil {
		return LinePart{}
	}
	st := segmentStyle(s.Mode, e)
	return paint(
		fragment{st.PrefixSeparator, leadingSeparator(sep, common, first)},
		fragment{st.CharShortcut, " " + s.LetterShortcut(common) + " "},
		fragment{st.SuffixSeparator, sep},
	)
}

func labelledTile(s KeyShortcut, e theme.Elements, sep, key string, common keys.ModifierSet, first bool) LinePart {
	st := segmentStyle(s.Mode, e)
	return paint(
		fragment{st.PrefixSeparator, leadingSeparator(sep, common, first)},
		fragment{st.CharLeftSeparator, " <"},
		fragment{st.CharShortcut, key},
		fragment{st.CharRightSeparator, "> "},
		fragment{st.StyledText, s.Action.Label() + " "},
		fragment{st.SuffixSeparator, sep},
	)
}

// leadingSeparator is omitted only for the first tile of a line without a banner.
func leadingSeparator(sep string, common keys.ModifierSet, first bool) string {
	if common.IsEmpty() && first {
		return ""
	}
	return sep
}

func segmentStyle(m KeyMode, e theme.Elements) theme.SegmentStyle {
	switch m {
	case Selected:
		return e.Selected
	case UnselectedAlternate:
		return e.UnselectedAlternate
	case Disabled:
		return e.Disabled
	default:
		return e.Unselected
	}
}
