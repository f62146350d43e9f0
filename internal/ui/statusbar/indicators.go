package statusbar

import (
	"github.com/chatter/keybar/internal/keys"
	"github.com/chatter/keybar/internal/ui/theme"
)

// Superkey renders the shared-modifier banner, " Ctrl + " followed by sep.
// Without arrow fonts the trailing space is dropped. No modifiers, no banner.
func Superkey(common keys.ModifierSet, e theme.Elements, sep string, arrowFonts bool) LinePart {
	if common.IsEmpty() {
		return LinePart{}
	}
	text := " " + common.String() + " +"
	if arrowFonts {
		text += " "
	}
	return paint(
		fragment{e.SuperkeyPrefix, text},
		fragment{e.SuperkeySuffixSeparator, sep},
	)
}

// KeyIndicators appends shortcuts to line at the most verbose tier that
// keeps the line strictly shorter than maxLen. The banner for common is part
// of every attempt. If no tier fits, line is returned unchanged.
func KeyIndicators(line LinePart, maxLen int, shortcuts []KeyShortcut, common keys.ModifierSet, e theme.Elements, sep string, arrowFonts bool) LinePart {
	if len(shortcuts) == 0 {
		return line
	}

	banner := Superkey(common, e, sep, arrowFonts)
	for _, t := range tiers {
		batch := banner
		for _, s := range shortcuts {
			first := line.IsEmpty() && batch.IsEmpty()
			batch = batch.Append(Tile(t, s, e, sep, common, first))
		}
		if line.Len+batch.Len < maxLen {
			return line.Append(batch)
		}
	}

	return line
}
