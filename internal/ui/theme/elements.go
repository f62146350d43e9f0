package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// SegmentStyle paints the six fragments of a tile.
type SegmentStyle struct {
	PrefixSeparator    lipgloss.Style
	CharLeftSeparator  lipgloss.Style
	CharShortcut       lipgloss.Style
	CharRightSeparator lipgloss.Style
	StyledText         lipgloss.Style
	SuffixSeparator    lipgloss.Style
}

// Elements is the full set of styles a render pass draws with.
type Elements struct {
	Selected                SegmentStyle
	Unselected              SegmentStyle
	UnselectedAlternate     SegmentStyle
	Disabled                SegmentStyle
	SuperkeyPrefix          lipgloss.Style
	SuperkeySuffixSeparator lipgloss.Style
}

// NewElements builds the style set for p. With differentAlternates the
// alternate tiles use the contrast colour instead of the palette foreground,
// which keeps neighbouring tiles apart when no separator glyph is drawn.
func NewElements(p Palette, differentAlternates bool) Elements {
	bg := p.Background()
	alternate := p.Fg
	if differentAlternates {
		alternate = p.Foreground()
	}

	return Elements{
		Selected:            emphasis(p, p.Green, bg, true),
		Unselected:          emphasis(p, p.Fg, bg, false),
		UnselectedAlternate: emphasis(p, alternate, bg, false),
		Disabled: SegmentStyle{
			PrefixSeparator:    style(bg, p.Fg),
			CharLeftSeparator:  style(bg, p.Fg).Faint(true).Italic(true),
			CharShortcut:       style(bg, p.Fg).Faint(true).Italic(true),
			CharRightSeparator: style(bg, p.Fg).Faint(true).Italic(true),
			StyledText:         style(bg, p.Fg).Faint(true).Italic(true),
			SuffixSeparator:    style(p.Fg, bg),
		},
		SuperkeyPrefix:          style(p.Foreground(), bg).Bold(true),
		SuperkeySuffixSeparator: style(bg, bg),
	}
}

func emphasis(p Palette, tile, bg color.Color, boldSuffix bool) SegmentStyle {
	t := lipgloss.NewStyle().Background(tile)
	suffix := lipgloss.NewStyle().Foreground(tile).Background(bg).Bold(boldSuffix)
	return SegmentStyle{
		PrefixSeparator:    t.Foreground(bg),
		CharLeftSeparator:  t.Foreground(bg).Bold(true),
		CharShortcut:       t.Foreground(p.Red).Bold(true),
		CharRightSeparator: t.Foreground(bg).Bold(true),
		StyledText:         t.Foreground(bg).Bold(true),
		SuffixSeparator:    suffix,
	}
}

// HintStyles paints key groups and their labels in the secondary hints.
type HintStyles struct {
	Modifier lipgloss.Style
	Bracket  lipgloss.Style
	Key      lipgloss.Style
	Text     lipgloss.Style
}

// NewHintStyles builds the hint styles for p.
func NewHintStyles(p Palette) HintStyles {
	bg := p.Background()
	return HintStyles{
		Modifier: style(p.Orange, bg).Bold(true),
		Bracket:  style(p.Foreground(), bg),
		Key:      style(p.Green, bg).Bold(true),
		Text:     style(p.Foreground(), bg),
	}
}

// ModeBadge returns the style for the current-mode badge.
func ModeBadge(p Palette, locked, normal bool) lipgloss.Style {
	fg := p.Orange
	switch {
	case locked:
		fg = p.Magenta
	case normal:
		fg = p.Green
	}
	return style(fg, p.Background()).Bold(true)
}
