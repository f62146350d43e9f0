// Package theme resolves a colour palette into the lipgloss styles used by the status bar.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// ErrUnknownHue is returned when a hue name is neither dark nor light.
var ErrUnknownHue = errors.New("unknown hue")

// Hue classifies a palette so contrasting backgrounds can be picked.
type Hue int

const (
	Dark Hue = iota
	Light
)

func (h Hue) String() string {
	if h == Light {
		return "light"
	}
	return "dark"
}

// ParseHue reads "dark" or "light", case-insensitive.
func ParseHue(s string) (Hue, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return Dark, fmt.Errorf("%w: %q", ErrUnknownHue, s)
	}
}

// Palette holds one resolved colour per semantic slot.
type Palette struct {
	Hue     Hue
	Fg      color.Color
	Bg      color.Color
	Black   color.Color
	White   color.Color
	Red     color.Color
	Green   color.Color
	Orange  color.Color
	Magenta color.Color
	Gray    color.Color
}

// Colors
var (
	defaultFg      = lipgloss.Color("#DCD7BA")
	defaultBg      = lipgloss.Color("#1F1F28")
	defaultBlack   = lipgloss.Color("#16161D")
	defaultWhite   = lipgloss.Color("#FFFFFF")
	defaultRed     = lipgloss.Color("#C34043")
	defaultGreen   = lipgloss.Color("#76946A")
	defaultOrange  = lipgloss.Color("#FF9E3B")
	defaultMagenta = lipgloss.Color("#957FB8")
	defaultGray    = lipgloss.Color("#727169")
)

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() Palette {
	return Palette{
		Hue:     Dark,
		Fg:      defaultFg,
		Bg:      defaultBg,
		Black:   defaultBlack,
		White:   defaultWhite,
		Red:     defaultRed,
		Green:   defaultGreen,
		Orange:  defaultOrange,
		Magenta: defaultMagenta,
		Gray:    defaultGray,
	}
}

// Background is the colour segments are drawn against.
func (p Palette) Background() color.Color {
	if p.Hue == Light {
		return p.White
	}
	return p.Black
}

// Foreground is the text colour that contrasts with Background.
func (p Palette) Foreground() color.Color {
	if p.Hue == Light {
		return p.Black
	}
	return p.White
}

func style(fg, bg color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fg).Background(bg)
}
