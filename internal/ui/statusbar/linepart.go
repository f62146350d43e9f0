// Package statusbar renders the single-line keybinding bar. Every function is
// pure: it takes the line built so far and returns the extended line.
package statusbar

import (
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// LinePart is styled text plus its visible character count.
// Len never includes escape sequences.
type LinePart struct {
	Part string
	Len  int
}

// Append returns l followed by o.
func (l LinePart) Append(o LinePart) LinePart {
	return LinePart{Part: l.Part + o.Part, Len: l.Len + o.Len}
}

// IsEmpty reports whether nothing visible was rendered.
func (l LinePart) IsEmpty() bool {
	return l.Len == 0
}

// Plain returns the text with all styling removed.
func (l LinePart) Plain() string {
	return ansi.Strip(l.Part)
}

func (l LinePart) String() string {
	return l.Part
}

// fragment is one styled piece of a tile.
type fragment struct {
	style lipgloss.Style
	text  string
}

// paint renders the fragments in order, counting characters of the raw text.
func paint(frags ...fragment) LinePart {
	var b strings.Builder
	n := 0
	for _, f := range frags {
		if f.text == "" {
			continue
		}
		b.WriteString(f.style.Render(f.text))
		n += utf8.RuneCountInString(f.text)
	}
	return LinePart{Part: b.String(), Len: n}
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
