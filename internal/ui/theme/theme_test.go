package theme

import (
	"errors"
	"testing"
)

func TestParseHue(t *testing.T) {
	tests := []struct {
		in       string
		expected Hue
	}{
		{"", Dark},
		{"dark", Dark},
		{"Light", Light},
		{" LIGHT ", Light},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHue(tt.in)
			if err != nil {
				t.Fatalf("ParseHue(%q) error: %v", tt.in, err)
			}
			if got != tt.expected {
				t.Errorf("ParseHue(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}

	if _, err := ParseHue("sepia"); !errors.Is(err, ErrUnknownHue) {
		t.Errorf("ParseHue(sepia) error = %v, want ErrUnknownHue", err)
	}
}

func TestPalette_BackgroundFollowsHue(t *testing.T) {
	p := DefaultPalette()
	if p.Background() != p.Black || p.Foreground() != p.White {
		t.Errorf("dark palette should draw white on black")
	}

	p.Hue = Light
	if p.Background() != p.White || p.Foreground() != p.Black {
		t.Errorf("light palette should draw black on white")
	}
}

func TestNewElements_Alternates(t *testing.T) {
	p := DefaultPalette()

	same := NewElements(p, false)
	if same.UnselectedAlternate.StyledText.GetBackground() != p.Fg {
		t.Errorf("alternate tiles should use the palette foreground by default")
	}

	different := NewElements(p, true)
	if different.UnselectedAlternate.StyledText.GetBackground() != p.Foreground() {
		t.Errorf("alternate tiles should use the contrast colour when requested")
	}
	if different.Unselected.StyledText.GetBackground() != p.Fg {
		t.Errorf("unselected tiles should keep the palette foreground")
	}
}

func TestNewElements_SelectedIsGreen(t *testing.T) {
	p := DefaultPalette()
	e := NewElements(p, false)

	if e.Selected.StyledText.GetBackground() != p.Green {
		t.Errorf("selected tile background = %v, want green", e.Selected.StyledText.GetBackground())
	}
	if e.Selected.SuffixSeparator.GetForeground() != p.Green {
		t.Errorf("selected suffix separator should be drawn in green")
	}
	if !e.Disabled.StyledText.GetItalic() {
		t.Errorf("disabled text should be italic")
	}
}

func TestModeBadge(t *testing.T) {
	p := DefaultPalette()

	if got := ModeBadge(p, true, false).GetForeground(); got != p.Magenta {
		t.Errorf("locked badge = %v, want magenta", got)
	}
	if got := ModeBadge(p, false, true).GetForeground(); got != p.Green {
		t.Errorf("normal badge = %v, want green", got)
	}
	if got := ModeBadge(p, false, false).GetForeground(); got != p.Orange {
		t.Errorf("other badge = %v, want orange", got)
	}
}
