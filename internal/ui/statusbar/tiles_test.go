package statusbar

import (
	"testing"
	"unicode/utf8"

	"github.com/chatter/keybar/internal/keys"
	"github.com/chatter/keybar/internal/testgen"
	"github.com/chatter/keybar/internal/ui/theme"
	"pgregory.net/rapid"
)

func elements() theme.Elements {
	return theme.NewElements(theme.DefaultPalette(), false)
}

func bound(m KeyMode, a KeyAction, k keys.KeyBinding) KeyShortcut {
	return NewShortcut(m, a, k, true)
}

func unbound(m KeyMode, a KeyAction) KeyShortcut {
	return KeyShortcut{Mode: m, Action: a}
}

var (
	zero     = keys.New(keys.Char('0'))
	ctrlZero = keys.New(keys.Char('0'), keys.Ctrl)
	ctrl     = keys.Mods(keys.Ctrl)
)

// =============================================================================
// Long tiles
// =============================================================================

func TestLongTile(t *testing.T) {
	tests := []struct {
		name     string
		shortcut KeyShortcut
		common   keys.ModifierSet
		first    bool
		expected string
	}{
		{"selected with binding", bound(Selected, ActionSession, zero), keys.NoModifiers, false, "+ <0> SESSION +"},
		{"unselected with binding", bound(Unselected, ActionSession, zero), keys.NoModifiers, false, "+ <0> SESSION +"},
		{"alternate with binding", bound(UnselectedAlternate, ActionSession, zero), keys.NoModifiers, false, "+ <0> SESSION +"},
		{"selected without binding", unbound(Selected, ActionSession), keys.NoModifiers, false, ""},
		{"first tile", bound(Selected, ActionSession, zero), keys.NoModifiers, true, " <0> SESSION +"},
		{"shared ctrl", bound(Selected, ActionSession, ctrlZero), ctrl, false, "+ <0> SESSION +"},
		{"unshared ctrl", bound(Selected, ActionSession, ctrlZero), keys.NoModifiers, false, "+ <Ctrl 0> SESSION +"},
		{"disabled with binding", bound(Disabled, ActionSession, zero), keys.NoModifiers, false, "+ <0> SESSION +"},
		{"disabled without binding", unbound(Disabled, ActionSession), keys.NoModifiers, false, "+ <> SESSION +"},
		{"shared ctrl first tile", bound(Selected, ActionSession, ctrlZero), ctrl, true, "+ <0> SESSION +"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LongTile(tt.shortcut, elements(), "+", tt.common, tt.first)
			if got.Plain() != tt.expected {
				t.Errorf("LongTile() = %q, want %q", got.Plain(), tt.expected)
			}
			if got.Len != utf8.RuneCountInString(tt.expected) {
				t.Errorf("LongTile() len = %d, want %d", got.Len, utf8.RuneCountInString(tt.expected))
			}
		})
	}
}

func TestShortenedModifierTile(t *testing.T) {
	ctrlAltZero := keys.New(keys.Char('0'), keys.Ctrl, keys.Alt)

	tests := []struct {
		name     string
		shortcut KeyShortcut
		common   keys.ModifierSet
		expected string
	}{
		{"no modifiers", bound(Selected, ActionPane, zero), keys.NoModifiers, "+ <0> PANE +"},
		{"compressed", bound(Selected, ActionPane, ctrlAltZero), keys.NoModifiers, "+ <^C-^A 0> PANE +"},
		{"common stripped", bound(Selected, ActionPane, ctrlAltZero), ctrl, "+ <^A 0> PANE +"},
		{"all stripped", bound(Selected, ActionPane, ctrlZero), ctrl, "+ <0> PANE +"},
		{"disabled without binding", unbound(Disabled, ActionPane), keys.NoModifiers, "+ <> PANE +"},
		{"unselected without binding", unbound(Unselected, ActionPane), keys.NoModifiers, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortenedModifierTile(tt.shortcut, elements(), "+", tt.common, false)
			if got.Plain() != tt.expected {
				t.Errorf("ShortenedModifierTile() = %q, want %q", got.Plain(), tt.expected)
			}
		})
	}
}

// =============================================================================
// Short tiles
// =============================================================================

func TestShortTile(t *testing.T) {
	tests := []struct {
		name     string
		shortcut KeyShortcut
		common   keys.ModifierSet
		first    bool
		expected string
	}{
		{"selected with binding", bound(Selected, ActionSession, zero), keys.NoModifiers, false, "+ 0 +"},
		{"unshared ctrl", bound(Selected, ActionSession, ctrlZero), keys.NoModifiers, false, "+ Ctrl 0 +"},
		{"shared ctrl", bound(Selected, ActionSession, ctrlZero), ctrl, false, "+ 0 +"},
		{"first tile", bound(Selected, ActionSession, zero), keys.NoModifiers, true, " 0 +"},
		{"unselected with binding", bound(Unselected, ActionSession, zero), keys.NoModifiers, false, "+ 0 +"},
		{"alternate with binding", bound(UnselectedAlternate, ActionSession, zero), keys.NoModifiers, false, "+ 0 +"},
		{"disabled with binding", bound(Disabled, ActionSession, zero), keys.NoModifiers, false, "+ 0 +"},
		{"selected without binding", unbound(Selected, ActionSession), keys.NoModifiers, false, ""},
		{"unselected without binding", unbound(Unselected, ActionSession), keys.NoModifiers, false, ""},
		{"alternate without binding", unbound(UnselectedAlternate, ActionSession), keys.NoModifiers, false, ""},
		{"disabled without binding", unbound(Disabled, ActionSession), keys.NoModifiers, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortTile(tt.shortcut, elements(), "+", tt.common, tt.first)
			if got.Plain() != tt.expected {
				t.Errorf("ShortTile() = %q, want %q", got.Plain(), tt.expected)
			}
			if got.Len != utf8.RuneCountInString(tt.expected) {
				t.Errorf("ShortTile() len = %d, want %d", got.Len, utf8.RuneCountInString(tt.expected))
			}
		})
	}
}

func TestLetterShortcut_Unbound(t *testing.T) {
	s := unbound(Selected, ActionPane)
	if got := s.LetterShortcut(ctrl); got != "?" {
		t.Errorf("LetterShortcut() = %q, want ?", got)
	}
	if got := s.ShortenedModifiers(ctrl); got != "?" {
		t.Errorf("ShortenedModifiers() = %q, want ?", got)
	}
}

func TestActionFromMode_Labels(t *testing.T) {
	if got := ActionUnlock.Label(); got != "UNLOCK" {
		t.Errorf("Unlock label = %q", got)
	}
	if got := ActionNormal.Label(); got != "UNLOCK" {
		t.Errorf("Normal label = %q", got)
	}
	if got := ActionTmux.Label(); got != "TMUX" {
		t.Errorf("Tmux label = %q", got)
	}
}

// =============================================================================
// Property Tests
// =============================================================================

func genShortcut(t *rapid.T) KeyShortcut {
	m := rapid.SampledFrom([]KeyMode{Unselected, UnselectedAlternate, Selected, Disabled}).Draw(t, "mode")
	a := rapid.SampledFrom([]KeyAction{
		ActionNormal, ActionLock, ActionUnlock, ActionPane, ActionTab, ActionResize,
		ActionSearch, ActionQuit, ActionSession, ActionMove, ActionTmux,
	}).Draw(t, "action")
	if rapid.Bool().Draw(t, "unbound") {
		return unbound(m, a)
	}
	return bound(m, a, testgen.KeyBinding().Draw(t, "key"))
}

func genSeparator(t *rapid.T) string {
	return rapid.SampledFrom([]string{"", ">", "", "+", "||"}).Draw(t, "sep")
}

func TestTile_LenMatchesVisibleText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := genShortcut(t)
		tier := rapid.SampledFrom(tiers).Draw(t, "tier")
		sep := genSeparator(t)
		common := testgen.Modifiers().Draw(t, "common")
		first := rapid.Bool().Draw(t, "first")

		got := Tile(tier, s, elements(), sep, common, first)

		if got.Len != utf8.RuneCountInString(got.Plain()) {
			t.Fatalf("%v tile len %d, visible %q has %d chars", tier, got.Len, got.Plain(), utf8.RuneCountInString(got.Plain()))
		}
	})
}

func TestTile_UnboundRendersEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := rapid.SampledFrom([]KeyMode{Unselected, UnselectedAlternate, Selected}).Draw(t, "mode")
		tier := rapid.SampledFrom(tiers).Draw(t, "tier")

		got := Tile(tier, unbound(m, ActionPane), elements(), genSeparator(t), testgen.Modifiers().Draw(t, "common"), rapid.Bool().Draw(t, "first"))

		if !got.IsEmpty() || got.Part != "" {
			t.Fatalf("unbound %v tile rendered %q", m, got.Plain())
		}
	})
}

func TestTile_CommonModifiersNeverPrinted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		k := testgen.KeyBinding(testgen.WithCtrl).Draw(t, "key")
		s := bound(Selected, ActionMove, k)

		got := LongTile(s, elements(), ">", k.Modifiers, false).Plain()
		want := "> <" + k.Key.String() + "> MOVE >"

		if got != want {
			t.Fatalf("LongTile() = %q, want %q", got, want)
		}
	})
}
