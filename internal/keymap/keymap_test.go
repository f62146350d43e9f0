package keymap

import (
	"slices"
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"pgregory.net/rapid"

	"github.com/chatter/keybar/internal/keys"
	"github.com/chatter/keybar/internal/mode"
	"github.com/chatter/keybar/internal/testgen"
)

func TestResolve_MatchesAndReturnsActions(t *testing.T) {
	km := Default()

	tests := []struct {
		name     string
		mode     mode.InputMode
		msg      tea.KeyPressMsg
		expected mode.Action
	}{
		{"normal to pane", mode.Normal, tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}, mode.SwitchToMode(mode.Pane)},
		{"alt arrow", mode.Normal, tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModAlt}, mode.MoveFocusOrTab(mode.Left)},
		{"alt vim key", mode.Normal, tea.KeyPressMsg{Code: 'j', Mod: tea.ModAlt}, mode.MoveFocus(mode.Down)},
		{"pane new", mode.Pane, tea.KeyPressMsg{Code: 'n', Text: "n"}, mode.Simple(mode.ActionNewPane)},
		{"pane esc", mode.Pane, tea.KeyPressMsg{Code: tea.KeyEscape}, mode.SwitchToMode(mode.Normal)},
		{"resize equals", mode.Resize, tea.KeyPressMsg{Code: '=', Text: "="}, mode.ResizeBy(mode.Increase)},
		{"locked unlock", mode.Locked, tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}, mode.SwitchToMode(mode.Normal)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions, ok := km.Resolve(tt.mode, tt.msg)
			if !ok {
				t.Fatalf("Resolve(%v, %q) found nothing", tt.mode, tt.msg.String())
			}
			if !slices.Equal(actions, []mode.Action{tt.expected}) {
				t.Errorf("Resolve() = %v, want %v", actions, tt.expected)
			}
		})
	}
}

func TestResolve_NoMatch(t *testing.T) {
	km := Default()

	if _, ok := km.Resolve(mode.Normal, tea.KeyPressMsg{Code: 'z', Text: "z"}); ok {
		t.Error("expected no match for z in normal mode")
	}
	if _, ok := km.Resolve(mode.RenameTab, tea.KeyPressMsg{Code: tea.KeyEnter}); ok {
		t.Error("expected no match in a mode without bindings")
	}
}

func TestResolve_DisabledSkipped(t *testing.T) {
	km := KeyMap{mode.Normal: {bind("^q", "quit", mode.Simple(mode.ActionQuit), "ctrl+q")}}
	km[mode.Normal][0].SetEnabled(false)

	if _, ok := km.Resolve(mode.Normal, tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl}); ok {
		t.Error("disabled binding should not match")
	}
}

func TestKeybinds_Default(t *testing.T) {
	table, err := Default().Keybinds()
	if err != nil {
		t.Fatalf("Keybinds() error: %v", err)
	}

	normal := table[mode.Normal]
	if got := mode.ActionKeys(normal, mode.SwitchToMode(mode.Pane)); !slices.Equal(got, []keys.KeyBinding{keys.MustParse("ctrl+p")}) {
		t.Errorf("pane switch keys = %v", got)
	}
	focus := mode.ActionKeys(normal, mode.MoveFocusOrTab(mode.Left))
	if !slices.Equal(focus, []keys.KeyBinding{keys.New(keys.Left, keys.Alt), keys.New(keys.Char('h'), keys.Alt)}) {
		t.Errorf("focus left keys = %v", focus)
	}

	// Every mode except the base ones returns to normal with enter and esc.
	for _, m := range []mode.InputMode{mode.Pane, mode.Tab, mode.Resize, mode.Move, mode.Scroll, mode.Search, mode.Session} {
		back := mode.ActionKeys(table[m], mode.SwitchToMode(mode.Normal))
		if !slices.Contains(back, keys.New(keys.Enter)) || !slices.Contains(back, keys.New(keys.Esc)) {
			t.Errorf("%v: return keys = %v", m, back)
		}
		if k, ok := mode.DisplayKey(back); !ok || k.IsReturnToNormal() {
			t.Errorf("%v: display key = %v, want the mode's own key", m, k)
		}
	}
}

func TestKeybinds_InvalidKey(t *testing.T) {
	km := KeyMap{mode.Normal: {bind("?", "bad", mode.Simple(mode.ActionQuit), "hyper+x")}}

	if _, err := km.Keybinds(); err == nil {
		t.Error("expected error for unparseable key")
	}
}

func TestKeybinds_SkipsDisabled(t *testing.T) {
	km := KeyMap{mode.Normal: {
		bind("n", "new", mode.Simple(mode.ActionNewPane), "n"),
		{Binding: key.NewBinding(key.WithKeys("x"), key.WithDisabled())},
	}}

	table, err := km.Keybinds()
	if err != nil {
		t.Fatal(err)
	}
	if len(table[mode.Normal]) != 1 {
		t.Errorf("expected 1 binding, got %d", len(table[mode.Normal]))
	}
}

// ============================================================================
// Property Tests
// ============================================================================

func TestFromKeybinds_ResolvesEveryKey(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		table := testgen.Keybinds().Draw(t, "keybinds")
		km := FromKeybinds(table)

		for m, binds := range table {
			for _, b := range binds {
				actions, ok := km.Resolve(m, b.Key.KeyPress())
				if !ok {
					t.Fatalf("%v: %v did not resolve", m, b.Key)
				}
				if !slices.Equal(actions, b.Actions) {
					t.Fatalf("%v: %v resolved to %v, want %v", m, b.Key, actions, b.Actions)
				}
			}
		}
	})
}

func TestFromKeybinds_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		table := testgen.Keybinds().Draw(t, "keybinds")

		got, err := FromKeybinds(table).Keybinds()
		if err != nil {
			t.Fatalf("Keybinds() error: %v", err)
		}
		for m, binds := range table {
			if !slices.EqualFunc(got[m], binds, func(a, b mode.Binding) bool {
				return a.Key == b.Key && slices.Equal(a.Actions, b.Actions)
			}) {
				t.Fatalf("%v: got %v, want %v", m, got[m], binds)
			}
		}
	})
}
