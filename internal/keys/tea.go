package keys

import (
	"unicode"

	tea "charm.land/bubbletea/v2"
)

var teaNamed = map[rune]BareKey{
	tea.KeyEnter:       Enter,
	tea.KeyEscape:      Esc,
	tea.KeyBackspace:   Backspace,
	tea.KeyTab:         Tab,
	tea.KeyDelete:      Delete,
	tea.KeyInsert:      Insert,
	tea.KeyHome:        Home,
	tea.KeyEnd:         End,
	tea.KeyPgUp:        PageUp,
	tea.KeyPgDown:      PageDown,
	tea.KeyLeft:        Left,
	tea.KeyDown:        Down,
	tea.KeyUp:          Up,
	tea.KeyRight:       Right,
	tea.KeySpace:       Space,
	tea.KeyCapsLock:    Named(KindCapsLock),
	tea.KeyScrollLock:  Named(KindScrollLock),
	tea.KeyNumLock:     Named(KindNumLock),
	tea.KeyPrintScreen: Named(KindPrintScreen),
	tea.KeyPause:       Named(KindPause),
	tea.KeyMenu:        Named(KindMenu),
	tea.KeyF1:          F(1),
	tea.KeyF2:          F(2),
	tea.KeyF3:          F(3),
	tea.KeyF4:          F(4),
	tea.KeyF5:          F(5),
	tea.KeyF6:          F(6),
	tea.KeyF7:          F(7),
	tea.KeyF8:          F(8),
	tea.KeyF9:          F(9),
	tea.KeyF10:         F(10),
	tea.KeyF11:         F(11),
	tea.KeyF12:         F(12),
}

var teaMods = []struct {
	tea tea.KeyMod
	mod Modifier
}{
	{tea.ModCtrl, Ctrl},
	{tea.ModAlt, Alt},
	{tea.ModShift, Shift},
	{tea.ModSuper, Super},
}

// FromKeyPress converts a bubbletea key press into a KeyBinding.
// Unknown special keys report ok=false.
func FromKeyPress(msg tea.KeyPressMsg) (KeyBinding, bool) {
	var mods ModifierSet
	for _, m := range teaMods {
		if msg.Mod&m.tea != 0 {
			mods = mods.Union(Mods(m.mod))
		}
	}

	if b, ok := teaNamed[msg.Code]; ok {
		return KeyBinding{Key: b, Modifiers: mods}, true
	}
	if msg.Code > ' ' && msg.Code <= unicode.MaxRune {
		return KeyBinding{Key: Char(msg.Code), Modifiers: mods}, true
	}
	return KeyBinding{}, false
}

// KeyPress returns the bubbletea key press that k describes.
func (k KeyBinding) KeyPress() tea.KeyPressMsg {
	msg := tea.KeyPressMsg{Code: k.teaCode()}
	for _, m := range teaMods {
		if k.Modifiers.Has(m.mod) {
			msg.Mod |= m.tea
		}
	}
	return msg
}

// Keystroke returns the bubbletea keystroke string for k ("ctrl+a",
// "alt+enter"), suitable for key.WithKeys.
func (k KeyBinding) Keystroke() string {
	return k.KeyPress().String()
}

func (k KeyBinding) teaCode() rune {
	if k.Key.Kind == KindChar {
		return k.Key.Rune
	}
	for code, b := range teaNamed {
		if b == k.Key {
			return code
		}
	}
	return 0
}
