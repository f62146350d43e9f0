package mode

import (
	"github.com/chatter/keybar/internal/ui/theme"
)

// Capabilities are the terminal features the host detected.
type Capabilities struct {
	// SimplifiedUI requests plain glyphs without arrow separators.
	SimplifiedUI bool
}

// ArrowFonts reports whether arrow glyphs may be drawn. The shared-modifier
// banner keeps a trailing space only in that case.
func (c Capabilities) ArrowFonts() bool {
	return !c.SimplifiedUI
}

// TabInfo is the active tab's swap-layout state.
type TabInfo struct {
	SwapLayoutName  string
	SwapLayoutDirty bool
}

// ModeInfo is the snapshot the host hands over for one render.
type ModeInfo struct {
	Mode         InputMode
	BaseMode     InputMode
	Keybinds     Keybinds
	Palette      theme.Palette
	Capabilities Capabilities
}

// ModeKeybinds returns the bindings active in the current mode.
func (m ModeInfo) ModeKeybinds() []Binding {
	return m.Keybinds[m.Mode]
}

// KeybindsFor returns the bindings of mode.
func (m ModeInfo) KeybindsFor(mode InputMode) []Binding {
	return m.Keybinds[mode]
}
