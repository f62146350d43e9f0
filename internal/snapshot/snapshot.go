// Package snapshot loads the YAML description of a host's mode state and
// turns it into the inputs of one status-bar render.
//
// A snapshot looks like:
//
//	mode: pane
//	base_mode: normal
//	simplified_ui: false
//	palette:
//	  hue: dark
//	  green: "#76946A"
//	tab:
//	  swap_layout: stacked
//	  dirty: false
//	keybinds:
//	  normal:
//	    - key: ctrl+p
//	      actions: [SwitchToMode Pane]
//
// Omitted keybinds fall back to the default keymap.
package snapshot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"regexp"
	"strconv"

	"charm.land/lipgloss/v2"
	"gopkg.in/yaml.v3"

	"github.com/chatter/keybar/internal/keymap"
	"github.com/chatter/keybar/internal/keys"
	"github.com/chatter/keybar/internal/mode"
	"github.com/chatter/keybar/internal/ui/theme"
)

// ErrInvalidSnapshot is returned when a snapshot cannot be decoded or
// refers to unknown modes, keys, actions or colours.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Request is everything one render needs.
type Request struct {
	Info mode.ModeInfo
	Tab  *mode.TabInfo
}

type document struct {
	Mode         string               `yaml:"mode"`
	BaseMode     string               `yaml:"base_mode"`
	SimplifiedUI bool                 `yaml:"simplified_ui"`
	Palette      paletteDoc           `yaml:"palette"`
	Tab          *tabDoc              `yaml:"tab"`
	Keybinds     map[string][]bindDoc `yaml:"keybinds"`
}

type paletteDoc struct {
	Hue     string `yaml:"hue"`
	Fg      string `yaml:"fg"`
	Bg      string `yaml:"bg"`
	Black   string `yaml:"black"`
	White   string `yaml:"white"`
	Red     string `yaml:"red"`
	Green   string `yaml:"green"`
	Orange  string `yaml:"orange"`
	Magenta string `yaml:"magenta"`
	Gray    string `yaml:"gray"`
}

type tabDoc struct {
	SwapLayout string `yaml:"swap_layout"`
	Dirty      bool   `yaml:"dirty"`
}

type bindDoc struct {
	Key     string   `yaml:"key"`
	Actions []string `yaml:"actions"`
}

// Load reads and decodes the snapshot at path.
func Load(path string) (Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return Request{}, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	req, err := Decode(f)
	if err != nil {
		return Request{}, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

// Default returns the request of an empty snapshot: normal mode, the
// default palette and the default keymap.
func Default() (Request, error) {
	return document{}.request()
}

// Decode reads one snapshot document from r. Unknown fields are rejected.
func Decode(r io.Reader) (Request, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Request{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	return doc.request()
}

func (d document) request() (Request, error) {
	var req Request

	current, err := parseMode(d.Mode, "mode")
	if err != nil {
		return Request{}, err
	}
	base, err := parseMode(d.BaseMode, "base_mode")
	if err != nil {
		return Request{}, err
	}
	palette, err := d.Palette.palette()
	if err != nil {
		return Request{}, err
	}
	table, err := d.keybinds()
	if err != nil {
		return Request{}, err
	}

	req.Info = mode.ModeInfo{
		Mode:         current,
		BaseMode:     base,
		Keybinds:     table,
		Palette:      palette,
		Capabilities: mode.Capabilities{SimplifiedUI: d.SimplifiedUI},
	}
	if d.Tab != nil {
		req.Tab = &mode.TabInfo{SwapLayoutName: d.Tab.SwapLayout, SwapLayoutDirty: d.Tab.Dirty}
	}
	return req, nil
}

// parseMode reads a mode name; empty means normal.
func parseMode(s, field string) (mode.InputMode, error) {
	if s == "" {
		return mode.Normal, nil
	}
	m, err := mode.ParseInputMode(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidSnapshot, field, err)
	}
	return m, nil
}

func (d document) keybinds() (mode.Keybinds, error) {
	if d.Keybinds == nil {
		table, err := keymap.Default().Keybinds()
		if err != nil {
			return nil, fmt.Errorf("%w: default keymap: %w", ErrInvalidSnapshot, err)
		}
		return table, nil
	}

	table := make(mode.Keybinds, len(d.Keybinds))
	for name, binds := range d.Keybinds {
		m, err := mode.ParseInputMode(name)
		if err != nil {
			return nil, fmt.Errorf("%w: keybinds: %w", ErrInvalidSnapshot, err)
		}
		for i, b := range binds {
			k, err := keys.Parse(b.Key)
			if err != nil {
				return nil, fmt.Errorf("%w: keybinds.%s[%d]: %w", ErrInvalidSnapshot, name, i, err)
			}
			actions := make([]mode.Action, 0, len(b.Actions))
			for _, s := range b.Actions {
				a, err := mode.ParseAction(s)
				if err != nil {
					return nil, fmt.Errorf("%w: keybinds.%s[%d]: %w", ErrInvalidSnapshot, name, i, err)
				}
				actions = append(actions, a)
			}
			table[m] = append(table[m], mode.Binding{Key: k, Actions: actions})
		}
	}
	return table, nil
}

// colorPattern accepts #rgb and #rrggbb.
var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func (p paletteDoc) palette() (theme.Palette, error) {
	out := theme.DefaultPalette()

	hue, err := theme.ParseHue(p.Hue)
	if err != nil {
		return theme.Palette{}, fmt.Errorf("%w: palette: %w", ErrInvalidSnapshot, err)
	}
	out.Hue = hue

	slots := []struct {
		name string
		val  string
		dst  *color.Color
	}{
		{"fg", p.Fg, &out.Fg},
		{"bg", p.Bg, &out.Bg},
		{"black", p.Black, &out.Black},
		{"white", p.White, &out.White},
		{"red", p.Red, &out.Red},
		{"green", p.Green, &out.Green},
		{"orange", p.Orange, &out.Orange},
		{"magenta", p.Magenta, &out.Magenta},
		{"gray", p.Gray, &out.Gray},
	}
	for _, s := range slots {
		if s.val == "" {
			continue
		}
		if !validColor(s.val) {
			return theme.Palette{}, fmt.Errorf("%w: palette.%s: bad colour %q", ErrInvalidSnapshot, s.name, s.val)
		}
		*s.dst = lipgloss.Color(s.val)
	}
	return out, nil
}

// validColor accepts hex colours and ANSI-256 indices.
func validColor(s string) bool {
	if colorPattern.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
