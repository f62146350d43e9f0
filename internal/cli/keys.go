package cli

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/chatter/keybar/internal/keymap"
	"github.com/chatter/keybar/internal/keys"
	"github.com/chatter/keybar/internal/mode"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys [key]",
		Short: "List or resolve the bindings of a mode",
		Long: `Without arguments, list every binding of the current mode.
With a key ("ctrl+p", "alt+left", "x"), print the actions it triggers.

Examples:
  keybar keys                     # Normal mode, default keymap
  keybar keys -m pane             # Pane mode bindings
  keybar keys -s snap.yaml ctrl+g # What ctrl+g does in the snapshot's mode`,
		Args: cobra.MaximumNArgs(1),
		RunE: runKeys,
	}
}

func runKeys(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	req, err := loadRequest(cfg)
	if err != nil {
		return err
	}

	m := req.Info.Mode
	if cfg.Mode != "" {
		if m, err = mode.ParseInputMode(cfg.Mode); err != nil {
			return err
		}
	}

	km := keymap.FromKeybinds(req.Info.Keybinds)
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		k, err := keys.Parse(args[0])
		if err != nil {
			return err
		}
		actions, ok := km.Resolve(m, k.KeyPress())
		if !ok {
			return fmt.Errorf("%s is not bound in %s mode", k, m)
		}
		names := make([]string, 0, len(actions))
		for _, a := range actions {
			names = append(names, a.String())
		}
		fmt.Fprintln(out, strings.Join(names, "; "))
		return nil
	}

	if len(km[m]) == 0 {
		return nil
	}
	return writeLine(out, bindingTable(km[m]).Render()+"\n")
}

// bindingTable lays out one "key  action" row per binding, without borders.
func bindingTable(bindings []keymap.ActionBinding) *table.Table {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return lipgloss.NewStyle().Bold(true).PaddingRight(1)
			}
			return lipgloss.NewStyle()
		})
	for _, ab := range bindings {
		h := ab.Help()
		t.Row(h.Key, h.Desc)
	}
	return t
}
