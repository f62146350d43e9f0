package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/chatter/keybar/internal/config"
	"github.com/chatter/keybar/internal/mode"
	"github.com/chatter/keybar/internal/snapshot"
	"github.com/chatter/keybar/internal/ui/statusbar"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print one status line",
		Long: `Render the status line for a snapshot and print it.

Examples:
  keybar render                              # Normal mode, default keymap
  keybar render -s snapshot.yaml -w 80       # Snapshot at 80 columns
  keybar render -s snapshot.yaml -m pane     # Force pane mode
  KEYBAR_SEPARATOR='|' keybar render         # Plain separator`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	req, err := loadRequest(cfg)
	if err != nil {
		log.Error("loading snapshot failed", "err", err)
		return err
	}

	line, err := Render(req, cfg)
	if err != nil {
		return err
	}
	log.Debug("rendered", "mode", req.Info.Mode, "len", line.Len, "width", cfg.Width)

	return writeLine(cmd.OutOrStdout(), line.String()+"\n")
}

// loadRequest reads the configured snapshot, or the default one when no
// path is set.
func loadRequest(cfg config.Config) (snapshot.Request, error) {
	if cfg.Snapshot == "" {
		return snapshot.Default()
	}
	return snapshot.Load(cfg.Snapshot)
}

// Render applies cfg's overrides to req and renders the line within
// cfg.Width. With ShowMode the mode badge comes first and the rest of the
// line gets the remaining width.
func Render(req snapshot.Request, cfg config.Config) (statusbar.LinePart, error) {
	info := req.Info
	if cfg.Mode != "" {
		m, err := mode.ParseInputMode(cfg.Mode)
		if err != nil {
			return statusbar.LinePart{}, err
		}
		info.Mode = m
	}
	if cfg.SimplifiedUI {
		info.Capabilities.SimplifiedUI = true
	}

	var line statusbar.LinePart
	if cfg.ShowMode {
		line = statusbar.CurrentMode(line, info, cfg.Width)
	}
	return line.Append(statusbar.FirstLine(info, req.Tab, cfg.Width-line.Len, cfg.Separator)), nil
}

// writeLine writes s through a colour-profile writer so styles degrade to
// what the terminal supports, or to plain text when it is not a terminal.
func writeLine(w io.Writer, s string) error {
	out := colorprofile.NewWriter(w, os.Environ())
	if _, err := io.WriteString(out, s); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}
