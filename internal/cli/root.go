// Package cli implements the keybar command line: rendering a status line
// from a mode snapshot once, or continuously as the snapshot changes.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatter/keybar/internal/config"
	"github.com/chatter/keybar/internal/logger"
)

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "keybar",
		Short: "Render a width-constrained keybinding status line",
		Long: `keybar renders the first line of a terminal multiplexer's status bar:
the mode switch shortcuts of the current input mode, shrunk tile by tile
until they fit the requested width.

The mode, keybindings and palette come from a YAML snapshot. Without one,
keybar renders normal mode with its default keymap.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringP("snapshot", "s", "", "Path to a YAML mode snapshot")
	pf.IntP("width", "w", config.DefaultWidth, "Maximum line width in columns")
	pf.String("separator", config.DefaultSeparator, "Glyph drawn between segments")
	pf.Bool("simplified-ui", false, "Use plain glyphs and spacing")
	pf.Bool("show-mode", false, "Prefix the line with the current mode name")
	pf.StringP("mode", "m", "", "Override the snapshot's current mode")
	pf.String("log-level", "", "Log level: debug, info, warn, error (default off)")
	pf.String("log-dir", "", "Log directory (default $XDG_STATE_HOME/keybar)")

	rootCmd.AddCommand(newRenderCmd(), newWatchCmd(), newKeysCmd())

	return rootCmd
}

// Execute runs the CLI and exits non-zero on error.
func Execute(version string) {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup resolves the configuration and opens the logger for cmd. The
// returned logger must be closed by the caller.
func setup(cmd *cobra.Command) (config.Config, *logger.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}

	log, err := logger.New(cfg.LogLevel, logger.WithDir(cfg.LogDir))
	if err != nil {
		return config.Config{}, nil, err
	}

	log.Debug("config loaded", "command", cmd.Name(), "width", cfg.Width, "snapshot", cfg.Snapshot)
	return cfg, log, nil
}
