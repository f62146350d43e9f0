package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/chatter/keybar/internal/snapshot"
)

var errNoSnapshot = errors.New("watch needs --snapshot")

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-render whenever the snapshot changes",
		Long: `Render the status line, then redraw it in place each time the snapshot
file changes. Runs until interrupted.

Examples:
  keybar watch -s snapshot.yaml
  keybar watch -s snapshot.yaml --show-mode -w 100`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.Snapshot == "" {
		return errNoSnapshot
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	err = snapshot.Watch(ctx, cfg.Snapshot, log, func(req snapshot.Request, loadErr error) {
		if loadErr != nil {
			log.Warn("snapshot reload failed", "err", loadErr)
			fmt.Fprintln(errOut, "error:", loadErr)
			return
		}

		line, err := Render(req, cfg)
		if err != nil {
			log.Warn("render failed", "err", err)
			fmt.Fprintln(errOut, "error:", err)
			return
		}

		if err := writeLine(out, "\r"+ansi.EraseEntireLine+line.String()); err != nil {
			log.Error("write failed", "err", err)
		}
	})

	fmt.Fprintln(out)
	return err
}
