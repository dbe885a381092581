package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/dockbar/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(app.Run).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "dockbar: %v\n", err)
		return 1
	}
	return 0
}

type runFunc func(ctx context.Context, opts app.Options) error

func newRootCmd(runApp runFunc) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "dockbar",
		Short: "A drag-and-drop dock for the terminal",
		Long: `dockbar draws a dock bar along the bottom of the terminal. Drag icons
with the mouse (or pick them up with space) to reorder them, drag them off
the bar to remove them, and click to launch.

Items come from ~/.config/dockbar/config.toml (or a YAML file passed with
--config); without a config a default set of items is shown.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (.toml, .yaml or .yml)")
	cmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/dockbar/prefs.toml)")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "log at debug level")
	cmd.Flags().BoolVar(&opts.Dev, "dev", false, "treat dock invariant violations as errors")
	return cmd
}
