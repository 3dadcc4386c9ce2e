package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"voxscribe/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Process every new .mp3 file created in a directory",
	Example: `  voxscribe watch ./inbox
  voxscribe watch --summarize=false --gpt-model=gemini ./inbox`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}

		pl, log := buildPipeline(cfg)

		w, err := watcher.New(args[0], pl.Process, log, cfg.Performance.MaxConcurrent)
		if err != nil {
			return err
		}
		defer w.Stop()

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
