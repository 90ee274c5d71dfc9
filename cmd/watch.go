package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/beakerlabs/reagent/internal/config"
	"github.com/beakerlabs/reagent/internal/telemetry"
	"github.com/beakerlabs/reagent/internal/ui"
	"github.com/beakerlabs/reagent/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run augmentation when inputs change",
	Long: `Watch runs one augmentation pass, then monitors the input dataset and
synonym table and repeats the pass whenever either file is edited. Stops on
ctrl-c.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	addJobFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg := config.Load()
	printer := ui.New()

	j, err := resolveJob(cmd, cfg)
	if err != nil {
		return err
	}

	var emitter *telemetry.Emitter
	if cfg.TelemetryPath != "" {
		emitter, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			return err
		}
		defer emitter.Close()
	}

	// First pass must succeed; later passes report and keep watching, so a
	// half-saved edit does not kill the session.
	stats, err := executeJob(ctx, j, printer, emitter)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.Summary(stats.RowsIn, stats.RowsOut, stats.Augmented)

	w, err := watch.New(j.Input, j.Table)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()
	printer.Watching(2)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case ch := <-w.Changes:
			printer.Rerun(ch.File)
			stats, err := executeJob(ctx, j, printer, emitter)
			if err != nil {
				printer.Error(err.Error())
				continue
			}
			printer.Summary(stats.RowsIn, stats.RowsOut, stats.Augmented)

		case <-interrupt:
			return nil
		}
	}
}
