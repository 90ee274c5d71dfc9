package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/beakerlabs/reagent/internal/augment"
	"github.com/beakerlabs/reagent/internal/config"
	"github.com/beakerlabs/reagent/internal/job"
	"github.com/beakerlabs/reagent/internal/telemetry"
	"github.com/beakerlabs/reagent/internal/ui"
)

var augmentCmd = &cobra.Command{
	Use:   "augment",
	Short: "Run one augmentation pass over a dataset",
	Long: `Augment reads a CSV dataset, expands formula tokens in its text columns
into compound-name variants, and writes the expanded dataset.

Pre mode expands two comparison columns (anchor/target) into their full
cross-product per row and appends an augmented flag column. Post mode expands
a single pre-formatted text column, one output row per variant.`,
	Args: cobra.NoArgs,
	RunE: runAugment,
}

func init() {
	addJobFlags(augmentCmd)
	rootCmd.AddCommand(augmentCmd)
}

func runAugment(cmd *cobra.Command, _ []string) error {
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

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose || cfg.Verbose {
		printer.Banner()
	}

	stats, err := executeJob(ctx, j, printer, emitter)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.Summary(stats.RowsIn, stats.RowsOut, stats.Augmented)
	return nil
}

// executeJob performs a full load-expand-write cycle for the job. Shared with
// the watch command, which repeats it per input change.
func executeJob(ctx context.Context, j *job.Job, printer *ui.Printer, emitter *telemetry.Emitter) (augment.Stats, error) {
	_ = emitter.Emit(telemetry.Event{Timestamp: time.Now(), Kind: telemetry.KindRunStart, Input: j.Input})

	p, err := buildPipeline(ctx, j)
	if err != nil {
		return augment.Stats{}, err
	}
	defer p.Close()

	printer.TableLoaded(p.table.Len(), j.Table)
	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindTableLoaded,
		Data:      map[string]int{"formulas": p.table.Len()},
	})

	ds, err := augment.ReadCSV(j.Input)
	if err != nil {
		return augment.Stats{}, err
	}
	printer.RunStart(j.Mode, j.Input, len(ds.Rows))

	p.aug.RowHook = func(row, variants int) {
		_ = emitter.Emit(telemetry.Event{
			Timestamp: time.Now(),
			Kind:      telemetry.KindRowExpanded,
			Input:     j.Input,
			Data:      map[string]int{"row": row, "variants": variants},
		})
	}

	out, stats, err := p.run(ctx, j, ds)
	if err != nil {
		return augment.Stats{}, err
	}

	if err := augment.WriteCSV(j.OutputPath(), out); err != nil {
		return augment.Stats{}, err
	}

	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindRunDone,
		Input:     j.Input,
		Data: map[string]int{
			"rows_in":   stats.RowsIn,
			"rows_out":  stats.RowsOut,
			"augmented": stats.Augmented,
		},
	})
	return stats, nil
}
