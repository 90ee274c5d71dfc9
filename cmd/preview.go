package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beakerlabs/reagent/internal/augment"
	"github.com/beakerlabs/reagent/internal/config"
	"github.com/beakerlabs/reagent/internal/job"
	"github.com/beakerlabs/reagent/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactively preview augmentation output",
	Long: `Preview expands the dataset's text columns without writing anything and
opens a scrollable view of each phrase and its substitution variants.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	addJobFlags(previewCmd)
	previewCmd.Flags().Int("limit", 200, "maximum rows to preview")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg := config.Load()

	j, err := resolveJob(cmd, cfg)
	if err != nil {
		return err
	}

	p, err := buildPipeline(ctx, j)
	if err != nil {
		return err
	}
	defer p.Close()

	ds, err := augment.ReadCSV(j.Input)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := previewEntries(ctx, p, j, ds, limit)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("reagent preview — %s (%s mode)", j.Input, j.Mode)
	return tui.Run(title, entries)
}

// previewEntries expands every text-bearing phrase of the first limit rows,
// collapsed so only substituted variants appear under each original.
func previewEntries(ctx context.Context, p *pipeline, j *job.Job, ds *augment.Dataset, limit int) ([]tui.Entry, error) {
	var cols []int
	switch j.Mode {
	case job.ModePre:
		for _, name := range []string{j.AnchorColumn, j.TargetColumn} {
			i := ds.Column(name)
			if i < 0 {
				return nil, fmt.Errorf("dataset has no %q column", name)
			}
			cols = append(cols, i)
		}
	case job.ModePost:
		i := ds.Column(j.TextColumn)
		if i < 0 {
			return nil, fmt.Errorf("dataset has no %q column", j.TextColumn)
		}
		cols = append(cols, i)
	default:
		return nil, fmt.Errorf("unknown mode %q", j.Mode)
	}

	var entries []tui.Entry
	for r, row := range ds.Rows {
		if limit > 0 && r >= limit {
			break
		}
		for _, c := range cols {
			phrase := row[c]
			variants, err := p.exp.Expand(ctx, phrase, true)
			if err != nil {
				return nil, err
			}

			entry := tui.Entry{Original: phrase}
			for _, v := range variants {
				if v.Augmented {
					entry.Variants = append(entry.Variants, v.Text)
				}
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
