package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beakerlabs/reagent/internal/augment"
	"github.com/beakerlabs/reagent/internal/config"
	"github.com/beakerlabs/reagent/internal/expand"
	"github.com/beakerlabs/reagent/internal/formula"
	"github.com/beakerlabs/reagent/internal/job"
	"github.com/beakerlabs/reagent/internal/lexicon"
)

// addJobFlags registers the flags shared by every command that drives an
// augmentation run. Flags override the job manifest, which overrides config
// defaults.
func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().String("job", "reagent.toml", "job manifest path")
	cmd.Flags().String("input", "", "input dataset CSV")
	cmd.Flags().String("output", "", "output CSV (default <input>.augmented.csv)")
	cmd.Flags().String("mode", "", "augmentation mode: pre or post")
	cmd.Flags().Bool("collapse", false, "drop unmodified originals from expansions")
	cmd.Flags().String("table", "", "synonym table CSV")
	cmd.Flags().String("lexicon", "", "lexicon SQLite database")
	cmd.Flags().String("wordlist", "", "plain word list used instead of the lexicon database")
	cmd.Flags().String("separator", "", "segment separator token")
	cmd.Flags().String("anchor-column", "", "anchor column name (pre mode)")
	cmd.Flags().String("target-column", "", "target column name (pre mode)")
	cmd.Flags().String("text-column", "", "text column name (post mode)")
	cmd.Flags().StringSlice("exclude", nil, "tokens never treated as formulas")
}

// resolveJob assembles the effective job from manifest, config defaults, and
// flag overrides. A missing manifest is fine as long as flags carry the
// required paths.
func resolveJob(cmd *cobra.Command, cfg config.Config) (*job.Job, error) {
	manifestPath, _ := cmd.Flags().GetString("job")

	j, err := job.Load(manifestPath)
	if errors.Is(err, job.ErrNoManifest) {
		j = &job.Job{}
	} else if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("input"); v != "" {
		j.Input = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		j.Output = v
	}
	if v, _ := cmd.Flags().GetString("mode"); v != "" {
		j.Mode = v
	}
	if cmd.Flags().Changed("collapse") {
		j.Collapse, _ = cmd.Flags().GetBool("collapse")
	}
	if v, _ := cmd.Flags().GetString("table"); v != "" {
		j.Table = v
	}
	if v, _ := cmd.Flags().GetString("lexicon"); v != "" {
		j.Lexicon = v
	}
	if v, _ := cmd.Flags().GetString("wordlist"); v != "" {
		j.Wordlist = v
	}
	if v, _ := cmd.Flags().GetString("separator"); v != "" {
		j.Separator = v
	}
	if v, _ := cmd.Flags().GetString("anchor-column"); v != "" {
		j.AnchorColumn = v
	}
	if v, _ := cmd.Flags().GetString("target-column"); v != "" {
		j.TargetColumn = v
	}
	if v, _ := cmd.Flags().GetString("text-column"); v != "" {
		j.TextColumn = v
	}
	if v, _ := cmd.Flags().GetStringSlice("exclude"); len(v) > 0 {
		j.Exclude = append(j.Exclude, v...)
	}

	// Config fills whatever neither manifest nor flags set.
	if j.Table == "" {
		j.Table = cfg.TablePath
	}
	if j.Lexicon == "" {
		j.Lexicon = cfg.LexiconPath
	}
	if j.Separator == "" {
		j.Separator = cfg.Separator
	}

	j.ApplyDefaults()
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return j, nil
}

// pipeline holds the wired collaborators for one run.
type pipeline struct {
	table *formula.Table
	cls   *formula.Classifier
	exp   *expand.Expander
	aug   *augment.Augmenter
	lex   *lexicon.SQLite
}

// buildPipeline opens the lexicon and loads the synonym table, failing fast
// when either resource is unusable. A job with a wordlist reads it into a
// static lexicon instead of touching the database.
func buildPipeline(ctx context.Context, j *job.Job) (*pipeline, error) {
	table, err := formula.LoadTable(j.Table)
	if err != nil {
		return nil, err
	}

	var lex lexicon.Lexicon
	var db *lexicon.SQLite
	if j.Wordlist != "" {
		lex, err = lexicon.LoadWordList(j.Wordlist)
	} else {
		db, err = lexicon.OpenSQLite(ctx, j.Lexicon)
		lex = db
	}
	if err != nil {
		return nil, err
	}

	cls := formula.NewClassifier(lex, j.Exclude)
	exp := expand.New(formula.NewResolver(cls, table), j.Separator)
	return &pipeline{
		table: table,
		cls:   cls,
		exp:   exp,
		aug:   augment.New(exp),
		lex:   db,
	}, nil
}

// Close releases the pipeline's lexicon handle, if it holds one.
func (p *pipeline) Close() error {
	if p.lex == nil {
		return nil
	}
	return p.lex.Close()
}

// run executes the job's augmentation mode over the dataset.
func (p *pipeline) run(ctx context.Context, j *job.Job, ds *augment.Dataset) (*augment.Dataset, augment.Stats, error) {
	switch j.Mode {
	case job.ModePre:
		return p.aug.Pre(ctx, ds, j.AnchorColumn, j.TargetColumn, j.Collapse)
	case job.ModePost:
		return p.aug.Post(ctx, ds, j.TextColumn)
	default:
		return nil, augment.Stats{}, fmt.Errorf("unknown mode %q", j.Mode)
	}
}
