package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beakerlabs/reagent/internal/config"
	"github.com/beakerlabs/reagent/internal/job"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <token>...",
	Short: "Show how the formula classifier treats tokens",
	Long: `Classify runs each token through the formula heuristics and prints the
decision plus any synonyms the table would substitute. Useful for debugging a
synonym table or tuning the exclusion list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	addJobFlags(classifyCmd)
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Load()

	// Classification needs only the table and lexicon, so a missing manifest
	// or input path is not an error here.
	j, err := resolveJob(cmd, cfg)
	if err != nil {
		j = standaloneJob(cmd, cfg)
	}

	p, err := buildPipeline(ctx, j)
	if err != nil {
		return err
	}
	defer p.Close()

	for _, token := range args {
		candidate, err := p.cls.IsCandidate(ctx, token)
		if err != nil {
			return err
		}
		if !candidate {
			fmt.Printf("%-16s not a formula\n", token)
			continue
		}
		syns := p.table.Synonyms(token)
		if len(syns) == 0 {
			fmt.Printf("%-16s candidate, no table entry\n", token)
			continue
		}
		fmt.Printf("%-16s candidate → %s\n", token, strings.Join(syns, "; "))
	}
	return nil
}

// standaloneJob builds a job from table/lexicon flags and config alone,
// skipping dataset validation.
func standaloneJob(cmd *cobra.Command, cfg config.Config) *job.Job {
	j := &job.Job{}
	if v, _ := cmd.Flags().GetString("table"); v != "" {
		j.Table = v
	} else {
		j.Table = cfg.TablePath
	}
	if v, _ := cmd.Flags().GetString("lexicon"); v != "" {
		j.Lexicon = v
	} else {
		j.Lexicon = cfg.LexiconPath
	}
	if v, _ := cmd.Flags().GetString("wordlist"); v != "" {
		j.Wordlist = v
	}
	if v, _ := cmd.Flags().GetString("separator"); v != "" {
		j.Separator = v
	} else {
		j.Separator = cfg.Separator
	}
	j.Exclude, _ = cmd.Flags().GetStringSlice("exclude")
	j.ApplyDefaults()
	return j
}
