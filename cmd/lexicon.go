package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beakerlabs/reagent/internal/config"
	"github.com/beakerlabs/reagent/internal/lexicon"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage the dictionary-sense database",
}

var lexiconImportCmd = &cobra.Command{
	Use:   "import <wordlist>",
	Short: "Load a newline-delimited word list into the lexicon",
	Long: `Import records one dictionary sense per word from a plain word list.
Blank lines and lines starting with # are skipped. The target database is
created if it does not exist.`,
	Args: cobra.ExactArgs(1),
	RunE: runLexiconImport,
}

var lexiconAddCmd = &cobra.Command{
	Use:   "add <word>",
	Short: "Record a single dictionary sense",
	Args:  cobra.ExactArgs(1),
	RunE:  runLexiconAdd,
}

func init() {
	lexiconImportCmd.Flags().String("lexicon", "", "lexicon SQLite database")
	lexiconAddCmd.Flags().String("lexicon", "", "lexicon SQLite database")
	lexiconAddCmd.Flags().String("pos", "", "part of speech")
	lexiconAddCmd.Flags().String("gloss", "", "sense gloss")
	lexiconCmd.AddCommand(lexiconImportCmd)
	lexiconCmd.AddCommand(lexiconAddCmd)
	rootCmd.AddCommand(lexiconCmd)
}

// lexiconPath resolves the database path from the flag, falling back to
// config.
func lexiconPath(cmd *cobra.Command) string {
	if v, _ := cmd.Flags().GetString("lexicon"); v != "" {
		return v
	}
	return config.Load().LexiconPath
}

func runLexiconImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	dbPath := lexiconPath(cmd)

	lex, err := lexicon.OpenSQLite(ctx, dbPath)
	if err != nil {
		return err
	}
	defer lex.Close()

	n, err := lex.ImportWordList(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d words into %s\n", n, dbPath)
	return nil
}

func runLexiconAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	dbPath := lexiconPath(cmd)

	lex, err := lexicon.OpenSQLite(ctx, dbPath)
	if err != nil {
		return err
	}
	defer lex.Close()

	pos, _ := cmd.Flags().GetString("pos")
	gloss, _ := cmd.Flags().GetString("gloss")
	if err := lex.AddSense(ctx, args[0], pos, gloss); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "added sense for %q to %s\n", args[0], dbPath)
	return nil
}
