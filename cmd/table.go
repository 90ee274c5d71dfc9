package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/beakerlabs/reagent/internal/config"
	"github.com/beakerlabs/reagent/internal/formula"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Inspect the synonym table",
	Long: `Table loads the synonym table and prints its shape: how many formulas it
maps, how many carry multiple names, and the densest entries.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	tableCmd.Flags().String("table", "", "synonym table CSV")
	tableCmd.Flags().Int("top", 5, "number of densest entries to show")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	path, _ := cmd.Flags().GetString("table")
	if path == "" {
		path = cfg.TablePath
	}

	table, err := formula.LoadTable(path)
	if err != nil {
		return err
	}

	multi := 0
	names := 0
	keys := table.Formulas()
	for _, k := range keys {
		n := len(table.Synonyms(k))
		names += n
		if n > 1 {
			multi++
		}
	}

	fmt.Printf("table:       %s\n", path)
	fmt.Printf("formulas:    %d\n", table.Len())
	fmt.Printf("names:       %d\n", names)
	fmt.Printf("multi-name:  %d\n", multi)

	top, _ := cmd.Flags().GetInt("top")
	if top <= 0 || len(keys) == 0 {
		return nil
	}

	sort.Slice(keys, func(i, j int) bool {
		ni, nj := len(table.Synonyms(keys[i])), len(table.Synonyms(keys[j]))
		if ni != nj {
			return ni > nj
		}
		return keys[i] < keys[j]
	})
	if top > len(keys) {
		top = len(keys)
	}

	fmt.Println()
	for _, k := range keys[:top] {
		fmt.Printf("  %-12s %d name(s)\n", k, len(table.Synonyms(k)))
	}
	return nil
}
