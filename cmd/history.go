package cmd

import (
	"custdesc/config"
	"custdesc/storage"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	historyLimit int
	historyRunID int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived describe runs",
	Long: `List runs archived by "describe --db", newest first.

With --run, print the archived descriptions of that run instead.`,
	Example: `
  # List the last 10 runs
  custdesc history --db ./custdesc.db --limit 10

  # Show descriptions of run 3
  custdesc history --db ./custdesc.db --run 3
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := strings.TrimSpace(viper.GetString(config.KeyArchiveDB))
		if dbPath == "" {
			return fmt.Errorf("no archive configured (set --db or archive.db)")
		}

		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if historyRunID > 0 {
			return printRunDescriptions(cmd.OutOrStdout(), store, historyRunID)
		}
		return printRuns(cmd.OutOrStdout(), store, historyLimit)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().String("db", "", "Path to SQLite run archive")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list (0 lists all)")
	historyCmd.Flags().Int64Var(&historyRunID, "run", 0, "Print the descriptions of this run ID")
}

func printRuns(w io.Writer, store *storage.SQLiteStore, limit int) error {
	runs, err := store.ListRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No archived runs.")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-20s %-8s %-4s %-8s %8s %8s  %s -> %s\n", "ID", "Created", "Shape", "Lang", "Format", "Records", "Skipped", "Input", "Output")
	for _, run := range runs {
		fmt.Fprintf(w, "%-6d %-20s %-8s %-4s %-8s %8d %8d  %s -> %s\n",
			run.ID,
			run.CreatedAt.Local().Format(time.DateTime),
			run.HeaderShape,
			run.Language,
			run.Format,
			run.Records,
			run.RowsSkipped,
			run.InputPath,
			run.OutputPath,
		)
	}
	return nil
}

func printRunDescriptions(w io.Writer, store *storage.SQLiteStore, runID int64) error {
	descriptions, err := store.ListDescriptions(runID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run #%d: %d descriptions\n", runID, len(descriptions))
	for _, item := range descriptions {
		fmt.Fprintf(w, "%d (line %d): %s", item.Position, item.LineNumber, item.Text)
	}
	return nil
}
