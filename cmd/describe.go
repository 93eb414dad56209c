package cmd

import (
	"custdesc/config"
	"custdesc/pipeline"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

var banner = strings.Repeat("=", 60)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Render one purchase description per customer record",
	Long: `Read the input file, normalize the header, and write one sentence per customer.

Rows whose field count does not fit the header are skipped silently.
A missing or unreadable input file, or an input without records, stops the run
without touching the output file.

Every flag can also be set in the config file or via CUSTDESC_* environment
variables (for example CUSTDESC_INPUT_PATH and CUSTDESC_OUTPUT_PATH).`,
	Example: `
  # Use default file names (web_clients_correct.csv -> customers_descriptions.txt)
  custdesc describe

  # Explicit input and output
  custdesc describe -i ./clients.csv -o ./descriptions.txt

  # English sentences as CSV, without preview
  custdesc describe -i ./clients.csv -o ./descriptions.csv --lang en --preview 0

  # Archive the run in SQLite
  custdesc describe --db ./custdesc.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		return runDescribe(cmd.OutOrStdout(), *cfg)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringP("input", "i", config.DefaultInputPath, "Input CSV file path")
	describeCmd.Flags().StringP("output", "o", config.DefaultOutputPath, "Output file path (overwritten)")
	describeCmd.Flags().StringP("format", "f", "text", "Output format: text|csv|excel")
	describeCmd.Flags().String("lang", "ru", "Description language: ru|en")
	describeCmd.Flags().Int("preview", pipeline.DefaultPreviewCount, "Number of sample descriptions to print")
	describeCmd.Flags().String("db", "", "Path to SQLite run archive (disabled when empty)")
}

// runDescribe prints the run report to w. Early stops are reported, not
// returned, so that the process always exits cleanly after a halted run.
func runDescribe(w io.Writer, cfg config.Config) error {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "Customer description generator")
	fmt.Fprintln(w, banner)

	_, err := pipeline.Run(pipeline.Options{
		InputPath:    cfg.Input.Path,
		OutputPath:   cfg.Output.Path,
		Format:       cfg.Output.Format,
		Language:     cfg.Output.Language,
		PreviewCount: cfg.Output.Preview,
		ArchivePath:  cfg.Archive.DB,
		Progress:     w,
	})

	fmt.Fprintln(w, "\n"+banner)

	if err != nil && pipeline.IsHalt(err) {
		slog.Debug("describe run halted", "reason", err)
		return nil
	}
	return err
}
