package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the loaded configuration file.",
	Long: `Delete the configuration file custdesc loaded for this invocation.

Describe keeps working afterwards with built-in defaults and CUSTDESC_*
environment variables.`,
	Example: `
  # Delete the active config
  custdesc config delete

  # Delete a project-local config
  custdesc --configFile ./.custdesc.yaml config delete
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteConfig(cmd.OutOrStdout(), viper.ConfigFileUsed())
	},
}

func deleteConfig(w io.Writer, path string) error {
	if path == "" {
		return fmt.Errorf("no configuration file loaded")
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete config file %s: %w", path, err)
	}
	fmt.Fprintf(w, "Deleted config file: %s\n", path)
	return nil
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}
