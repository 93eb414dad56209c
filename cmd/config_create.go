package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write the example configuration file.",
	Long: `Write the example custdesc configuration (default file names, text output,
Russian descriptions, archive disabled).

An existing file is never overwritten.`,
	Example: `
  # Create $HOME/.custdesc.yaml
  custdesc config create

  # Create a project-local config
  custdesc --configFile ./.custdesc.yaml config create
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFilePath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}
		return createConfig(cmd.OutOrStdout(), path)
	},
}

func createConfig(w io.Writer, path string) error {
	created, err := writeExampleConfig(path)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(w, "Config file already exists at: %s\n", path)
		return nil
	}
	fmt.Fprintf(w, "Example config written to: %s\n", path)
	return nil
}

func init() {
	configCmd.AddCommand(configCreateCmd)
}
