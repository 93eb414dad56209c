package cmd

import (
	"fmt"
	"github.com/spf13/viper"

	"custdesc/config"
	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

Values include defaults and CUSTDESC_* environment overrides.
This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  custdesc config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Fprintln(out, "Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Fprintln(out, "Config file loaded from:", configPath)
		} else {
			fmt.Fprintln(out, "No config file loaded; using defaults and environment.")
		}
		fmt.Fprintln(out, "Configuration:")
		fmt.Fprintf(out, "%s: %s\n", config.KeyInputPath, cfg.Input.Path)
		fmt.Fprintf(out, "%s: %s\n", config.KeyOutputPath, cfg.Output.Path)
		fmt.Fprintf(out, "%s: %s\n", config.KeyOutputFormat, cfg.Output.Format)
		fmt.Fprintf(out, "%s: %s\n", config.KeyOutputLanguage, cfg.Output.Language)
		fmt.Fprintf(out, "%s: %d\n", config.KeyOutputPreview, cfg.Output.Preview)
		fmt.Fprintf(out, "%s: %s\n", config.KeyArchiveDB, cfg.Archive.DB)
		fmt.Fprintf(out, "%s: %s\n", config.KeyLogLevel, cfg.Log.Level)
		fmt.Fprintf(out, "%s: %s\n", config.KeyLogFormat, cfg.Log.Format)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
