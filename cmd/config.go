package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage custdesc configuration file values.",
	Long: `Create, edit, display, and delete the custdesc configuration file.

The configuration stores defaults for the describe command:
- input.path / output.path
- output.format / output.language / output.preview
- archive.db
- log.level / log.format`,
	Example: `
  # Create default config in $HOME/.custdesc.yaml
  custdesc config create

  # Show active config and source file
  custdesc config show

  # Open active config in editor (creates example if missing)
  custdesc config edit

  # Delete active config file
  custdesc config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
