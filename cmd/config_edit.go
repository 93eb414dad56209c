package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in an editor and validate it.",
	Long: `Open the custdesc configuration in $VISUAL, $EDITOR or vi.

The example config is written first when no file exists. After the editor
exits, output.format, output.language and the other keys are validated.`,
	Example: `
  # Edit the active config
  custdesc config edit

  # Edit with a specific editor
  EDITOR="nano" custdesc config edit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path, err := configFilePath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		created, err := writeExampleConfig(path)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "Example config written to: %s\n", path)
		}

		editor, err := editorFor(os.Getenv("VISUAL"), os.Getenv("EDITOR"), path)
		if err != nil {
			return err
		}
		editor.Stdin = cmd.InOrStdin()
		editor.Stdout = out
		editor.Stderr = cmd.ErrOrStderr()
		if err := editor.Run(); err != nil {
			return fmt.Errorf("run editor: %w", err)
		}

		return checkConfigFile(out, path)
	},
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
