/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"os"

	"custdesc/config"
	"custdesc/internal/logging"
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "custdesc",
	Short: "Turn customer CSV exports into purchase descriptions.",
	Long: `
**********************************************
*        CUSTOMER DESCRIPTIONS               *
**********************************************

This CLI reads a comma separated file of customer purchases, normalizes the
header names, and writes one natural-language sentence per customer.

Supported input headers:
- the fixed export layout: name,device_type,browser,sex,age,bill,region
- any comma separated header using known synonyms (fio, gender, amount, ...)
`,
	Example: `
  # Describe customers using the default file names
  custdesc describe

  # Describe a specific file in English
  custdesc describe -i ./clients.csv -o ./descriptions.txt --lang en

  # Write an Excel sheet and archive the run
  custdesc describe -i ./clients.csv -o ./descriptions.xlsx --db ./custdesc.db

  # List archived runs
  custdesc history --db ./custdesc.db

  # Create configuration file
  custdesc config create
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		bindCommandFlags(cmd)
		logging.Setup(cmd.ErrOrStderr(), viper.GetString(config.KeyLogLevel), viper.GetString(config.KeyLogFormat))

		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.custdesc.yaml, then ./.custdesc.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level: debug|info|warn|error")
	rootCmd.PersistentFlags().String("log-format", "text", "Diagnostic log format: text|json")

	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
}

// commandFlagKeys maps command flag names to config keys. Several commands
// share a flag name, so binding happens for the executing command only.
var commandFlagKeys = map[string]string{
	"input":   config.KeyInputPath,
	"output":  config.KeyOutputPath,
	"format":  config.KeyOutputFormat,
	"lang":    config.KeyOutputLanguage,
	"preview": config.KeyOutputPreview,
	"db":      config.KeyArchiveDB,
}

func bindCommandFlags(cmd *cobra.Command) {
	for name, key := range commandFlagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			_ = viper.BindPFlag(key, flag)
		}
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	switch cmd.Name() {
	case "describe", "history":
		return true
	default:
		return false
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".custdesc" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".custdesc")
	}

	config.BindEnv(viper.GetViper())

	// The config file is optional; defaults, env and flags cover every key.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Config file could not be read:", err)
		}
	}
}
