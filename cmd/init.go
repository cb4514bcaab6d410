package cmd

import (
	"github.com/spf13/cobra"

	"github.com/peapod-fundraiser/site/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the site configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the fundraiser site and writes the config file (.fundraiser.yml by default).`,
	// init replaces the config, so it must run even when the current one
	// does not load.
	PersistentPreRunE: withoutConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
