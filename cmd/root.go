package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peapod-fundraiser/site/internal/config"
	"github.com/peapod-fundraiser/site/internal/logging"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fundraiser",
	Short: "Peapod fundraiser site server",
	Long: `Serves the Peapod fundraiser site: upcoming events, fundraiser
products, the silent auction and other ways to help. The catalog is read
from the BDO service by emojicode and falls back to the local JSON file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine.
		_ = godotenv.Load()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		l, err := logging.New(cfg.Log, verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// withoutConfig is the pre-run hook of commands that must work when the
// config file is missing or broken. The logger stays a no-op.
func withoutConfig(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".fundraiser.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
