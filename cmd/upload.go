package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peapod-fundraiser/site/internal/upload"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Check the local catalog and explain how to publish it to BDO",
	Long: `Reads the local fundraising catalog, prints what it contains and the
steps for publishing it to the BDO service under an emojicode. Nothing is
sent over the network.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := cfg.LocalCatalog()
		summary, err := upload.Inspect(path)
		if err != nil {
			logger.Error("reading local catalog", zap.String("path", path), zap.Error(err))
			return err
		}

		r := cfg.Catalog.Remote
		return upload.Report(os.Stdout, summary, strings.TrimRight(r.BaseURL, "/")+"/"+r.Emojicode)
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
