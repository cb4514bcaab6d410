package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/peapod-fundraiser/site/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fundraiser site server",
	Long: `Serves the home page, the silent auction page, the configured named
pages and every other file in the static directory. Each page view resolves
the catalog again: the BDO service first, then the local JSON file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		srv, err := server.New(server.Config{
			Port:       cfg.Server.Port,
			StaticDir:  cfg.Server.StaticDir,
			AllowAll:   cfg.Server.AllowAllOrigins,
			NamedPages: cfg.Server.NamedPages,
			Hidden:     cfg.Server.Hidden,
			SiteName:   cfg.Server.SiteName,
		}, newResolver(cfg), logger.Named("server"))
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("starting fundraiser site",
			zap.String("version", Version),
			zap.String("local_catalog", cfg.LocalCatalog()),
			zap.Bool("remote_catalog", cfg.Catalog.Remote.Enabled),
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serving: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
