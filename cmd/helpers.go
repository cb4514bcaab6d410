package cmd

import (
	"fmt"
	"net/http"

	"github.com/peapod-fundraiser/site/internal/config"
	"github.com/peapod-fundraiser/site/internal/source"
)

// loadConfig returns the validated config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	if appConfig == nil {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w\nRun `fundraiser init` to create a config file", err)
		}
		appConfig = cfg
	}
	if err := appConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w\nRun `fundraiser init` to recreate it", cfgFile, err)
	}
	return appConfig, nil
}

// newResolver builds the catalog resolver from cfg: the BDO source when
// enabled, then the local catalog.
func newResolver(cfg *config.Config) *source.Resolver {
	client := &http.Client{}

	var remote source.Source
	if r := cfg.Catalog.Remote; r.Enabled {
		remote = source.NewBDOSource(r.BaseURL, r.Emojicode, r.EnvelopeField, client)
	}
	local := source.NewLocal(cfg.LocalCatalog(), client)

	return source.NewResolver(remote, local, logger.Named("source"))
}
