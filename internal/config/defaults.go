package config

// DefaultHidden are static paths never served: configuration, secrets,
// process manager logs and source files.
var DefaultHidden = []string{
	".*",
	"**/.*/**",
	"*.yml",
	"*.yaml",
	"*.go",
	"go.mod",
	"go.sum",
	"logs/**",
	"node_modules/**",
}

// DefaultRemoteBaseURL is the BDO emojicode lookup endpoint.
const DefaultRemoteBaseURL = "https://plr.allyabase.com/plugin/allyabase/bdo/emoji"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            4040,
			SiteName:        "Peapod Fundraiser",
			StaticDir:       ".",
			AllowAllOrigins: true,
			NamedPages:      []string{"top-secret-goal-monitor"},
			Hidden:          append([]string(nil), DefaultHidden...),
		},
		Catalog: CatalogConfig{
			Local: "fundraising-data.json",
			Remote: RemoteConfig{
				Enabled:       true,
				BaseURL:       DefaultRemoteBaseURL,
				Emojicode:     "🌱🎉💚",
				EnvelopeField: "bdo",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
