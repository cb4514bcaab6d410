package config

// Config is the top-level fundraiser site configuration, corresponding to
// .fundraiser.yml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Catalog CatalogConfig `yaml:"catalog" koanf:"catalog"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port            int    `yaml:"port" koanf:"port"`
	SiteName        string `yaml:"site_name" koanf:"site_name"`
	StaticDir       string `yaml:"static_dir" koanf:"static_dir"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	// NamedPages are served at /<name> from <name>.html in StaticDir.
	NamedPages []string `yaml:"named_pages" koanf:"named_pages"`
	// Hidden are glob patterns, relative to StaticDir, that are never
	// served as static files.
	Hidden []string `yaml:"hidden" koanf:"hidden"`
}

// CatalogConfig locates the fundraising catalog.
type CatalogConfig struct {
	// Local is a path (relative paths resolve against the static dir) or an
	// http(s) URL.
	Local  string       `yaml:"local" koanf:"local"`
	Remote RemoteConfig `yaml:"remote" koanf:"remote"`
}

// RemoteConfig describes the BDO key-value endpoint tried before the local
// catalog.
type RemoteConfig struct {
	Enabled       bool   `yaml:"enabled" koanf:"enabled"`
	BaseURL       string `yaml:"base_url" koanf:"base_url"`
	Emojicode     string `yaml:"emojicode" koanf:"emojicode"`
	EnvelopeField string `yaml:"envelope_field" koanf:"envelope_field"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" koanf:"level"`
	Development bool   `yaml:"development" koanf:"development"`
}
