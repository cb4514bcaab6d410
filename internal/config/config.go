package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override. A double underscore
// separates nesting levels: FUNDRAISER_SERVER__PORT -> server.port.
const EnvPrefix = "FUNDRAISER_"

// Load reads configuration from the given YAML file, then overlays the
// process manager's PORT variable and FUNDRAISER_* overrides, in that order.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("PORT", ".", func(s string) string {
		if s == "PORT" {
			return "server.port"
		}
		return ""
	}), nil); err != nil {
		return nil, fmt.Errorf("loading PORT: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Lists replace the defaults wholesale rather than merging by index.
	if k.Exists("server.named_pages") {
		cfg.Server.NamedPages = listValue(k, "server.named_pages")
	}
	if k.Exists("server.hidden") {
		cfg.Server.Hidden = listValue(k, "server.hidden")
	}

	return cfg, nil
}

// envKey maps FUNDRAISER_CATALOG__REMOTE__ENABLED to catalog.remote.enabled.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// listValue reads a list that may come from YAML or, as a comma-separated
// string, from the environment.
func listValue(k *koanf.Koanf, key string) []string {
	if s, ok := k.Get(key).(string); ok {
		return splitAndTrim(s)
	}
	return k.Strings(key)
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogLevels is the set of recognized log.level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}
	if c.Server.StaticDir == "" {
		return fmt.Errorf("server.static_dir is required")
	}
	for _, name := range c.Server.NamedPages {
		if name == "" || strings.ContainsAny(name, "/\\") {
			return fmt.Errorf("invalid named page %q: must be a single path segment", name)
		}
	}

	if c.Catalog.Local == "" {
		return fmt.Errorf("catalog.local is required")
	}

	if r := c.Catalog.Remote; r.Enabled {
		u, err := url.Parse(r.BaseURL)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("invalid catalog.remote.base_url %q: must be an absolute URL", r.BaseURL)
		}
		if r.Emojicode == "" {
			return fmt.Errorf("catalog.remote.emojicode is required when the remote catalog is enabled")
		}
		if r.EnvelopeField == "" {
			return fmt.Errorf("catalog.remote.envelope_field is required when the remote catalog is enabled")
		}
	}

	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}

	return nil
}

// LocalCatalog returns the local catalog reference. Relative file paths are
// resolved against the static directory, where the site also publishes the
// document.
func (c *Config) LocalCatalog() string {
	ref := c.Catalog.Local
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(c.Server.StaticDir, ref)
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
