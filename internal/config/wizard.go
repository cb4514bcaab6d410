package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's configure the fundraiser site.")
	fmt.Println()

	cfg := DefaultConfig()

	// Detect the catalog next to the site files.
	if _, err := os.Stat(cfg.Catalog.Local); err == nil {
		fmt.Printf("Found %s in the current directory\n\n", cfg.Catalog.Local)
	}

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to listen on",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. Static directory.
	staticPrompt := promptui.Prompt{
		Label:   "Directory with the site's HTML, CSS and images",
		Default: cfg.Server.StaticDir,
	}
	if cfg.Server.StaticDir, err = staticPrompt.Run(); err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}

	// 3. Local catalog.
	localPrompt := promptui.Prompt{
		Label:   "Local catalog (path or URL)",
		Default: cfg.Catalog.Local,
	}
	if cfg.Catalog.Local, err = localPrompt.Run(); err != nil {
		return nil, fmt.Errorf("local catalog: %w", err)
	}

	// 4. Remote catalog.
	remotePrompt := promptui.Select{
		Label: "Try the BDO service before the local catalog?",
		Items: []string{"yes", "no"},
	}
	idx, _, err := remotePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("remote selection: %w", err)
	}
	cfg.Catalog.Remote.Enabled = idx == 0

	if cfg.Catalog.Remote.Enabled {
		codePrompt := promptui.Prompt{
			Label:   "Emojicode of the published catalog",
			Default: cfg.Catalog.Remote.Emojicode,
		}
		if cfg.Catalog.Remote.Emojicode, err = codePrompt.Run(); err != nil {
			return nil, fmt.Errorf("emojicode: %w", err)
		}
	}

	// 5. Named pages.
	pagesPrompt := promptui.Prompt{
		Label:   "Extra pages served at /<name> (comma-separated)",
		Default: strings.Join(cfg.Server.NamedPages, ","),
	}
	pagesStr, err := pagesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("named pages: %w", err)
	}
	cfg.Server.NamedPages = splitAndTrim(pagesStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
