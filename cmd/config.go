package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmaia/carteira/brapi"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the wallet settings persisted in <data>/config.toml.
type Config struct {
	// Token is the brapi.dev API token. The BRAPI_TOKEN environment
	// variable takes precedence.
	Token string `toml:"token"`
	// BaseURL overrides the brapi endpoint, mainly for testing.
	BaseURL string `toml:"base_url"`
	// HistoryRange is the default range for the history command.
	HistoryRange string `toml:"history_range"`
	// HistoryInterval is the default interval for the history command.
	HistoryInterval string `toml:"history_interval"`
}

const configFile = "config.toml"

// LoadConfig reads the configuration file from the data directory. A
// missing file yields the defaults, not an error.
func LoadConfig(dir string) (*Config, error) {
	cfg := &Config{
		BaseURL:         brapi.DefaultBaseURL,
		HistoryRange:    "1mo",
		HistoryInterval: "1d",
	}

	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if os.IsNotExist(err) {
		cfg.applyEnv()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = brapi.DefaultBaseURL
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if token := os.Getenv(brapi.TokenEnvVar); token != "" {
		c.Token = token
	}
}
