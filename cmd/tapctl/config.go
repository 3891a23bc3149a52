package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/taptap/tapsdk-go/sdk"
)

// Config is the resolved tapctl configuration.
type Config struct {
	ClientID     string
	PubKey       string
	Library      string
	PollInterval time.Duration
	Scopes       string
}

func defaultConfig() Config {
	return Config{
		PollInterval: sdk.DefaultPumpInterval,
		Scopes:       "public_profile",
	}
}

// tapctl config.toml key mapping.
type fileConfig struct {
	ClientID       string `toml:"client_id"`
	PubKey         string `toml:"pub_key"`
	Library        string `toml:"library"`
	PollIntervalMS int64  `toml:"poll_interval_ms"`
	Scopes         string `toml:"scopes"`
}

// loadConfig reads a TOML file over the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("client_id") {
		cfg.ClientID = strings.TrimSpace(raw.ClientID)
	}
	if meta.IsDefined("pub_key") {
		cfg.PubKey = strings.TrimSpace(raw.PubKey)
	}
	if meta.IsDefined("library") {
		cfg.Library = strings.TrimSpace(raw.Library)
	}
	if meta.IsDefined("poll_interval_ms") {
		if raw.PollIntervalMS <= 0 {
			return Config{}, fmt.Errorf("load config: poll_interval_ms must be positive, got %d", raw.PollIntervalMS)
		}
		cfg.PollInterval = time.Duration(raw.PollIntervalMS) * time.Millisecond
	}
	if meta.IsDefined("scopes") {
		cfg.Scopes = strings.TrimSpace(raw.Scopes)
	}

	if cfg.PubKey == "" {
		return Config{}, fmt.Errorf("load config: pub_key is required")
	}
	return cfg, nil
}
