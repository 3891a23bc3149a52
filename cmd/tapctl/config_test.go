package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tapctl.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
client_id = "client-1"
pub_key = "-----BEGIN PUBLIC KEY-----..."
library = "vendor/taptap_api.dll"
poll_interval_ms = 100
scopes = "public_profile,user_friends"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.ClientID != "client-1" || cfg.Library != "vendor/taptap_api.dll" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.PollInterval != 100*time.Millisecond {
		t.Errorf("poll interval = %v", cfg.PollInterval)
	}
	if cfg.Scopes != "public_profile,user_friends" {
		t.Errorf("scopes = %q", cfg.Scopes)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `pub_key = "key"`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.PollInterval != defaultConfig().PollInterval {
		t.Errorf("poll interval = %v", cfg.PollInterval)
	}
	if cfg.Scopes != "public_profile" {
		t.Errorf("scopes = %q", cfg.Scopes)
	}
}

func TestLoadConfigRejectsMissingKey(t *testing.T) {
	path := writeConfig(t, `client_id = "client-1"`)
	if _, err := loadConfig(path); err == nil {
		t.Error("config without pub_key should fail")
	}
}

func TestLoadConfigRejectsBadInterval(t *testing.T) {
	path := writeConfig(t, "pub_key = \"key\"\npoll_interval_ms = -5\n")
	if _, err := loadConfig(path); err == nil {
		t.Error("negative interval should fail")
	}
}
