// ABOUTME: Tests for config loading, env overrides, and defaults.
// ABOUTME: Uses t.Setenv and temp XDG dirs; never touches the real home.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"courtlog/internal/models"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("COURTLOG_WEATHER_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetScheme() != models.SchemePrimary {
		t.Errorf("default scheme = %v, want primary", cfg.GetScheme())
	}
	if cfg.OpenAIKey != "" {
		t.Errorf("expected empty key, got %q", cfg.OpenAIKey)
	}
}

func TestLoadReadsFileAndEnvOverrides(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "courtlog")
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	content := `{"scheme": "alternate", "city": "Seoul", "openai_key": "from-file"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	t.Setenv("OPENAI_API_KEY", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetScheme() != models.SchemeAlternate {
		t.Errorf("scheme = %v, want alternate", cfg.GetScheme())
	}
	if cfg.City != "Seoul" {
		t.Errorf("city = %q, want Seoul", cfg.City)
	}
	if cfg.OpenAIKey != "from-env" {
		t.Errorf("env override lost: key = %q", cfg.OpenAIKey)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Scheme: "alternate", City: "Busan"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Scheme != "alternate" || loaded.City != "Busan" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/abs/path", "/abs/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetSchemeInvalidFallsBack(t *testing.T) {
	cfg := &Config{Scheme: "bogus"}
	if cfg.GetScheme() != models.SchemePrimary {
		t.Errorf("invalid scheme should fall back to primary")
	}
}

func TestOpenStorageUsesDataDir(t *testing.T) {
	dataDir := t.TempDir()
	cfg := &Config{DataDir: dataDir}

	repo, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage failed: %v", err)
	}
	defer repo.Close()

	if _, err := os.Stat(filepath.Join(dataDir, "courtlog.db")); err != nil {
		t.Errorf("database not created in data dir: %v", err)
	}
}
