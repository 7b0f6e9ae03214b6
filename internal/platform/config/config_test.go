package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`api:
  base_url: "http://localhost:8080/api/"
  request_timeout: "10s"

search:
  debounce_interval: "250ms"

session:
  state_file: "/tmp/ems-session.json"
`)

	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8080/api" {
		t.Errorf("expected trailing slash to be trimmed, got %s", cfg.API.BaseURL)
	}

	if cfg.API.RequestTimeout != 10*time.Second {
		t.Errorf("expected RequestTimeout 10s, got %v", cfg.API.RequestTimeout)
	}

	if cfg.Search.DebounceInterval != 250*time.Millisecond {
		t.Errorf("expected DebounceInterval 250ms, got %v", cfg.Search.DebounceInterval)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`api:
  base_url: "http://localhost:8080/api"

session:
  state_file: "/tmp/ems-session.json"
`)

	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.API.RequestTimeout != defaultRequestTimeout {
		t.Errorf("expected default request timeout, got %v", cfg.API.RequestTimeout)
	}

	if cfg.Search.DebounceInterval != defaultDebounceInterval {
		t.Errorf("expected default debounce interval, got %v", cfg.Search.DebounceInterval)
	}
}

func TestLoad_MissingField(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing base_url":   "session:\n  state_file: \"/tmp/s.json\"\n",
		"missing state_file": "api:\n  base_url: \"http://localhost:8080/api\"\n",
		"bad duration":       "api:\n  base_url: \"http://x\"\n  request_timeout: \"soon\"\nsession:\n  state_file: \"/tmp/s.json\"\n",
	}

	for name, content := range cases {
		content := content
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatalf("failed to write config file: %v", err)
			}

			if _, err := Load(path); err == nil {
				t.Fatal("expected error for invalid config")
			}
		})
	}
}
