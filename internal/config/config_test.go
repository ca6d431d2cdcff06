package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSetDefaults(t *testing.T) {
	t.Helper()

	cfg := &Config{}
	setDefaults(cfg)

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host: got %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != defaultServerPort {
		t.Errorf("server.port: got %d, want %d", cfg.Server.Port, defaultServerPort)
	}
	if cfg.Server.ReadTimeout != defaultReadTimeout {
		t.Errorf("server.read_timeout: got %v, want %v", cfg.Server.ReadTimeout, defaultReadTimeout)
	}
	if cfg.Backend.Timeout != defaultBackendTimeout {
		t.Errorf("backend.timeout: got %v, want %v", cfg.Backend.Timeout, defaultBackendTimeout)
	}
	if cfg.Redis.Address != defaultRedisAddress {
		t.Errorf("redis.address: got %q, want %q", cfg.Redis.Address, defaultRedisAddress)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level: got %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestValidate_MissingBackendURL(t *testing.T) {
	t.Helper()

	cfg := &Config{}
	setDefaults(cfg)

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for missing backend base URL, got nil")
	}
	if err.Error() != "backend.base_url is required" {
		t.Errorf("error message: got %q", err.Error())
	}
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := []byte("backend:\n  base_url: \"http://file-backend:8000\"\n  timeout: 5s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("BACKEND_BASE_URL", "http://env-backend:9000")
	t.Setenv("SERVER_PORT", "9070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Backend.BaseURL != "http://env-backend:9000" {
		t.Errorf("backend.base_url: got %q, env should win over file", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 5*time.Second {
		t.Errorf("backend.timeout: got %v, want 5s from file", cfg.Backend.Timeout)
	}
	if cfg.Server.Port != 9070 {
		t.Errorf("server.port: got %d, want 9070 from env", cfg.Server.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Helper()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
