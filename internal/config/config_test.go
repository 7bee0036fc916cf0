package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("API_TOKEN", "practicum-token")
	t.Setenv("BOT_TOKEN", "123:telegram-token")
	t.Setenv("CHAT_ID", "42")
}

func TestLoadEnv(t *testing.T) {
	setRequiredEnv(t)

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.APIToken != "practicum-token" {
		t.Errorf("APIToken = %q", e.APIToken)
	}
	if e.BotToken != "123:telegram-token" {
		t.Errorf("BotToken = %q", e.BotToken)
	}
	if e.ChatID != 42 {
		t.Errorf("ChatID = %d, want 42", e.ChatID)
	}
}

func TestLoadEnvMissingChatID(t *testing.T) {
	t.Setenv("API_TOKEN", "practicum-token")
	t.Setenv("BOT_TOKEN", "123:telegram-token")
	t.Setenv("CHAT_ID", "")

	_, err := LoadEnv()
	if err == nil {
		t.Fatal("expected error for missing CHAT_ID")
	}
	if !strings.Contains(err.Error(), "CHAT_ID") {
		t.Fatalf("error should name CHAT_ID: %v", err)
	}
}

func TestLoadEnvReportsAllMissing(t *testing.T) {
	t.Setenv("API_TOKEN", "")
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("CHAT_ID", "")

	_, err := LoadEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, name := range []string{"API_TOKEN", "BOT_TOKEN", "CHAT_ID"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should name %s: %v", name, err)
		}
	}
}

func TestLoadEnvBadChatID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CHAT_ID", "not-a-number")

	_, err := LoadEnv()
	if err == nil {
		t.Fatal("expected error for non-numeric CHAT_ID")
	}
	if !strings.Contains(err.Error(), "CHAT_ID") {
		t.Fatalf("error should name CHAT_ID: %v", err)
	}
}

func TestLoadFileDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Schedule != "600s" {
		t.Errorf("Schedule = %q, want 600s", cfg.Schedule)
	}
	if cfg.Logging.Level != "info" || !cfg.Logging.Console {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Storage != nil {
		t.Errorf("storage should default to nil, got %+v", cfg.Storage)
	}
}

func TestLoadFileYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
schedule: "*/10 * * * *"
http_timeout: 15s
logging:
  level: debug
  console: true
  file:
    enabled: true
    path: ./hwbot.log
  telegram:
    enabled: true
    min_level: error
    rate_per_sec: 1
storage:
  driver: sqlite
  path: ./hwbot.db
  busy_timeout: 5s
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Schedule != "*/10 * * * *" {
		t.Errorf("Schedule = %q", cfg.Schedule)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.File.Enabled {
		t.Errorf("unexpected logging: %+v", cfg.Logging)
	}
	if cfg.Logging.Telegram.MinLevel != "error" {
		t.Errorf("telegram min_level = %q", cfg.Logging.Telegram.MinLevel)
	}
	if cfg.Storage == nil || cfg.Storage.Driver != "sqlite" {
		t.Fatalf("unexpected storage: %+v", cfg.Storage)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("schedul: 10m\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestParseDurationOrDefault(t *testing.T) {
	t.Parallel()
	d, err := ParseDurationOrDefault("x", "", 30)
	if err != nil || d != 30 {
		t.Fatalf("got (%v, %v), want (30, nil)", d, err)
	}
	if _, err := ParseDurationField("x", "10 parsecs"); err == nil {
		t.Fatal("expected error for invalid duration")
	}
	if _, err := ParseDurationField("x", "-5s"); err == nil {
		t.Fatal("expected error for negative duration")
	}
}
