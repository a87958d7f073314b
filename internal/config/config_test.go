package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/galanta/cit/internal/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.WebhookURL != models.EndpointWebhook {
		t.Errorf("Expected default webhook %q, got %q", models.EndpointWebhook, cfg.WebhookURL)
	}
	if cfg.ReplyField != "response" {
		t.Errorf("Expected reply field 'response', got %q", cfg.ReplyField)
	}
	if cfg.TimeoutSeconds != 0 {
		t.Errorf("Expected no timeout by default, got %d", cfg.TimeoutSeconds)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestGetConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() returned error: %v", err)
	}
	if dir != filepath.Join(home, ".cit") {
		t.Errorf("GetConfigDir() = %s", dir)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.WebhookURL != models.EndpointWebhook {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	cfg.WebhookURL = "http://localhost:5678/webhook/test"
	cfg.TimeoutSeconds = 15
	cfg.ExtraFields = map[string]string{"source": "cli"}

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	info, err := os.Stat(filepath.Join(home, ".cit", "config.json"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config file perm = %o, want 600", perm)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.WebhookURL != cfg.WebhookURL || loaded.TimeoutSeconds != 15 {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.ExtraFields["source"] != "cli" {
		t.Errorf("extra fields lost: %+v", loaded.ExtraFields)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".cit")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	data, _ := json.Marshal(map[string]any{"tui_theme": "nord"})
	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.TUITheme != "nord" {
		t.Errorf("TUITheme = %q, want nord", cfg.TUITheme)
	}
	if cfg.WebhookURL != models.EndpointWebhook {
		t.Errorf("WebhookURL should keep default, got %q", cfg.WebhookURL)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".cit")
	_ = os.MkdirAll(dir, 0o700)
	_ = os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600)

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("expected parse error")
	}
	if cfg.WebhookURL != models.EndpointWebhook {
		t.Error("invalid file should fall back to defaults")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvWebhookURL, "http://example.test/hook")
	t.Setenv(EnvListenAddr, ":9000")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvTUITheme, "")

	cfg := ApplyEnv(DefaultConfig())
	if cfg.WebhookURL != "http://example.test/hook" {
		t.Errorf("WebhookURL = %q", cfg.WebhookURL)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.TUITheme != "cit" {
		t.Errorf("empty env should not override TUITheme, got %q", cfg.TUITheme)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("CIT_TEST_DOTENV=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("CIT_TEST_DOTENV") })

	if err := LoadDotEnv(envFile, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error: %v", err)
	}
	if got := os.Getenv("CIT_TEST_DOTENV"); got != "loaded" {
		t.Errorf("CIT_TEST_DOTENV = %q, want loaded", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"http url", func(c *Config) { c.WebhookURL = "http://localhost:5678/webhook" }, false},
		{"ftp scheme", func(c *Config) { c.WebhookURL = "ftp://host/x" }, true},
		{"no host", func(c *Config) { c.WebhookURL = "https:///path" }, true},
		{"empty reply field", func(c *Config) { c.ReplyField = "  " }, true},
		{"negative timeout", func(c *Config) { c.TimeoutSeconds = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestListenAddress(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"4002", ":4002"},
		{":8080", ":8080"},
		{"127.0.0.1:9000", "127.0.0.1:9000"},
		{"", ":4002"},
	}
	for _, tt := range tests {
		cfg := Config{ListenAddr: tt.in}
		if got := cfg.ListenAddress(); got != tt.want {
			t.Errorf("ListenAddress(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSet(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Set("timeout_seconds", "30"); err != nil {
		t.Fatalf("Set timeout_seconds: %v", err)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}
	if err := cfg.Set("timeout_seconds", "soon"); err == nil {
		t.Error("expected error for non-integer timeout")
	}
	if err := cfg.Set("copy_to_clipboard", "true"); err != nil || !cfg.CopyToClipboard {
		t.Errorf("Set copy_to_clipboard: err=%v value=%v", err, cfg.CopyToClipboard)
	}
	if err := cfg.Set("extra_fields.channel", "web"); err != nil {
		t.Fatalf("Set extra field: %v", err)
	}
	if cfg.ExtraFields["channel"] != "web" {
		t.Errorf("ExtraFields = %+v", cfg.ExtraFields)
	}
	if err := cfg.Set("extra_fields.channel", ""); err != nil {
		t.Fatalf("remove extra field: %v", err)
	}
	if _, ok := cfg.ExtraFields["channel"]; ok {
		t.Error("empty value should remove the extra field")
	}
	if err := cfg.Set("no_such_key", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestSettableKeysSorted(t *testing.T) {
	keys := SettableKeys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
}
