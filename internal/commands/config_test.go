package commands

import (
	"strings"
	"testing"

	"github.com/galanta/cit/internal/api"
	"github.com/galanta/cit/internal/config"
	"github.com/galanta/cit/internal/render"
)

func TestConfigCommand_Show(t *testing.T) {
	isolate(t)
	f := &fakeDeps{client: &api.MockWebhookClient{}}

	out, _, err := execute(t, f, "", "config")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"config.json", `"webhook_url"`, config.DefaultConfig().WebhookURL, `"reply_field": "response"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommand_Set(t *testing.T) {
	isolate(t)
	f := &fakeDeps{client: &api.MockWebhookClient{}}

	if _, _, err := execute(t, f, "", "config", "set", "webhook_url", "https://example.test/hook"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, _, err := execute(t, f, "", "config", "set", "timeout_seconds", "15"); err != nil {
		t.Fatalf("set: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WebhookURL != "https://example.test/hook" {
		t.Errorf("webhook_url = %q", cfg.WebhookURL)
	}
	if cfg.TimeoutSeconds != 15 {
		t.Errorf("timeout_seconds = %d", cfg.TimeoutSeconds)
	}

	// The saved config is the one the chat uses
	if _, _, err := execute(t, f, ""); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if f.clientCfg.WebhookURL != "https://example.test/hook" || f.clientCfg.TimeoutSeconds != 15 {
		t.Errorf("client config = %+v", f.clientCfg)
	}
}

func TestConfigCommand_SetRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"config", "set", "nope", "1"}},
		{"bad integer", []string{"config", "set", "timeout_seconds", "soon"}},
		{"negative timeout", []string{"config", "set", "timeout_seconds", "-1"}},
		{"bad url", []string{"config", "set", "webhook_url", "not a url"}},
		{"missing value", []string{"config", "set", "webhook_url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			f := &fakeDeps{client: &api.MockWebhookClient{}}

			if _, _, err := execute(t, f, "", tt.args...); err == nil {
				t.Error("expected an error")
			}
			cfg, _ := config.LoadConfig()
			if cfg.WebhookURL != config.DefaultConfig().WebhookURL || cfg.TimeoutSeconds != 0 {
				t.Errorf("rejected set changed the config: %+v", cfg)
			}
		})
	}
}

func TestConfigCommand_Edit(t *testing.T) {
	isolate(t)
	f := &fakeDeps{client: &api.MockWebhookClient{}}

	if _, _, err := execute(t, f, "", "config", "set", "tui_theme", "nord"); err != nil {
		t.Fatalf("set: %v", err)
	}
	t.Cleanup(func() { render.SetTUITheme("cit") })

	if _, _, err := execute(t, f, "", "config", "edit"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	if f.settingsRuns != 1 {
		t.Fatalf("settings runs = %d, want 1", f.settingsRuns)
	}
	if f.settingsCfg.TUITheme != "nord" {
		t.Errorf("TUITheme = %q, want nord", f.settingsCfg.TUITheme)
	}
	if !strings.HasSuffix(f.settingsPath, "config.json") {
		t.Errorf("path = %q", f.settingsPath)
	}
	if render.GetTUITheme().Name != "nord" {
		t.Errorf("active theme = %q, want nord", render.GetTUITheme().Name)
	}
}

func TestConfigCommand_Keys(t *testing.T) {
	isolate(t)
	f := &fakeDeps{client: &api.MockWebhookClient{}}

	out, _, err := execute(t, f, "", "config", "keys")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, k := range config.SettableKeys() {
		if !strings.Contains(out, k) {
			t.Errorf("keys output missing %q", k)
		}
	}
}

func TestThemesCommand(t *testing.T) {
	isolate(t)
	f := &fakeDeps{client: &api.MockWebhookClient{}}

	out, _, err := execute(t, f, "", "themes")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "▸ cit") {
		t.Errorf("current theme not marked:\n%s", out)
	}
	if !strings.Contains(out, "▸ dark") {
		t.Errorf("current markdown style not marked:\n%s", out)
	}
	for _, name := range []string{"cit-light", "galanta", "nord", "dracula", "tokyo-night"} {
		if !strings.Contains(out, name) {
			t.Errorf("themes output missing %q", name)
		}
	}

	out, _, err = execute(t, f, "", "themes", "--theme", "nord")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "▸ nord") {
		t.Errorf("--theme not marked:\n%s", out)
	}
}
