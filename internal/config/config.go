// Package config handles configuration for the CIT chat client.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/galanta/cit/internal/models"
)

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`             // "dark", "light", "notty", "ascii", ...
	EnableEmoji      bool   `json:"enable_emoji"`      // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"` // Preserve original line breaks
}

// Config represents the user configuration
type Config struct {
	// WebhookURL is the single endpoint every message is posted to.
	WebhookURL string `json:"webhook_url"`
	// ReplyField is the gjson path of the reply text in the webhook response.
	ReplyField string `json:"reply_field"`
	// TimeoutSeconds bounds a webhook request. Zero means no timeout.
	TimeoutSeconds int `json:"timeout_seconds"`
	// ExtraFields are static string fields merged into every request body.
	ExtraFields map[string]string `json:"extra_fields,omitempty"`

	TUITheme        string         `json:"tui_theme,omitempty"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
	ListenAddr      string         `json:"listen_addr"`
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	LogLevel        string         `json:"log_level"`
	LogFile         string         `json:"log_file"`
}

// Environment variables that override the config file
const (
	EnvWebhookURL = "CIT_WEBHOOK_URL"
	EnvListenAddr = "CIT_LISTEN_ADDR"
	EnvLogLevel   = "CIT_LOG_LEVEL"
	EnvTUITheme   = "CIT_TUI_THEME"
)

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		WebhookURL:      models.EndpointWebhook,
		ReplyField:      models.ReplyFieldResponse,
		TimeoutSeconds:  0,
		TUITheme:        "cit",
		Markdown:        DefaultMarkdownConfig(),
		ListenAddr:      ":4002",
		CopyToClipboard: false,
		LogLevel:        "info",
		LogFile:         "cit.log",
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".cit"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides cfg with the CIT_* environment variables that are set.
func ApplyEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv(EnvWebhookURL)); v != "" {
		cfg.WebhookURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvListenAddr)); v != "" {
		cfg.ListenAddr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTUITheme)); v != "" {
		cfg.TUITheme = v
	}
	return cfg
}

// Validate checks the fields a webhook exchange depends on
func (c Config) Validate() error {
	u, err := url.Parse(c.WebhookURL)
	if err != nil {
		return fmt.Errorf("invalid webhook_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid webhook_url %q: scheme must be http or https", c.WebhookURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid webhook_url %q: missing host", c.WebhookURL)
	}
	if strings.TrimSpace(c.ReplyField) == "" {
		return fmt.Errorf("reply_field cannot be empty")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds cannot be negative")
	}
	return nil
}

// ListenAddress returns ListenAddr with a leading colon when only a port was given
func (c Config) ListenAddress() string {
	addr := strings.TrimSpace(c.ListenAddr)
	if addr == "" {
		return DefaultConfig().ListenAddr
	}
	if !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}

// settableKeys maps config keys to setters used by `cit config set`
var settableKeys = map[string]func(*Config, string) error{
	"webhook_url": func(c *Config, v string) error { c.WebhookURL = v; return nil },
	"reply_field": func(c *Config, v string) error { c.ReplyField = v; return nil },
	"timeout_seconds": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("timeout_seconds must be an integer: %w", err)
		}
		c.TimeoutSeconds = n
		return nil
	},
	"tui_theme":      func(c *Config, v string) error { c.TUITheme = v; return nil },
	"markdown.style": func(c *Config, v string) error { c.Markdown.Style = v; return nil },
	"markdown.enable_emoji": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("markdown.enable_emoji must be a boolean: %w", err)
		}
		c.Markdown.EnableEmoji = b
		return nil
	},
	"listen_addr": func(c *Config, v string) error { c.ListenAddr = v; return nil },
	"copy_to_clipboard": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("copy_to_clipboard must be a boolean: %w", err)
		}
		c.CopyToClipboard = b
		return nil
	},
	"log_level": func(c *Config, v string) error { c.LogLevel = v; return nil },
	"log_file":  func(c *Config, v string) error { c.LogFile = v; return nil },
}

// Set updates a single field identified by its JSON key. Keys of the form
// "extra_fields.<name>" add a static request field; an empty value removes it.
func (c *Config) Set(key, value string) error {
	if name, ok := strings.CutPrefix(key, "extra_fields."); ok {
		if name == "" {
			return fmt.Errorf("extra_fields key needs a field name")
		}
		if value == "" {
			delete(c.ExtraFields, name)
			return nil
		}
		if c.ExtraFields == nil {
			c.ExtraFields = make(map[string]string)
		}
		c.ExtraFields[name] = value
		return nil
	}

	setter, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	return setter(c, value)
}

// SettableKeys returns the keys accepted by Set, sorted
func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys)+1)
	for k := range settableKeys {
		keys = append(keys, k)
	}
	keys = append(keys, "extra_fields.<name>")
	sort.Strings(keys)
	return keys
}
