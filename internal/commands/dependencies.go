package commands

import (
	"context"
	"time"

	"github.com/galanta/cit/internal/api"
	"github.com/galanta/cit/internal/chat"
	"github.com/galanta/cit/internal/config"
	"github.com/galanta/cit/internal/render"
	"github.com/galanta/cit/internal/tui"
	"github.com/galanta/cit/internal/web"
)

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// NewClient builds the webhook client from the effective config.
	NewClient func(cfg config.Config) (api.WebhookClientInterface, error)

	// RunPage runs the terminal landing page until the user quits.
	RunPage func(ctx context.Context, sender chat.Sender, opts render.Options) error

	// Serve runs the HTML surface until ctx ends.
	Serve func(ctx context.Context, addr string, h *web.Handler) error

	// CopyToClipboard writes text to the system clipboard.
	CopyToClipboard func(text string) error

	// EditSettings runs the interactive settings menu on the config file.
	EditSettings func(cfg config.Config, path string) error
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		NewClient:       newWebhookClient,
		RunPage:         tui.RunPage,
		Serve:           serveHTTP,
		CopyToClipboard: writeClipboard,
		EditSettings:    editSettings,
	}
}

func newWebhookClient(cfg config.Config) (api.WebhookClientInterface, error) {
	return api.NewClient(
		api.WithEndpoint(cfg.WebhookURL),
		api.WithReplyField(cfg.ReplyField),
		api.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
		api.WithExtraFields(cfg.ExtraFields),
	)
}

func serveHTTP(ctx context.Context, addr string, h *web.Handler) error {
	return web.NewServer(addr, h).Run(ctx)
}

func editSettings(cfg config.Config, path string) error {
	_, err := tui.RunSettings(cfg, path, config.SaveConfig)
	return err
}
