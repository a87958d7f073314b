package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/galanta/cit/internal/logger"
	"github.com/galanta/cit/internal/web"
)

func newServeCmd(deps *Dependencies, flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page and chat over HTTP",
		Long: `Serve the landing page as server-rendered HTML. The chat runs on plain
form posts, one conversation per browser session. Leaving the chat for the
start page discards the conversation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ListenAddr = addr
			}
			initLogging(cfg, true)

			client, err := deps.NewClient(cfg)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			defer client.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			listen := cfg.ListenAddress()
			fmt.Fprintf(cmd.ErrOrStderr(), "Serving on %s (webhook %s)\n", listen, client.Endpoint())

			h := web.New(client, web.NewSessionStore())
			if err := deps.Serve(ctx, listen, h); err != nil && ctx.Err() == nil {
				logger.Error("server failed", logger.Scope("cli"), logger.Err(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides listen_addr and CIT_LISTEN_ADDR)")
	return cmd
}
