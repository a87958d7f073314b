// Package commands provides CLI commands for cit.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/galanta/cit/internal/config"
	"github.com/galanta/cit/internal/logger"
	"github.com/galanta/cit/internal/render"
	"github.com/galanta/cit/internal/tui"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	webhook string
	theme   string
}

// NewRootCmd creates the base command with every subcommand attached
func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps == nil {
		deps = NewDependencies()
	}
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "cit",
		Short: "Centro de Inovação Tecnológica de Tarumã: landing page and assistant chat",
		Long: `cit presents the Centro de Inovação Tecnológica de Tarumã landing page
and its virtual assistant. Every chat message is posted to a single webhook
and the assistant's reply is shown in the conversation.

Examples:
  cit                              Open the landing page in the terminal
  cit chat                         Same as above
  cit serve --addr :4002           Serve the landing page over HTTP
  cit send "Quais serviços?"       Send one message and print the reply
  echo "Oi" | cit send             Read the message from stdin
  cit config set webhook_url https://example.com/hook`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "cit %s (built %s)\n", Version, BuildTime)
				return nil
			}
			return runPage(cmd, deps, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.webhook, "webhook", "w", "", "Webhook URL (overrides config and "+config.EnvWebhookURL+")")
	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "TUI theme ("+fmt.Sprint(render.TUIThemeNames())+")")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(
		newChatCmd(deps, flags),
		newServeCmd(deps, flags),
		newSendCmd(deps, flags),
		newConfigCmd(deps),
		newThemesCmd(flags),
	)
	return cmd
}

// rootCmd is the command run by Execute
var rootCmd = NewRootCmd(nil)

// Execute runs the root command
func Execute() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.FormatError(err))
		os.Exit(1)
	}
}

// loadConfig returns the effective config: file, then .env and environment,
// then command-line flags.
func loadConfig(flags *globalFlags) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	if flags != nil {
		if flags.webhook != "" {
			cfg.WebhookURL = flags.webhook
		}
		if flags.theme != "" {
			cfg.TUITheme = flags.theme
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// initLogging points the logger at the configured file, and at stderr too
// when no terminal UI owns the screen.
func initLogging(cfg config.Config, stderr bool) {
	dir, err := config.GetConfigDir()
	if err != nil {
		dir = "."
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Stderr: stderr,
	}, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}
