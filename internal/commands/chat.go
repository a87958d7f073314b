package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/galanta/cit/internal/logger"
	"github.com/galanta/cit/internal/render"
	"github.com/galanta/cit/internal/tui"
)

func newChatCmd(deps *Dependencies, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open the landing page and chat in the terminal",
		Long: `Open the landing page in the terminal. Press Enter to start a
conversation with the assistant and Esc to go back to the start screen.
Going back discards the conversation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, deps, flags)
		},
	}
}

func runPage(cmd *cobra.Command, deps *Dependencies, flags *globalFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	initLogging(cfg, false)

	if !render.SetTUITheme(cfg.TUITheme) {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using %s\n", cfg.TUITheme, render.GetTUITheme().Name)
	}
	tui.UpdateTheme()

	client, err := deps.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	logger.Info("terminal page starting", logger.Scope("cli"), "webhook", client.Endpoint())
	return deps.RunPage(cmd.Context(), client, render.OptionsFromConfig(cfg))
}
