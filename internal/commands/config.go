package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/galanta/cit/internal/config"
	"github.com/galanta/cit/internal/render"
	"github.com/galanta/cit/internal/tui"
)

func newConfigCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration in effect: the config file, then .env and the
CIT_* environment variables. Use 'cit config set' to change the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", path)
			fmt.Fprintln(out, string(data))
			return nil
		},
	}

	cmd.AddCommand(newConfigSetCmd(), newConfigKeysCmd(), newConfigEditCmd(deps))
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one field of the config file",
		Long: "Change one field of the config file. Keys:\n  " +
			strings.Join(config.SettableKeys(), "\n  "),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle().Render(fmt.Sprintf("✓ %s updated", args[0])))
			return nil
		},
	}
}

func newConfigKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the keys accepted by 'config set'",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range config.SettableKeys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}

func newConfigEditCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit display settings interactively",
		Long: `Open a menu to change the TUI theme, the markdown style, emoji
rendering and clipboard copy. Each change is written to the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}

			render.SetTUITheme(cfg.TUITheme)
			tui.UpdateTheme()

			return deps.EditSettings(cfg, path)
		},
	}
}
