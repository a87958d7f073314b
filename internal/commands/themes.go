package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/galanta/cit/internal/config"
	"github.com/galanta/cit/internal/render"
)

func newThemesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the terminal themes and markdown styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			current := cfg.TUITheme
			if flags != nil && flags.theme != "" {
				current = flags.theme
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Themes (tui_theme):")
			for _, t := range render.AvailableTUIThemes() {
				marker := "  "
				if t.Name == current {
					marker = "▸ "
				}
				swatch := lipgloss.NewStyle().Foreground(t.Primary).Render("■") +
					lipgloss.NewStyle().Foreground(t.Secondary).Render("■") +
					lipgloss.NewStyle().Foreground(t.Accent).Render("■")
				fmt.Fprintf(out, "%s%-12s %s  %s\n", marker, t.Name, swatch, t.Description)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Markdown styles (markdown.style):")
			for _, s := range render.StandardStyles() {
				marker := "  "
				if s == cfg.Markdown.Style {
					marker = "▸ "
				}
				fmt.Fprintf(out, "%s%s\n", marker, s)
			}
			return nil
		},
	}
}
