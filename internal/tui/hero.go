package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/galanta/cit/internal/models"
)

// renderHero renders the landing screen. It holds no state: the page decides
// what the start action does.
func renderHero(width, height int, helpView string) string {
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	var badges []string
	for _, f := range models.Features {
		badges = append(badges, badgeStyle.Render("● "+f))
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		heroTitleStyle.Render("✦ "+models.BrandName),
		heroSubtitleStyle.Width(contentWidth).Align(lipgloss.Center).Render(models.HeroSubtitle),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, badges...),
		buttonStyle.Render(models.StartLabel+" →"),
		heroHintStyle.Width(contentWidth).Align(lipgloss.Center).Render(models.HeroHint),
	)

	footer := renderFooter(width)
	help := statusBarStyle.Width(width).Align(lipgloss.Center).Render(helpView)

	// Center the body in whatever height the footer and help leave
	free := height - lipgloss.Height(body) - lipgloss.Height(footer) - lipgloss.Height(help)
	top := free / 2
	if top < 0 {
		top = 0
	}
	bottom := free - top
	if bottom < 0 {
		bottom = 0
	}

	centered := lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
	return strings.Repeat("\n", top) + centered + strings.Repeat("\n", bottom) + "\n" + help + "\n" + footer
}
