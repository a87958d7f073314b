package tui

import (
	"github.com/galanta/cit/internal/models"
)

// renderFooter renders the credit line shown under both screens
func renderFooter(width int) string {
	line := models.FooterPrefix + " " + footerCompanyStyle.Render(models.FooterCompany)
	if width <= 0 {
		return footerStyle.Render(line)
	}
	return footerStyle.Width(width).Render(line)
}
