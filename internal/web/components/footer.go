package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/galanta/cit/internal/models"
)

func PageFooter() g.Node {
	return Footer(
		Class("footer"),
		P(
			g.Text(models.FooterPrefix+" "),
			Strong(g.Text(models.FooterCompany)),
		),
	)
}
