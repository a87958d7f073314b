package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/galanta/cit/internal/models"
)

// Hero is the landing screen. The start button posts to startPath.
func Hero(startPath string) g.Node {
	return Section(
		Class("hero"),
		ID("hero"),

		H1(g.Text(models.BrandName)),
		P(g.Text(models.HeroSubtitle)),

		Ul(
			Class("badges"),
			g.Map(models.Features, func(f string) g.Node {
				return Li(g.Text(f))
			}),
		),

		Form(
			Method("post"),
			Action(startPath),
			Button(Type("submit"), Class("btn"), g.Text(models.StartLabel)),
		),

		P(Class("hint"), g.Text(models.HeroHint)),
	)
}
