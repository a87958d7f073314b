// Package components renders the HTML landing page and chat with gomponents.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/galanta/cit/internal/models"
)

type PageConfig struct {
	Title       string
	Description string
	// RefreshSeconds, when positive, reloads the page on its own. The chat
	// uses it while a reply is pending since the page carries no script.
	RefreshSeconds int
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = models.BrandName + " | Tarumã"
	}

	if config.Description == "" {
		config.Description = models.HeroSubtitle
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("pt-BR"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				g.If(config.RefreshSeconds > 0,
					Meta(g.Attr("http-equiv", "refresh"), Content(itoa(config.RefreshSeconds))),
				),

				StyleEl(g.Raw(stylesheet)),
			),
			Body(
				Class("page"),
				Main(
					Class("page-main"),
					g.Group(content),
				),
				PageFooter(),
			),
		),
	})
}
