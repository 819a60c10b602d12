package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	defaultTitle       = "Phanterra - AI-assisted coloring books"
	defaultDescription = "Where AI-assisted art meets physical creativity. Design, collect and share unique coloring books."
	defaultOGImage     = "/static/images/og-image.svg"
)

// PageConfig carries the per-page <head> metadata. Empty fields take site defaults.
type PageConfig struct {
	Title       string
	Description string
	OGImage     string
	// URL is the canonical absolute URL of the page; og:url is omitted when empty.
	URL string
}

func (c PageConfig) withDefaults() PageConfig {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Description == "" {
		c.Description = defaultDescription
	}
	if c.OGImage == "" {
		c.OGImage = defaultOGImage
	}
	return c
}

// MainLayout wraps page content in the shared site chrome: document head,
// top navigation and footer. Children are rendered in order inside <main>.
func MainLayout(config PageConfig, children ...g.Node) g.Node {
	config = config.withDefaults()

	return g.Group([]g.Node{
		g.Raw("<!doctype html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),
				g.If(config.URL != "", Meta(g.Attr("property", "og:url"), Content(config.URL))),
				g.If(config.URL != "", Link(Rel("canonical"), Href(config.URL))),

				Link(Rel("icon"), Href("/static/images/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("min-h-screen flex flex-col bg-gray-900"),
				Topbar(),
				Main(
					Class("flex-1 container mx-auto px-4 py-16"),
					g.Group(children),
				),
				PageFooter(),
			),
		),
	})
}
