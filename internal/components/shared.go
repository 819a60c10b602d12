package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NavLink is a labelled link in the topbar or footer.
type NavLink struct {
	Label string
	Href  string
}

var siteLinks = []NavLink{
	{"Home", "/"},
	{"Features", "/#features"},
}

func Logo() g.Node {
	return A(
		Href("/"),
		Class("flex items-center gap-2 text-white"),
		Img(Src("/static/images/favicon.svg"), Alt(""), Class("size-6"), g.Attr("aria-hidden", "true")),
		Span(Class("font-bold text-xl"), g.Text("Phanterra")),
	)
}

func navLinks(class string, links []NavLink) g.Node {
	return Ul(
		Class(class),
		g.Group(g.Map(links, func(l NavLink) g.Node {
			return Li(A(Href(l.Href), Class("hover:text-white"), g.Text(l.Label)))
		})),
	)
}
