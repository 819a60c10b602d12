package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func NotFound(path string) g.Node {
	return Div(
		Class("text-center text-white"),
		H1(Class("text-5xl font-bold mb-6"), g.Text("Page not found")),
		P(Class("text-xl mb-8"), g.Text("Nothing lives at "), Code(g.Text(path)), g.Text(".")),
		A(Href("/"), Class("inline-block bg-gray-800 px-6 py-3 rounded-lg"), g.Text("Back to Phanterra")),
	)
}

func NotFoundPage(path string) g.Node {
	return MainLayout(PageConfig{Title: "Not found - Phanterra"}, NotFound(path))
}
