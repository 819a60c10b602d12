package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Topbar() g.Node {
	return Header(
		Class("border-b border-gray-800"),
		Nav(
			Class("container mx-auto flex items-center justify-between px-4 py-4"),
			g.Attr("aria-label", "Main"),
			Logo(),
			navLinks("flex gap-6 text-gray-300", siteLinks),
		),
	)
}
