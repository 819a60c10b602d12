package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// copyrightYear is fixed so a page renders the same bytes every time.
const copyrightYear = "2026"

func PageFooter() g.Node {
	return Footer(
		Class("border-t border-gray-800 text-gray-400"),
		Div(
			Class("container mx-auto flex flex-wrap items-center justify-between gap-3 px-4 py-6"),
			P(g.Text("© "+copyrightYear+" Phanterra. All rights reserved.")),
			navLinks("flex gap-4", siteLinks),
		),
	)
}
