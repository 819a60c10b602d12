package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	Heading    = "Welcome to Phanterra"
	Subheading = "Where AI-assisted art meets physical creativity"
)

// Home is the landing page body: heading, subheading and the feature grid.
func Home() g.Node {
	return Div(
		Class("text-center text-white"),
		H1(Class("text-5xl font-bold mb-6"), g.Text(Heading)),
		P(Class("text-xl mb-8"), g.Text(Subheading)),
		FeatureGrid(Features()),
	)
}

// HomePage is Home inside MainLayout.
func HomePage(config PageConfig) g.Node {
	return MainLayout(config, Home())
}
