package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Feature is one card on the landing page.
type Feature struct {
	Title       string
	Description string
}

// Features returns the landing page cards in display order. A fresh slice is
// returned on every call.
func Features() []Feature {
	return []Feature{
		{"Create", "Design unique coloring books with AI assistance"},
		{"Collect", "Own special editions as NFTs"},
		{"Connect", "Join our creative community"},
	}
}

// FeatureGrid lays out cards one per row on small screens and three across from md up.
func FeatureGrid(features []Feature) g.Node {
	return Div(
		ID("features"),
		Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
		g.Group(g.Map(features, func(f Feature) g.Node {
			return FeatureCard(f.Title, f.Description)
		})),
	)
}

func FeatureCard(title, description string) g.Node {
	return Div(
		Class("bg-gray-800 p-6 rounded-lg"),
		H2(Class("text-2xl font-bold mb-4"), g.Text(title)),
		P(g.Text(description)),
	)
}
