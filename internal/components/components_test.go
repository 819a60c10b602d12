package components

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestHomePage_FeatureBlocks(t *testing.T) {
	doc := parse(t, render(t, HomePage(PageConfig{})))

	cards := doc.Find("main #features > div")
	require.Equal(t, 3, cards.Length())

	want := []struct {
		title       string
		description string
	}{
		{"Create", "Design unique coloring books with AI assistance"},
		{"Collect", "Own special editions as NFTs"},
		{"Connect", "Join our creative community"},
	}
	cards.Each(func(i int, card *goquery.Selection) {
		assert.Equal(t, want[i].title, card.Find("h2").Text())
		assert.Equal(t, want[i].description, card.Find("p").Text())
	})
}

func TestHomePage_Headings(t *testing.T) {
	doc := parse(t, render(t, HomePage(PageConfig{})))

	assert.Equal(t, "Welcome to Phanterra", doc.Find("main h1").Text())
	assert.Equal(t, "Where AI-assisted art meets physical creativity", doc.Find("main h1 + p").Text())
	assert.Equal(t, "grid grid-cols-1 md:grid-cols-3 gap-8", doc.Find("main #features").AttrOr("class", ""))
}

func TestHomePage_Deterministic(t *testing.T) {
	first := render(t, HomePage(PageConfig{URL: "https://phanterra.example/"}))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, render(t, HomePage(PageConfig{URL: "https://phanterra.example/"})))
	}
}

func TestFeatureCard(t *testing.T) {
	out := render(t, FeatureCard("X", "Y"))
	assert.Equal(t, `<div class="bg-gray-800 p-6 rounded-lg"><h2 class="text-2xl font-bold mb-4">X</h2><p>Y</p></div>`, out)
}

func TestFeatureCard_EscapesText(t *testing.T) {
	out := render(t, FeatureCard("<b>Bold</b>", "Tom & Jerry"))

	assert.Contains(t, out, "&lt;b&gt;Bold&lt;/b&gt;")
	assert.Contains(t, out, "Tom &amp; Jerry")
	assert.NotContains(t, out, "<b>")

	doc := parse(t, out)
	assert.Equal(t, "<b>Bold</b>", doc.Find("h2").Text())
	assert.Equal(t, "Tom & Jerry", doc.Find("p").Text())
}

func TestFeatures_FreshSlice(t *testing.T) {
	a := Features()
	a[0].Title = "Changed"
	assert.Equal(t, "Create", Features()[0].Title)
}

func TestMainLayout_WrapsChildren(t *testing.T) {
	out := render(t, MainLayout(PageConfig{}, h.P(g.Text("first")), h.P(g.Text("second"))))
	require.True(t, strings.HasPrefix(out, "<!doctype html><html lang=\"en\">"))

	doc := parse(t, out)
	assert.Equal(t, 1, doc.Find("body > header nav").Length())
	assert.Equal(t, 1, doc.Find("body > footer").Length())

	paras := doc.Find("main > p")
	require.Equal(t, 2, paras.Length())
	assert.Equal(t, "first", paras.Eq(0).Text())
	assert.Equal(t, "second", paras.Eq(1).Text())
}

func TestMainLayout_Head(t *testing.T) {
	tests := []struct {
		name      string
		config    PageConfig
		wantTitle string
		wantURL   bool
	}{
		{"defaults", PageConfig{}, defaultTitle, false},
		{"custom title", PageConfig{Title: "Gallery"}, "Gallery", false},
		{"canonical url", PageConfig{URL: "https://phanterra.example/"}, defaultTitle, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parse(t, render(t, MainLayout(tt.config)))

			assert.Equal(t, tt.wantTitle, doc.Find("head title").Text())
			og, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
			assert.Equal(t, tt.wantTitle, og)
			desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
			assert.Equal(t, defaultDescription, desc)

			url, ok := doc.Find(`meta[property="og:url"]`).Attr("content")
			assert.Equal(t, tt.wantURL, ok)
			if tt.wantURL {
				assert.Equal(t, tt.config.URL, url)
				canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
				assert.Equal(t, tt.config.URL, canonical)
			}
		})
	}
}

func TestNotFoundPage(t *testing.T) {
	doc := parse(t, render(t, NotFoundPage("/missing<script>")))

	assert.Equal(t, "Page not found", doc.Find("main h1").Text())
	assert.Equal(t, "/missing<script>", doc.Find("main code").Text())
	assert.Equal(t, 0, doc.Find("main script").Length())
	href, _ := doc.Find("main a").Attr("href")
	assert.Equal(t, "/", href)
}
