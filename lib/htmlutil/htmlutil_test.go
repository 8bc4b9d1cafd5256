package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func mustParse(t testing.TB, contents string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contents))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestStrippedText(t *testing.T) {
	doc := mustParse(t, `<div id="x">
		<p>  first  </p>
		<p>second <b>bold</b></p>
		<p>   </p>
	</div>`)

	sel := doc.Find("#x")
	require.Equal(t, "firstsecondbold", StrippedText(sel, ""))
	require.Equal(t, "first second bold", StrippedText(sel, " "))
	require.Equal(t, "", StrippedText(doc.Find("#missing"), " "))
}

func TestGetAnchors(t *testing.T) {
	doc := mustParse(t, `
		<a href="/one" title="One"> One </a>
		<a name="no-href">skipped</a>
		<a href="https://example.com/two"><span>Two</span></a>
	`)

	anchors := GetAnchors(doc.Find("a"))
	require.Equal(t, []Anchor{
		{Text: "One", Href: "/one", Title: "One"},
		{Text: "Two", Href: "https://example.com/two", Title: ""},
	}, anchors)

	require.NotNil(t, GetAnchors(doc.Find("nav a")))
	require.Empty(t, GetAnchors(doc.Find("nav a")))
}

func TestRemoveElements(t *testing.T) {
	doc := mustParse(t, `<body><script>var a = 1;</script><p>kept</p><style>p {}</style></body>`)
	RemoveElements(doc, "script, style")
	require.Equal(t, "kept", StrippedText(doc.Selection, " "))
}

func TestParseDocumentNoscript(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(
		`<body><noscript><img src="pixel.gif"><a href="/nojs">Enable JS</a></noscript></body>`,
	))
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, 1, doc.Find("noscript img").Length())
	require.Equal(t, []Anchor{{Text: "Enable JS", Href: "/nojs"}}, GetAnchors(doc.Find("a")))
	require.Equal(t, "Enable JS", StrippedText(doc.Selection, " "))
}
