package htmlutil

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ParseDocument parses r with scripting disabled, so the contents of
// <noscript> come back as elements rather than raw text.
func ParseDocument(r io.Reader) (*goquery.Document, error) {
	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(root), nil
}

// appendTextNodes collects every text node below node in document order,
// each trimmed, skipping the ones that trim down to nothing.
func appendTextNodes(node *html.Node, out *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		text := strings.TrimSpace(node.Data)
		if text != "" {
			*out = append(*out, text)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		appendTextNodes(child, out)
	}
}

// StrippedText returns the text of every node in sel, trimming each text
// node individually and joining the pieces with sep.
func StrippedText(sel *goquery.Selection, sep string) string {
	var parts []string
	for _, n := range sel.Nodes {
		appendTextNodes(n, &parts)
	}
	return strings.Join(parts, sep)
}

type Anchor struct {
	Text  string
	Href  string
	Title string
}

// GetAnchors returns the anchors in sel that carry an href attribute,
// anchors without one are skipped.
func GetAnchors(sel *goquery.Selection) []Anchor {
	anchors := []Anchor{}
	sel.Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		anchors = append(anchors, Anchor{
			Text:  StrippedText(s, ""),
			Href:  href,
			Title: s.AttrOr("title", ""),
		})
	})
	return anchors
}

// RemoveElements detaches every element matching selector from doc.
func RemoveElements(doc *goquery.Document, selector string) {
	doc.Find(selector).Remove()
}
