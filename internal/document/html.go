package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true, "section": true,
	"article": true, "header": true, "footer": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "title": true,
}

// HTML extracts visible text from HTML pages, one block element per line.
type HTML struct{}

func (HTML) Name() string { return "html" }

// Text drops scripts and styles and flattens the body into lines.
func (HTML) Text(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript, template").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var builder strings.Builder
	for _, node := range root.Nodes {
		writeText(&builder, node)
	}

	lines := strings.Split(builder.String(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n"), nil
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if blockElements[n.Data] {
			b.WriteString("\n")
			defer b.WriteString("\n")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}
