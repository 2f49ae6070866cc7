package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
)

// VisibleText parses an HTML fragment and returns the rendered text,
// with tags and style/script bodies removed and whitespace collapsed.
func VisibleText(fragment string) string {
	node, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	var b strings.Builder
	collectText(node, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(node *html.Node, b *strings.Builder) {
	if node.Type == html.ElementNode {
		switch node.Data {
		case "script", "style", "head":
			return
		}
	}
	if node.Type == html.TextNode {
		b.WriteString(node.Data)
		b.WriteString(" ")
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, b)
	}
}
