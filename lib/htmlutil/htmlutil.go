package htmlutil

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// GetText collects the text content of a node and all of its descendants,
// approximating how a browser lays it out: block elements and table rows
// become lines, table cells are separated by spaces. Line-oriented
// scrapers depend on this shape.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		// inter-element formatting whitespace does not render as text
		if strings.TrimSpace(node.Data) != "" {
			buffer.WriteString(node.Data)
		}
		return
	}
	if node.Type == html.ElementNode {
		switch node.Data {
		case "br", "tr", "div", "p", "li", "h1", "h2", "h3", "table":
			defer buffer.WriteString("\n")
		case "td", "th":
			defer buffer.WriteString(" ")
		}
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}
