package bookcompiler

import (
	"strings"

	"golang.org/x/net/html"
)

// textContent collects the concatenated text of a node's subtree, trimmed.
func textContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// splitLines breaks a source file into trimmed lines. The original files are
// saved with both \n and \r\n endings depending on where they were scraped.
func splitLines(data []byte) []string {
	raw := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(raw, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}
