package bookcompiler

import (
	"bytes"
	"fmt"

	"github.com/russross/blackfriday/v2"
	"golang.org/x/net/html"
)

// LinesFromMarkdown flattens a markdown document into the line sequence the
// composer consumes: top-level headings become chapter lines, paragraphs
// body lines, both in source order. Roles are pre-assigned so markdown
// headings do not need to look like 第X回 to land in the outline.
func LinesFromMarkdown(src []byte) ([]Line, error) {
	rendered := blackfriday.Run(src)
	doc, err := html.Parse(bytes.NewReader(rendered))
	if err != nil {
		return nil, fmt.Errorf("parse rendered markdown: %w", err)
	}

	var lines []Line
	add := func(role Role, text string) {
		if text == "" {
			return
		}
		lines = append(lines, Line{Index: len(lines), Text: text, Role: role})
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2":
				add(RoleChapter, textContent(n))
				return
			case "p", "li", "blockquote":
				add(RoleBody, textContent(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return lines, nil
}
