package bookcompiler

import "fmt"

// Composer flows classified lines into page-assigned blocks. Composition is a
// single forward pass: once a block is placed its page index never changes,
// and chapter bookmarks are bound to their page at the moment of placement.
type Composer struct {
	cfg     Config
	styles  StyleTable
	cls     *Classifier
	measure Measurer
}

// NewComposer wires a composer. A nil measurer falls back to RuneMeasurer.
func NewComposer(cfg Config, styles StyleTable, cls *Classifier, m Measurer) *Composer {
	if m == nil {
		m = RuneMeasurer{}
	}
	return &Composer{cfg: cfg, styles: styles, cls: cls, measure: m}
}

// Compose classifies raw text lines and paginates them.
func (c *Composer) Compose(texts []string) ([]Block, *BookmarkRegistry, error) {
	lines := make([]Line, len(texts))
	for i, t := range texts {
		lines[i] = Line{Index: i, Text: t}
	}
	return c.ComposeLines(lines)
}

// ComposeLines paginates lines that may carry pre-assigned roles (the
// markdown adapter sets them); unclassified lines go through the classifier.
//
// Layout rules: blank lines are dropped; the first surviving line is forced
// to the title role and occupies page 0 alone; every chapter heading except
// the first starts a new page; body text flows and wraps onto the next page
// only when the current one is full. A block taller than a whole page is
// placed at the top of a fresh page and allowed to overflow rather than be
// split or dropped.
func (c *Composer) ComposeLines(lines []Line) ([]Block, *BookmarkRegistry, error) {
	reg := NewBookmarkRegistry()
	capacity := c.cfg.ContentHeight()
	if capacity <= 0 {
		return nil, nil, fmt.Errorf("page %gx%g leaves no room for content", c.cfg.PageWidth, c.cfg.PageHeight)
	}

	var blocks []Block
	page := 0
	cursor := 0.0
	pendingBreak := false
	sawTitle := false
	sawChapter := false

	for _, ln := range lines {
		role := ln.Role
		if role == RoleUnclassified {
			role = c.cls.Classify(ln.Text)
		}
		if role == RoleBlank {
			continue
		}

		breakBefore := false
		if !sawTitle {
			// Position rule: the document's first surviving line is the
			// title, whatever its text looks like.
			role = RoleTitle
		} else if role == RoleChapter {
			// The title page already separates the first chapter; only
			// later chapters force their own page.
			breakBefore = sawChapter
			sawChapter = true
		}

		style := c.styles.For(role)
		wrapped := c.wrap(ln.Text, style)
		height := style.SpaceBefore + float64(len(wrapped))*style.Leading + style.SpaceAfter

		switch {
		case pendingBreak || breakBefore:
			if cursor > 0 {
				page++
				cursor = 0
			}
		case cursor > 0 && cursor+height > capacity:
			page++
			cursor = 0
		}
		pendingBreak = false

		b := Block{
			Line:      Line{Index: ln.Index, Text: ln.Text, Role: role},
			Style:     style,
			Page:      page,
			Y:         c.cfg.MarginTop + cursor + style.SpaceBefore,
			Wrapped:   wrapped,
			PageBreak: breakBefore,
		}
		if role == RoleChapter {
			b.BookmarkID = fmt.Sprintf("chap_%d", ln.Index)
			reg.Add(b.BookmarkID, ln.Text, page)
		}
		blocks = append(blocks, b)
		cursor += height

		if role == RoleTitle {
			sawTitle = true
			pendingBreak = true // the title keeps its page to itself
		}
	}

	return blocks, reg, nil
}

// wrap breaks text at arbitrary rune boundaries so that each physical line
// fits the content width. There are no inter-word spaces to break at in
// Chinese prose, so this is a plain greedy fill.
func (c *Composer) wrap(text string, style StyleSpec) []string {
	width := c.cfg.ContentWidth()
	avail := width - style.FirstIndent

	var lines []string
	var cur []rune
	used := 0.0
	for _, r := range text {
		w := c.measure.Width(string(r), style.FontSize)
		if used+w > avail && len(cur) > 0 {
			lines = append(lines, string(cur))
			cur = cur[:0]
			used = 0
			avail = width // indent applies to the first line only
		}
		cur = append(cur, r)
		used += w
	}
	if len(cur) > 0 || len(lines) == 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
