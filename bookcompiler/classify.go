package bookcompiler

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultChapterPattern matches traditional chapter headings: the 第 marker,
// a Chinese or Arabic numeral, and the 回 unit (第三回, 第12回, ...).
const DefaultChapterPattern = `^第[〇零一二三四五六七八九十百千万两\d]+回`

// Classifier assigns structural roles to lines. It is a pure syntactic rule
// set: title forcing is positional and belongs to the composer.
type Classifier struct {
	chapter *regexp.Regexp
}

// NewClassifier compiles the chapter heading pattern. An empty pattern selects
// DefaultChapterPattern.
func NewClassifier(pattern string) (*Classifier, error) {
	if pattern == "" {
		pattern = DefaultChapterPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile chapter pattern %q: %w", pattern, err)
	}
	return &Classifier{chapter: re}, nil
}

// Classify maps one line of text to its role. It is total and deterministic:
// whitespace-only lines are blank, chapter-pattern matches are chapter
// headings, everything else is body text.
func (c *Classifier) Classify(text string) Role {
	if strings.TrimSpace(text) == "" {
		return RoleBlank
	}
	if c.chapter.MatchString(text) {
		return RoleChapter
	}
	return RoleBody
}
