package bookcompiler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Alignment values understood by the renderer.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
)

// StyleSpec holds the layout parameters for one structural role.
type StyleSpec struct {
	FontSize  float64 `yaml:"fontSize"`
	Leading   float64 `yaml:"leading"`
	Alignment string  `yaml:"alignment"`
	Bold      bool    `yaml:"bold"`

	// FirstIndent shifts only the first wrapped line, the standard opening
	// indent of Chinese body paragraphs.
	FirstIndent float64 `yaml:"firstIndent"`

	SpaceBefore float64 `yaml:"spaceBefore"`
	SpaceAfter  float64 `yaml:"spaceAfter"`
}

// StyleTable maps every role to its style. It is loaded once and read-only
// afterwards.
type StyleTable struct {
	Title   StyleSpec `yaml:"title"`
	Chapter StyleSpec `yaml:"chapter"`
	Body    StyleSpec `yaml:"body"`
}

// DefaultStyles reproduces the original converter's typography.
func DefaultStyles() StyleTable {
	return StyleTable{
		Title: StyleSpec{
			FontSize:   24,
			Leading:    30,
			Alignment:  AlignCenter,
			Bold:       true,
			SpaceAfter: 40,
		},
		Chapter: StyleSpec{
			FontSize:    18,
			Leading:     22,
			Alignment:   AlignCenter,
			Bold:        true,
			SpaceBefore: 20,
			SpaceAfter:  20,
		},
		Body: StyleSpec{
			FontSize:    12,
			Leading:     18,
			Alignment:   AlignLeft,
			FirstIndent: 24,
			SpaceAfter:  6,
		},
	}
}

// For returns the style for a role. Titles and chapters have their own
// entries; everything else flows as body text.
func (t StyleTable) For(r Role) StyleSpec {
	switch r {
	case RoleTitle:
		return t.Title
	case RoleChapter:
		return t.Chapter
	}
	return t.Body
}

// LoadStyles overlays a YAML style file onto the defaults. Fields absent from
// the file keep their default values, so partial overrides are fine.
func LoadStyles(path string) (StyleTable, error) {
	table := DefaultStyles()
	data, err := os.ReadFile(path)
	if err != nil {
		return table, fmt.Errorf("read style file: %w", err)
	}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return table, fmt.Errorf("parse style file %s: %w", path, err)
	}
	return table, nil
}
