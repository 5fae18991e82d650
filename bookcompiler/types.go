// Package bookcompiler turns a flat Chinese text novel into a paginated PDF
// book: lines are classified into structural roles, flowed onto fixed-size
// pages, and emitted in two passes so that page-count-dependent content
// (footers, chapter navigation) can be committed once the total is known.
package bookcompiler

// Role classifies a source line's structural function in the book.
type Role int

const (
	// RoleUnclassified marks a line that has not been through the
	// classifier yet. The classifier never returns it.
	RoleUnclassified Role = iota
	RoleTitle
	RoleChapter
	RoleBody
	RoleBlank
)

func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleChapter:
		return "chapter"
	case RoleBody:
		return "body"
	case RoleBlank:
		return "blank"
	}
	return "unclassified"
}

// Line is one already-converted source line. Index is its zero-based
// position in the source document.
type Line struct {
	Index int
	Text  string
	Role  Role
}

// Block is a styled line placed on a page. Page assignment happens exactly
// once, during composition, and a block is never split across pages.
type Block struct {
	Line  Line
	Style StyleSpec

	// Page is the zero-based physical page index and Y the offset of the
	// block's first text line from the page top, both fixed at placement.
	Page int
	Y    float64

	// Wrapped holds the physical lines after character-boundary wrapping.
	Wrapped []string

	// PageBreak records that an explicit break preceded this block.
	PageBreak bool

	// BookmarkID is set for chapter headings and matches the registry entry
	// created for this block.
	BookmarkID string
}

// Config carries page geometry and font settings. The defaults reproduce the
// layout of the original converter: US Letter in points with one-inch margins.
type Config struct {
	PageWidth  float64 `yaml:"pageWidth"`
	PageHeight float64 `yaml:"pageHeight"`

	MarginLeft   float64 `yaml:"marginLeft"`
	MarginRight  float64 `yaml:"marginRight"`
	MarginTop    float64 `yaml:"marginTop"`
	MarginBottom float64 `yaml:"marginBottom"`

	FontName string `yaml:"fontName"`
	FontPath string `yaml:"fontPath"`

	FooterSize float64 `yaml:"footerSize"`

	// ChapterPattern overrides the heading regexp (marker + numeral + unit).
	ChapterPattern string `yaml:"chapterPattern"`
}

// DefaultConfig returns the stock page setup.
func DefaultConfig() Config {
	return Config{
		PageWidth:    612, // US Letter, points
		PageHeight:   792,
		MarginLeft:   72,
		MarginRight:  72,
		MarginTop:    72,
		MarginBottom: 72,
		FontName:     "NotoSansTC",
		FontPath:     "fonts/NotoSansTC-Regular.ttf",
		FooterSize:   9,
	}
}

// ContentWidth is the horizontal space available to text.
func (c Config) ContentWidth() float64 {
	return c.PageWidth - c.MarginLeft - c.MarginRight
}

// ContentHeight is the vertical space available to blocks on one page.
func (c Config) ContentHeight() float64 {
	return c.PageHeight - c.MarginTop - c.MarginBottom
}
