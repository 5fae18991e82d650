package bookcompiler

// TextRun is one positioned piece of text, fully resolved: the renderer hands
// backends absolute page coordinates so they stay dumb about layout.
type TextRun struct {
	Text string
	// X, Y locate the baseline origin from the page's top-left corner,
	// in points.
	X, Y float64
	Size float64
	Bold bool
}

// Rule is a straight separator line.
type Rule struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Gray           float64 // 0 = black, 1 = white
}

// Canvas is the narrow drawing capability the renderer drives. A page is
// final once CommitPage returns: nothing may be added to it afterwards, so
// bookmarks and navigation entries for a page must be registered before its
// commit. Finalize flushes the document and returns a backend-dependent
// artifact handle (the output path for the PDF backend, empty for in-memory
// ones).
type Canvas interface {
	BeginPage()
	DrawText(run TextRun)
	DrawRule(rule Rule)
	RegisterBookmark(id string)
	RegisterNavEntry(title, id string, level int)
	CommitPage() error
	Finalize() (string, error)
}
