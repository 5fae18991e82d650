package bookcompiler

import "github.com/mattn/go-runewidth"

// Measurer reports the rendered width of text in points at a font size.
// Canvas backends with real font metrics can provide their own; RuneMeasurer
// is the metric-free fallback used for composition and tests.
type Measurer interface {
	Width(s string, size float64) float64
}

// RuneMeasurer approximates CJK metrics from terminal cell widths: a
// full-width rune occupies one em (the font size), a half-width rune half of
// it. That is exact for the fixed-pitch han glyphs these books are set in.
type RuneMeasurer struct{}

func (RuneMeasurer) Width(s string, size float64) float64 {
	cells := 0
	for _, r := range s {
		cells += runewidth.RuneWidth(r)
	}
	return float64(cells) * size / 2
}
