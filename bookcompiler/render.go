package bookcompiler

import (
	"errors"
	"fmt"
)

// renderState tracks progress through the two passes.
type renderState int

const (
	stateIdle renderState = iota
	stateEmitting
	stateCaptured
	stateFinalizing
	stateDone
)

// ErrRendererSpent is returned when a renderer is asked to run twice. A
// render is a one-shot batch; make a new renderer per document.
var ErrRendererSpent = errors.New("renderer already used")

// PassError reports a canvas fault and where it happened. Faults in pass 1
// abort before anything reaches the backend, so no output exists. Faults in
// pass 2 arrive after earlier pages were committed: the artifact is not
// resumable and must be regenerated from scratch.
type PassError struct {
	Pass int // 1 or 2
	Page int // physical page index where the fault surfaced
	Err  error
}

func (e *PassError) Error() string {
	return fmt.Sprintf("canvas fault on page %d in pass %d: %v", e.Page, e.Pass, e.Err)
}

func (e *PassError) Unwrap() error { return e.Err }

// Result is the outcome of a finished render.
type Result struct {
	// NumberedPages is the footer denominator: every physical page except
	// the title page. An empty document yields one title page and zero here.
	NumberedPages int
	// ArtifactPath is the backend's artifact handle, empty for in-memory
	// backends.
	ArtifactPath string
}

// Renderer drives a Canvas through the two-pass emission protocol. Pass 1
// lays every block down through an internal recorder and captures one
// PageState per page, including that page's deferred navigation entries.
// Pass 2 runs once the total page count is known: it replays each captured
// page against the real backend, stamps the "Page K of TOTAL" footer on every
// page but the title page, and commits.
//
// Two passes are unavoidable here: the backend finalizes a page irrevocably
// at commit, yet the footer denominator and the navigation replay order are
// functions of the complete layout.
type Renderer struct {
	cfg     Config
	measure Measurer
	state   renderState
}

// NewRenderer builds a single-use renderer. A nil measurer falls back to
// RuneMeasurer.
func NewRenderer(cfg Config, m Measurer) *Renderer {
	if m == nil {
		m = RuneMeasurer{}
	}
	return &Renderer{cfg: cfg, measure: m}
}

// Render emits blocks to the canvas and finalizes the document. An empty
// block list still produces a single, unnumbered title page.
func (r *Renderer) Render(canvas Canvas, blocks []Block, reg *BookmarkRegistry) (*Result, error) {
	if r.state != stateIdle {
		return nil, ErrRendererSpent
	}
	if reg == nil {
		reg = NewBookmarkRegistry()
	}

	r.state = stateEmitting
	rec := NewRecorder()
	if err := r.emit(rec, blocks, reg); err != nil {
		r.state = stateDone
		return nil, err
	}
	r.state = stateCaptured

	pages := rec.Pages()
	total := len(pages) - 1 // the title page never counts

	r.state = stateFinalizing
	for i, ps := range pages {
		canvas.BeginPage()
		for _, run := range ps.Runs {
			canvas.DrawText(run)
		}
		for _, rule := range ps.Rules {
			canvas.DrawRule(rule)
		}
		for _, nav := range ps.Navs {
			if nav.Outline {
				canvas.RegisterNavEntry(nav.Title, nav.ID, nav.Level)
			} else {
				canvas.RegisterBookmark(nav.ID)
			}
		}
		if i > 0 {
			r.stampFooter(canvas, i, total)
		}
		if err := canvas.CommitPage(); err != nil {
			r.state = stateDone
			return nil, &PassError{Pass: 2, Page: i, Err: err}
		}
	}

	path, err := canvas.Finalize()
	if err != nil {
		r.state = stateDone
		return nil, &PassError{Pass: 2, Page: len(pages) - 1, Err: err}
	}
	r.state = stateDone
	return &Result{NumberedPages: total, ArtifactPath: path}, nil
}

// emit is pass 1: group blocks by page, draw them through the recorder, and
// attach each page's deferred navigation instructions before capturing it.
func (r *Renderer) emit(rec *Recorder, blocks []Block, reg *BookmarkRegistry) error {
	commit := func(page int) error {
		if err := rec.CommitPage(); err != nil {
			return &PassError{Pass: 1, Page: page, Err: err}
		}
		return nil
	}

	if len(blocks) == 0 {
		rec.BeginPage()
		return commit(0)
	}

	last := blocks[len(blocks)-1].Page
	idx := 0
	for page := 0; page <= last; page++ {
		rec.BeginPage()
		for idx < len(blocks) && blocks[idx].Page == page {
			r.emitBlock(rec, blocks[idx])
			idx++
		}
		for _, e := range reg.ForPage(page) {
			rec.RegisterBookmark(e.ID)
			rec.RegisterNavEntry(e.Title, e.ID, 0)
		}
		if err := commit(page); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) emitBlock(c Canvas, b Block) {
	for i, line := range b.Wrapped {
		x := r.cfg.MarginLeft
		if b.Style.Alignment == AlignCenter {
			w := r.measure.Width(line, b.Style.FontSize)
			x = (r.cfg.PageWidth - w) / 2
		} else if i == 0 {
			x += b.Style.FirstIndent
		}
		c.DrawText(TextRun{
			Text: line,
			X:    x,
			// The baseline sits one glyph height below the line box top.
			Y:    b.Y + float64(i)*b.Style.Leading + b.Style.FontSize,
			Size: b.Style.FontSize,
			Bold: b.Style.Bold,
		})
	}
}

// stampFooter draws the separator rule and the page stamp. K is the physical
// page index, which already equals the 1-based ordinal among numbered pages
// because page 0 is exempt.
func (r *Renderer) stampFooter(c Canvas, pageIndex, total int) {
	y := r.cfg.PageHeight - 45
	c.DrawRule(Rule{
		X1:    r.cfg.MarginLeft,
		Y1:    y,
		X2:    r.cfg.PageWidth - r.cfg.MarginRight,
		Y2:    y,
		Width: 0.5,
		Gray:  0.7,
	})
	stamp := fmt.Sprintf("Page %d of %d", pageIndex, total)
	w := r.measure.Width(stamp, r.cfg.FooterSize)
	c.DrawText(TextRun{
		Text: stamp,
		X:    (r.cfg.PageWidth - w) / 2,
		Y:    r.cfg.PageHeight - 30,
		Size: r.cfg.FooterSize,
	})
}
