package bookcompiler

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// FPDF is the gofpdf-backed Canvas. Committed pages go straight into the
// underlying document, so as far as callers are concerned a page really is
// immutable once CommitPage returns.
type FPDF struct {
	pdf     *gofpdf.Fpdf
	cfg     Config
	outPath string
	links   map[string]int
	cjk     bool
}

// NewFPDF opens a PDF canvas writing to outPath. The configured font must be
// a UTF-8 TTF (Chinese text needs one; the fifteen builtin PDF fonts cannot
// encode it), so a missing font file is an immediate error rather than a
// garbled document later.
func NewFPDF(cfg Config, outPath string) (*FPDF, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0) // pagination is the composer's job

	cjk := cfg.FontPath != ""
	if cjk {
		if _, err := os.Stat(cfg.FontPath); err != nil {
			return nil, fmt.Errorf("font file %s: %w", cfg.FontPath, err)
		}
		pdf.AddUTF8Font(cfg.FontName, "", cfg.FontPath)
		pdf.AddUTF8Font(cfg.FontName, "B", cfg.FontPath)
		if pdf.Err() {
			return nil, fmt.Errorf("register font %s: %w", cfg.FontPath, pdf.Error())
		}
	}

	return &FPDF{
		pdf:     pdf,
		cfg:     cfg,
		outPath: outPath,
		links:   make(map[string]int),
		cjk:     cjk,
	}, nil
}

func (f *FPDF) font() string {
	if f.cjk {
		return f.cfg.FontName
	}
	return "Helvetica"
}

func (f *FPDF) BeginPage() {
	f.pdf.AddPage()
}

func (f *FPDF) DrawText(run TextRun) {
	style := ""
	if run.Bold {
		style = "B"
	}
	f.pdf.SetFont(f.font(), style, run.Size)
	f.pdf.Text(run.X, run.Y, run.Text)
}

func (f *FPDF) DrawRule(rule Rule) {
	c := int(rule.Gray * 255)
	f.pdf.SetDrawColor(c, c, c)
	f.pdf.SetLineWidth(rule.Width)
	f.pdf.Line(rule.X1, rule.Y1, rule.X2, rule.Y2)
}

// RegisterBookmark anchors a named destination at the top of the current
// page.
func (f *FPDF) RegisterBookmark(id string) {
	link := f.pdf.AddLink()
	f.pdf.SetLink(link, 0, -1)
	f.links[id] = link
}

// Link reports the gofpdf link id anchored for a bookmark, for callers that
// want to point internal link annotations at a chapter.
func (f *FPDF) Link(id string) (int, bool) {
	link, ok := f.links[id]
	return link, ok
}

// RegisterNavEntry adds a sidebar outline entry pointing at the current page.
func (f *FPDF) RegisterNavEntry(title, id string, level int) {
	f.pdf.Bookmark(title, level, -1)
}

func (f *FPDF) CommitPage() error {
	if f.pdf.Err() {
		return fmt.Errorf("commit page %d: %w", f.pdf.PageNo(), f.pdf.Error())
	}
	return nil
}

func (f *FPDF) Finalize() (string, error) {
	if err := f.pdf.OutputFileAndClose(f.outPath); err != nil {
		return "", fmt.Errorf("write %s: %w", f.outPath, err)
	}
	return f.outPath, nil
}

// Width implements Measurer with the backend's real font metrics.
func (f *FPDF) Width(s string, size float64) float64 {
	f.pdf.SetFont(f.font(), "", size)
	return f.pdf.GetStringWidth(s)
}
