package bookcompiler

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjgcainiao/HanwenPDF/convert"
)

// BookCompiler handles the conversion of one source novel into a PDF book.
type BookCompiler struct {
	InputPath string
	OutputDir string

	Config    Config
	Styles    StyleTable
	Converter convert.Converter

	// NewCanvas builds the output canvas for a run. Tests swap in a
	// recorder factory.
	NewCanvas func(cfg Config, outPath string) (Canvas, error)
}

// NewBookCompiler creates a compiler with the stock page setup and no script
// conversion. Callers wanting Simplified-to-Traditional output set Converter.
func NewBookCompiler(inputPath, outputDir string) *BookCompiler {
	return &BookCompiler{
		InputPath: inputPath,
		OutputDir: outputDir,
		Config:    DefaultConfig(),
		Styles:    DefaultStyles(),
		Converter: convert.Identity{},
		NewCanvas: func(cfg Config, outPath string) (Canvas, error) {
			return NewFPDF(cfg, outPath)
		},
	}
}

// Compile reads the input, converts every line, composes the page layout and
// renders the final PDF in two passes. Plain .txt is classified line by line;
// .md goes through the markdown adapter with roles pre-assigned.
func (bc *BookCompiler) Compile() (*Result, error) {
	ext := strings.ToLower(filepath.Ext(bc.InputPath))
	if ext != ".txt" && ext != ".md" {
		return nil, fmt.Errorf("unsupported input %s: need a .txt or .md file", bc.InputPath)
	}

	data, err := os.ReadFile(bc.InputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var lines []Line
	if ext == ".md" {
		lines, err = LinesFromMarkdown(data)
		if err != nil {
			return nil, err
		}
	} else {
		for i, text := range splitLines(data) {
			lines = append(lines, Line{Index: i, Text: text})
		}
	}

	for i := range lines {
		converted, err := bc.Converter.Convert(lines[i].Text)
		if err != nil {
			return nil, fmt.Errorf("convert line %d: %w", lines[i].Index, err)
		}
		lines[i].Text = converted
	}

	// The output name is converted too, as readers of the traditional
	// edition expect traditional filenames.
	stem := strings.TrimSuffix(filepath.Base(bc.InputPath), filepath.Ext(bc.InputPath))
	if stem, err = bc.Converter.Convert(stem); err != nil {
		return nil, fmt.Errorf("convert output name: %w", err)
	}
	if err := os.MkdirAll(bc.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	outPath := filepath.Join(bc.OutputDir, stem+"_traditional.pdf")

	canvas, err := bc.NewCanvas(bc.Config, outPath)
	if err != nil {
		return nil, err
	}

	// Prefer the backend's real font metrics for wrapping when it has any.
	var m Measurer = RuneMeasurer{}
	if cm, ok := canvas.(Measurer); ok {
		m = cm
	}

	cls, err := NewClassifier(bc.Config.ChapterPattern)
	if err != nil {
		return nil, err
	}

	blocks, reg, err := NewComposer(bc.Config, bc.Styles, cls, m).ComposeLines(lines)
	if err != nil {
		return nil, err
	}

	res, err := NewRenderer(bc.Config, m).Render(canvas, blocks, reg)
	if err != nil {
		return nil, err
	}
	log.Printf("compiled %s: %d numbered pages, %d chapters -> %s",
		bc.InputPath, res.NumberedPages, reg.Len(), outPath)
	return res, nil
}
