package bookcompiler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixtureFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompileTxtEndToEnd(t *testing.T) {
	src := strings.Join(fixtureLines, "\n") + "\n"
	input := writeFixtureFile(t, "novel.txt", src)

	rec := NewRecorder()
	bc := NewBookCompiler(input, t.TempDir())
	bc.NewCanvas = func(Config, string) (Canvas, error) { return rec, nil }

	res, err := bc.Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if res.NumberedPages != 2 {
		t.Errorf("NumberedPages = %d, want 2", res.NumberedPages)
	}
	if len(rec.Pages()) != 3 {
		t.Errorf("captured %d pages, want 3", len(rec.Pages()))
	}
	if !rec.Finalized() {
		t.Error("canvas never finalized")
	}
}

func TestCompileCRLFInput(t *testing.T) {
	input := writeFixtureFile(t, "novel.txt", "书名\r\n\r\n正文。\r\n")

	rec := NewRecorder()
	bc := NewBookCompiler(input, t.TempDir())
	bc.NewCanvas = func(Config, string) (Canvas, error) { return rec, nil }

	if _, err := bc.Compile(); err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if len(rec.Pages()) != 2 {
		t.Errorf("captured %d pages, want title page + body page", len(rec.Pages()))
	}
}

func TestCompileRejectsUnknownExtension(t *testing.T) {
	input := writeFixtureFile(t, "novel.epub", "书名\n")
	bc := NewBookCompiler(input, t.TempDir())
	if _, err := bc.Compile(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestCompileEmptyFileStillProducesTitlePage(t *testing.T) {
	input := writeFixtureFile(t, "empty.txt", "\n\n\n")

	rec := NewRecorder()
	bc := NewBookCompiler(input, t.TempDir())
	bc.NewCanvas = func(Config, string) (Canvas, error) { return rec, nil }

	res, err := bc.Compile()
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if res.NumberedPages != 0 || len(rec.Pages()) != 1 {
		t.Errorf("empty file: %d numbered pages, %d captured, want 0 and 1", res.NumberedPages, len(rec.Pages()))
	}
}
