package bookcompiler

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStyleTableFor(t *testing.T) {
	table := DefaultStyles()
	if got := table.For(RoleTitle); got.FontSize != 24 || got.Alignment != AlignCenter {
		t.Errorf("title style = %+v", got)
	}
	if got := table.For(RoleChapter); got.FontSize != 18 {
		t.Errorf("chapter style = %+v", got)
	}
	if got := table.For(RoleBody); got.FirstIndent != 24 {
		t.Errorf("body style = %+v", got)
	}
	// Anything unknown flows as body text.
	if got := table.For(RoleBlank); got != table.Body {
		t.Errorf("blank style = %+v, want body", got)
	}
}

func TestLoadStylesPartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	src := "chapter:\n  fontSize: 20\n  leading: 26\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadStyles(path)
	if err != nil {
		t.Fatalf("LoadStyles failed: %v", err)
	}
	if table.Chapter.FontSize != 20 || table.Chapter.Leading != 26 {
		t.Errorf("chapter override not applied: %+v", table.Chapter)
	}
	if !table.Chapter.Bold || table.Chapter.SpaceBefore != 20 {
		t.Errorf("unset chapter fields lost their defaults: %+v", table.Chapter)
	}
	if table.Title != DefaultStyles().Title {
		t.Errorf("title style drifted: %+v", table.Title)
	}
}

func TestLoadStylesMissingFile(t *testing.T) {
	if _, err := LoadStyles(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
