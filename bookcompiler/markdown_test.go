package bookcompiler

import "testing"

func TestLinesFromMarkdown(t *testing.T) {
	src := []byte(`# 红楼梦

第一段正文。

## 第一回 甄士隐梦幻识通灵

开卷第一回也。

- 要点一
`)
	lines, err := LinesFromMarkdown(src)
	if err != nil {
		t.Fatalf("LinesFromMarkdown failed: %v", err)
	}

	want := []struct {
		role Role
		text string
	}{
		{RoleChapter, "红楼梦"},
		{RoleBody, "第一段正文。"},
		{RoleChapter, "第一回 甄士隐梦幻识通灵"},
		{RoleBody, "开卷第一回也。"},
		{RoleBody, "要点一"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %+v", len(lines), len(want), lines)
	}
	for i, w := range want {
		if lines[i].Role != w.role || lines[i].Text != w.text {
			t.Errorf("line %d = %v %q, want %v %q", i, lines[i].Role, lines[i].Text, w.role, w.text)
		}
		if lines[i].Index != i {
			t.Errorf("line %d carries index %d", i, lines[i].Index)
		}
	}
}

func TestMarkdownFeedsComposer(t *testing.T) {
	src := []byte("# 书名\n\n## 第一章\n\n正文。\n\n## 第二章\n\n正文。\n")
	lines, err := LinesFromMarkdown(src)
	if err != nil {
		t.Fatalf("LinesFromMarkdown failed: %v", err)
	}
	blocks, reg, err := newTestComposer(t).ComposeLines(lines)
	if err != nil {
		t.Fatalf("ComposeLines failed: %v", err)
	}
	// The leading heading becomes the title; the two章 headings land in the
	// outline even though they never match the 第X回 pattern.
	if blocks[0].Line.Role != RoleTitle {
		t.Errorf("first markdown line is %v, want title", blocks[0].Line.Role)
	}
	if reg.Len() != 2 {
		t.Errorf("registry has %d entries, want 2", reg.Len())
	}
}
