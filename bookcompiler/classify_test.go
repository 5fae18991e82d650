package bookcompiler

import "testing"

func TestClassifyRoles(t *testing.T) {
	cls, err := NewClassifier("")
	if err != nil {
		t.Fatalf("NewClassifier failed: %v", err)
	}

	cases := []struct {
		text string
		want Role
	}{
		{"第一回 甄士隐梦幻识通灵", RoleChapter},
		{"第12回 收尾", RoleChapter},
		{"第一百二十回 甄士隐详说太虚情", RoleChapter},
		{"第两千回", RoleChapter},
		{"", RoleBlank},
		{"   \t  ", RoleBlank},
		{"这是一段正文。", RoleBody},
		{"第回", RoleBody},          // no numeral between marker and unit
		{"he said 第一回", RoleBody}, // heading marker must open the line
		{"Chapter 1", RoleBody},
	}
	for _, tc := range cases {
		if got := cls.Classify(tc.text); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	cls, _ := NewClassifier("")
	for _, text := range []string{"第三回 开端", "正文", ""} {
		first := cls.Classify(text)
		for i := 0; i < 10; i++ {
			if got := cls.Classify(text); got != first {
				t.Fatalf("Classify(%q) changed from %v to %v on call %d", text, first, got, i)
			}
		}
	}
}

func TestClassifyCustomPattern(t *testing.T) {
	cls, err := NewClassifier(`^第[〇零一二三四五六七八九十百千万两\d]+[回章]`)
	if err != nil {
		t.Fatalf("NewClassifier failed: %v", err)
	}
	if got := cls.Classify("第三章 另一种体例"); got != RoleChapter {
		t.Errorf("custom unit glyph not matched, got %v", got)
	}
}

func TestClassifyBadPattern(t *testing.T) {
	if _, err := NewClassifier(`([`); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}
