package bookcompiler

import "testing"

func TestRegistryOrderAndLookup(t *testing.T) {
	reg := NewBookmarkRegistry()
	reg.Add("chap_2", "第一回", 1)
	reg.Add("chap_9", "第二回", 4)
	reg.Add("chap_15", "第二回", 7) // duplicate titles stay distinct

	entries := reg.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, e := range entries {
		if e.Order != i {
			t.Errorf("entry %d has order %d", i, e.Order)
		}
	}

	e, ok := reg.Lookup("chap_9")
	if !ok || e.PageIndex != 4 {
		t.Errorf("Lookup(chap_9) = %+v, %v", e, ok)
	}
	if _, ok := reg.Lookup("chap_404"); ok {
		t.Error("Lookup of unknown id succeeded")
	}
}

func TestRegistryForPage(t *testing.T) {
	reg := NewBookmarkRegistry()
	reg.Add("chap_1", "甲", 3)
	reg.Add("chap_5", "乙", 3)
	reg.Add("chap_8", "丙", 6)

	got := reg.ForPage(3)
	if len(got) != 2 || got[0].ID != "chap_1" || got[1].ID != "chap_5" {
		t.Errorf("ForPage(3) = %+v, want chap_1 then chap_5", got)
	}
	if got := reg.ForPage(99); len(got) != 0 {
		t.Errorf("ForPage(99) = %+v, want none", got)
	}
}

func TestRegistryEntriesIsACopy(t *testing.T) {
	reg := NewBookmarkRegistry()
	reg.Add("chap_1", "甲", 0)
	entries := reg.Entries()
	entries[0].PageIndex = 42
	if e, _ := reg.Lookup("chap_1"); e.PageIndex != 0 {
		t.Error("mutating the returned slice reached the registry")
	}
}
