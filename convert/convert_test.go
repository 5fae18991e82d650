package convert

import (
	"errors"
	"testing"
)

func TestIdentity(t *testing.T) {
	for _, s := range []string{"", "汉字", "第一回 开端"} {
		got, err := Identity{}.Convert(s)
		if err != nil || got != s {
			t.Errorf("Identity.Convert(%q) = %q, %v", s, got, err)
		}
	}
}

// countingConverter records how many times each input reaches it.
type countingConverter struct {
	calls map[string]int
	fail  bool
}

func (c *countingConverter) Convert(s string) (string, error) {
	if c.fail {
		return "", errors.New("converter down")
	}
	c.calls[s]++
	return "轉:" + s, nil
}

func TestCachedMemoizes(t *testing.T) {
	inner := &countingConverter{calls: make(map[string]int)}
	cached := NewCached(inner)

	for i := 0; i < 5; i++ {
		got, err := cached.Convert("重复的行")
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		if got != "轉:重复的行" {
			t.Fatalf("Convert returned %q", got)
		}
	}
	if inner.calls["重复的行"] != 1 {
		t.Errorf("inner converter called %d times, want 1", inner.calls["重复的行"])
	}

	if _, err := cached.Convert("另一行"); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if inner.calls["另一行"] != 1 {
		t.Errorf("distinct lines must reach the inner converter")
	}
}

func TestCachedDoesNotCacheErrors(t *testing.T) {
	inner := &countingConverter{calls: make(map[string]int), fail: true}
	cached := NewCached(inner)

	if _, err := cached.Convert("行"); err == nil {
		t.Fatal("expected error from failing converter")
	}
	inner.fail = false
	got, err := cached.Convert("行")
	if err != nil || got != "轉:行" {
		t.Errorf("recovered Convert = %q, %v; the failure must not stick", got, err)
	}
}
