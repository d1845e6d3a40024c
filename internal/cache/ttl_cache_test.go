package cache

import (
	"testing"
	"time"
)

func TestGetOrSetSharesValue(t *testing.T) {
	c := NewTTLCache[string, *int]()

	calls := 0
	create := func() *int {
		calls++
		v := calls
		return &v
	}

	first := c.GetOrSet("k", time.Minute, create)
	second := c.GetOrSet("k", time.Minute, create)
	if first != second {
		t.Fatal("expected both callers to share one value")
	}
	if calls != 1 {
		t.Fatalf("expected one create, got %d", calls)
	}
}

func TestExpiredEntryIsRecreated(t *testing.T) {
	c := NewTTLCache[string, int]()

	c.Set("k", 1, time.Nanosecond)
	time.Sleep(2 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected expired entry to be gone")
	}
	got := c.GetOrSet("k", time.Minute, func() int { return 2 })
	if got != 2 {
		t.Fatalf("expected recreated value 2, got %d", got)
	}
}

func TestZeroTTLNeverExpires(t *testing.T) {
	c := NewTTLCache[string, int]()

	c.Set("k", 7, 0)
	time.Sleep(2 * time.Millisecond)
	if got, ok := c.Get("k"); !ok || got != 7 {
		t.Fatalf("expected persistent entry, got %d ok=%v", got, ok)
	}

	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected deleted entry to be gone")
	}
}
