package cache

import (
	"testing"
	"time"
)

func TestGetMissing(t *testing.T) {
	store := New[int](nil)
	if _, ok := store.Get("absent"); ok {
		t.Fatal("expected miss on empty store")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	store := New[string](nil)
	store.Set("k", "v", time.Minute)

	got, ok := store.Get("k")
	if !ok || got != "v" {
		t.Fatalf("expected hit with v, got %q, %v", got, ok)
	}
}

func TestExpiryDeletesOnRead(t *testing.T) {
	store := New[int](nil)
	now := time.Now()
	store.now = func() time.Time { return now }

	store.Set("k", 1, time.Second)

	now = now.Add(time.Second)
	if _, ok := store.Get("k"); ok {
		t.Fatal("expected expired entry to miss")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry removed, have %d", store.Len())
	}
}

func TestNonPositiveTTLRemoves(t *testing.T) {
	store := New[int](nil)
	store.Set("k", 1, time.Minute)
	store.Set("k", 2, 0)

	if _, ok := store.Get("k"); ok {
		t.Fatal("zero TTL must remove the key")
	}
}

func TestCloneIsolatesCallers(t *testing.T) {
	clone := func(in []int) []int {
		out := make([]int, len(in))
		copy(out, in)
		return out
	}
	store := New(clone)

	original := []int{1, 2, 3}
	store.Set("k", original, time.Minute)
	original[0] = 99

	first, _ := store.Get("k")
	if first[0] != 1 {
		t.Fatalf("cached value mutated through Set argument: %v", first)
	}

	first[1] = 99
	second, _ := store.Get("k")
	if second[1] != 2 {
		t.Fatalf("cached value mutated through Get result: %v", second)
	}
}

func TestSweepReclaimsExpired(t *testing.T) {
	store := New[int](nil)
	now := time.Now()
	store.now = func() time.Time { return now }

	for i := 0; i < sweepEvery-1; i++ {
		store.Set(string(rune('a'+i%26))+string(rune('0'+i/26)), i, time.Second)
	}
	now = now.Add(2 * time.Second)

	// The next Set crosses the sweep threshold and purges everything
	// expired.
	store.Set("fresh", 1, time.Minute)
	if store.Len() != 1 {
		t.Fatalf("expected only the fresh entry after sweep, have %d", store.Len())
	}
}
