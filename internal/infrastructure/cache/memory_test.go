package cache

import (
	"context"
	"testing"
	"time"
)

type payload struct {
	Count int            `json:"count"`
	Moods map[string]int `json:"moods"`
}

func TestMemoryStore_SetGetDel(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	if err := store.SetJSON(ctx, "k", payload{Count: 3, Moods: map[string]int{"calm": 2}}, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var got payload
	hit, err := store.GetJSON(ctx, "k", &got)
	if err != nil || !hit {
		t.Fatalf("expected hit, got %v %v", hit, err)
	}
	if got.Count != 3 || got.Moods["calm"] != 2 {
		t.Fatalf("unexpected value %+v", got)
	}

	_ = store.Del(ctx, "k")
	if hit, _ := store.GetJSON(ctx, "k", &got); hit {
		t.Fatalf("expected miss after delete")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	_ = store.SetJSON(ctx, "k", payload{Count: 1}, -time.Second)

	var got payload
	if hit, _ := store.GetJSON(ctx, "k", &got); hit {
		t.Fatalf("expired item should be a miss")
	}
}

func TestMemoryStore_Generation(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()
	ctx := context.Background()

	if n, err := store.Generation(ctx, "gen"); err != nil || n != 0 {
		t.Fatalf("unset counter should read 0, got %d %v", n, err)
	}
	for want := int64(1); want <= 3; want++ {
		if n, _ := store.Bump(ctx, "gen"); n != want {
			t.Fatalf("bump returned %d, want %d", n, want)
		}
	}
	if n, _ := store.Generation(ctx, "gen"); n != 3 {
		t.Fatalf("generation = %d, want 3", n)
	}
	if n, _ := store.Generation(ctx, "other"); n != 0 {
		t.Fatalf("counters should be independent, got %d", n)
	}
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	store.Close()
	store.Close()
}

var _ Cache = (*MemoryStore)(nil)
var _ Cache = (*RedisCache)(nil)
