package duckdb

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tinytelemetry/punchline/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore(\"\") failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetMissingKey(t *testing.T) {
	store := newTestStore(t)

	value, found, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found || value != nil {
		t.Fatalf("Get(missing) = %q, %v; want nil, false", value, found)
	}
}

func TestPutOverwrites(t *testing.T) {
	store := newTestStore(t)

	if err := store.Put("a", []byte("one")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put("a", []byte("two")); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	if err := store.Put("b", []byte("three")); err != nil {
		t.Fatalf("Put b: %v", err)
	}

	value, found, err := store.Get("a")
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if string(value) != "two" {
		t.Errorf("Get(a) = %q, want two", value)
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestStatsPersistAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "punchline.duckdb")

	first, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	stats := model.NewKVStatsStore(first, "").Load()
	if stats.JokeCount != 0 || stats.CategoryCount() != 0 {
		t.Fatalf("fresh Load = %+v, want zero", stats)
	}
	stats.Record("Programming")
	stats.Record("Christmas")
	if err := model.NewKVStatsStore(first, "").Save(stats); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { second.Close() })

	got := model.NewKVStatsStore(second, "").Load()
	if diff := cmp.Diff(stats, got); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestCorruptedStatsDefault(t *testing.T) {
	store := newTestStore(t)
	if err := store.Put(model.StatsKey, []byte("[1,2")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got := model.NewKVStatsStore(store, "").Load()
	if got.JokeCount != 0 || got.CategoryCount() != 0 {
		t.Fatalf("Load = %+v, want zero stats", got)
	}
}
