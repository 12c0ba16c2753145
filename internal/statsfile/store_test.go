package statsfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tinytelemetry/punchline/internal/model"
)

func TestGetMissingKey(t *testing.T) {
	t.Parallel()

	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	data, found, err := s.Get(model.StatsKey)
	if err != nil || found || data != nil {
		t.Fatalf("Get = %q, %v, %v; want nil, false, nil", data, found, err)
	}
}

func TestPutGet(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Put("k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put("k", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	data, found, err := s.Get("k")
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if string(data) != `{"a":2}` {
		t.Fatalf("Get = %s, want {\"a\":2}", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "k.json")); err != nil {
		t.Fatalf("stat backing file: %v", err)
	}
}

func TestInvalidKey(t *testing.T) {
	t.Parallel()

	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, key := range []string{"", "..", "a/b", `a\b`} {
		if err := s.Put(key, []byte("x")); err == nil {
			t.Errorf("Put(%q) error = nil, want error", key)
		}
	}
}

func TestOpenEmptyDir(t *testing.T) {
	t.Parallel()

	if _, err := Open("  "); err == nil {
		t.Fatal("Open(blank) error = nil, want error")
	}
}

func TestStatsStoreAcrossSessions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s1, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	store := model.NewKVStatsStore(s1, "")
	stats := store.Load()
	stats.Record("Pun")
	stats.Record("Dark")
	stats.Record("Pun")
	if err := store.Save(stats); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s2, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := model.NewKVStatsStore(s2, "").Load()
	if diff := cmp.Diff(stats, got); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestStatsStoreCorruptedFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, model.StatsKey+".json"), []byte("garbage"), 0644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	got := model.NewKVStatsStore(s, "").Load()
	if got.JokeCount != 0 || got.CategoryCount() != 0 {
		t.Fatalf("Load = %+v, want zero stats", got)
	}
}
