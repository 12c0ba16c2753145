package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type memKV struct {
	data   map[string][]byte
	getErr error
	putErr error
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Put(key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	return nil
}

func TestStatsRecord_CountsAndCollapsesCategories(t *testing.T) {
	t.Parallel()

	s := Stats{JokeCount: 4}
	for _, c := range []string{"Pun", "Programming", "Pun", "Misc", "Pun"} {
		s.Record(c)
	}

	if s.JokeCount != 9 {
		t.Fatalf("JokeCount = %d, want 9", s.JokeCount)
	}
	if diff := cmp.Diff([]string{"Misc", "Programming", "Pun"}, s.Categories()); diff != "" {
		t.Fatalf("categories mismatch (-want +got):\n%s", diff)
	}
	if s.CategoryCount() != 3 {
		t.Fatalf("CategoryCount = %d, want 3", s.CategoryCount())
	}
}

func TestEncodeStats_Shape(t *testing.T) {
	t.Parallel()

	s := NewStats()
	s.Record("Spooky")
	s.Record("Dark")

	data, err := EncodeStats(s)
	if err != nil {
		t.Fatalf("EncodeStats: %v", err)
	}
	want := `{"jokeCount":2,"categoriesSeen":["Dark","Spooky"]}`
	if string(data) != want {
		t.Fatalf("encoded = %s, want %s", data, want)
	}
}

func TestDecodeStats_Tolerant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantCount int
		wantCats  []string
	}{
		{"missing categories", `{"jokeCount":3}`, 3, []string{}},
		{"null categories", `{"jokeCount":1,"categoriesSeen":null}`, 1, []string{}},
		{"negative count", `{"jokeCount":-5,"categoriesSeen":["Pun"]}`, 0, []string{"Pun"}},
		{"duplicate categories", `{"jokeCount":2,"categoriesSeen":["Pun","Pun"]}`, 2, []string{"Pun"}},
		{"empty object", `{}`, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := DecodeStats([]byte(tt.input))
			if err != nil {
				t.Fatalf("DecodeStats: %v", err)
			}
			if s.JokeCount != tt.wantCount {
				t.Errorf("JokeCount = %d, want %d", s.JokeCount, tt.wantCount)
			}
			if diff := cmp.Diff(tt.wantCats, s.Categories()); diff != "" {
				t.Errorf("categories mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKVStatsStore_LoadDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kv   *memKV
	}{
		{"absent", newMemKV()},
		{"corrupted", &memKV{data: map[string][]byte{StatsKey: []byte("{not json")}}},
		{"wrong type", &memKV{data: map[string][]byte{StatsKey: []byte(`{"jokeCount":"many"}`)}}},
		{"read error", &memKV{data: map[string][]byte{}, getErr: errors.New("disk gone")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewKVStatsStore(tt.kv, "").Load()
			if s.JokeCount != 0 || s.CategoryCount() != 0 {
				t.Fatalf("Load() = %+v, want zero stats", s)
			}
			if s.CategoriesSeen == nil {
				t.Fatal("Load() returned nil category set")
			}
		})
	}
}

func TestKVStatsStore_RoundTrip(t *testing.T) {
	t.Parallel()

	kv := newMemKV()
	first := NewKVStatsStore(kv, "")

	s := first.Load()
	s.Record("Pun")
	s.Record("Programming")
	s.Record("Pun")
	if err := first.Save(s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A fresh store over the same backing data simulates a new session.
	got := NewKVStatsStore(kv, "").Load()
	if diff := cmp.Diff(s, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestKVStatsStore_SaveError(t *testing.T) {
	t.Parallel()

	kv := newMemKV()
	kv.putErr = errors.New("read-only")
	if err := NewKVStatsStore(kv, "").Save(NewStats()); err == nil {
		t.Fatal("Save() error = nil, want error")
	}
}

func TestCanonicalCategory(t *testing.T) {
	t.Parallel()

	if got, ok := CanonicalCategory("programming"); !ok || got != "Programming" {
		t.Fatalf("CanonicalCategory(programming) = %q, %v", got, ok)
	}
	if got, ok := CanonicalCategory(" any "); !ok || got != CategoryAny {
		t.Fatalf("CanonicalCategory(any) = %q, %v", got, ok)
	}
	if _, ok := CanonicalCategory("Knock-Knock"); ok {
		t.Fatal("CanonicalCategory(Knock-Knock) ok = true, want false")
	}
	if CategoryIndex("nope") != 0 {
		t.Fatal("CategoryIndex(unknown) != 0")
	}
}
