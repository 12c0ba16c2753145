package model

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
)

// Stats holds session statistics persisted across runs.
type Stats struct {
	JokeCount      int
	CategoriesSeen map[string]struct{}
}

// NewStats returns zero Stats with an initialized category set.
func NewStats() Stats {
	return Stats{CategoriesSeen: make(map[string]struct{})}
}

// Record counts one successfully fetched joke of the given category.
func (s *Stats) Record(category string) {
	if s.CategoriesSeen == nil {
		s.CategoriesSeen = make(map[string]struct{})
	}
	s.JokeCount++
	s.CategoriesSeen[category] = struct{}{}
}

// CategoryCount returns the number of distinct categories seen.
func (s Stats) CategoryCount() int {
	return len(s.CategoriesSeen)
}

// Categories returns the seen categories sorted.
func (s Stats) Categories() []string {
	out := make([]string, 0, len(s.CategoriesSeen))
	for c := range s.CategoriesSeen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy.
func (s Stats) Clone() Stats {
	c := Stats{JokeCount: s.JokeCount, CategoriesSeen: make(map[string]struct{}, len(s.CategoriesSeen))}
	for k := range s.CategoriesSeen {
		c.CategoriesSeen[k] = struct{}{}
	}
	return c
}

// statsRecord is the persisted JSON shape.
type statsRecord struct {
	JokeCount      int      `json:"jokeCount"`
	CategoriesSeen []string `json:"categoriesSeen"`
}

// EncodeStats serializes stats to the persisted JSON shape.
func EncodeStats(s Stats) ([]byte, error) {
	data, err := json.Marshal(statsRecord{
		JokeCount:      s.JokeCount,
		CategoriesSeen: s.Categories(),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding stats: %w", err)
	}
	return data, nil
}

// DecodeStats parses the persisted JSON shape. A negative count is read as 0
// and a missing category list as empty.
func DecodeStats(data []byte) (Stats, error) {
	var rec statsRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return NewStats(), fmt.Errorf("decoding stats: %w", err)
	}
	s := NewStats()
	if rec.JokeCount > 0 {
		s.JokeCount = rec.JokeCount
	}
	for _, c := range rec.CategoriesSeen {
		s.CategoriesSeen[c] = struct{}{}
	}
	return s, nil
}

// KVStatsStore stores Stats as JSON under one key of a KVStore.
type KVStatsStore struct {
	kv  KVStore
	key string
}

// NewKVStatsStore wraps kv. An empty key defaults to StatsKey.
func NewKVStatsStore(kv KVStore, key string) *KVStatsStore {
	if key == "" {
		key = StatsKey
	}
	return &KVStatsStore{kv: kv, key: key}
}

// Load returns the stored Stats, or zero Stats when the record is absent,
// unreadable, or malformed. Failures other than absence are logged.
func (s *KVStatsStore) Load() Stats {
	data, found, err := s.kv.Get(s.key)
	if err != nil {
		log.Printf("stats: reading %q: %v", s.key, err)
		return NewStats()
	}
	if !found {
		return NewStats()
	}
	stats, err := DecodeStats(data)
	if err != nil {
		log.Printf("stats: %q: %v (starting from zero)", s.key, err)
		return NewStats()
	}
	return stats
}

// Save writes stats under the store key.
func (s *KVStatsStore) Save(stats Stats) error {
	data, err := EncodeStats(stats)
	if err != nil {
		return err
	}
	if err := s.kv.Put(s.key, data); err != nil {
		return fmt.Errorf("writing %q: %w", s.key, err)
	}
	return nil
}
