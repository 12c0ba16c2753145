package model

import "context"

// JokeFetcher retrieves one joke for a category.
type JokeFetcher interface {
	Fetch(ctx context.Context, category string) (Joke, error)
}

// StatsStore persists the Stats record.
// Load never fails: absent or unreadable data yields zero Stats.
type StatsStore interface {
	Load() Stats
	Save(stats Stats) error
}

// KVStore is the raw key-value contract the stats stores are built on.
// Get reports found=false, err=nil for an absent key.
type KVStore interface {
	Get(key string) (value []byte, found bool, err error)
	Put(key string, value []byte) error
}

// ClipboardWriter writes text to the system clipboard.
type ClipboardWriter interface {
	WriteAll(text string) error
}
