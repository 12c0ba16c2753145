package model

import "time"

// Shared defaults used by the CLI and its stores.
const (
	CategoryAny           = "Any"
	DefaultAPIBaseURL     = "https://v2.jokeapi.dev/joke"
	DefaultRequestTimeout = 10 * time.Second
	DefaultToastDuration  = 3 * time.Second
	DefaultCompanionAddr  = "127.0.0.1:4321"

	// StatsKey is the storage key holding the persisted Stats record.
	StatsKey = "jokeAppState"
)

// BlacklistFlags are the content flags excluded from every joke request.
var BlacklistFlags = []string{"nsfw", "religious", "political", "racist", "sexist", "explicit"}
