package model

import "time"

// PlaygroundVersion is recorded when an interview's package version can't be
// resolved, which is always the case for interviews run from the playground.
const PlaygroundVersion = "playground"

// Reaction is a thumbs-up/down style rating. 0 is neutral, positive is good,
// negative is bad. Reactions are never updated.
type Reaction struct {
	Score     int       `json:"reaction"`
	Interview *string   `json:"interview,omitempty"`
	Version   *string   `json:"version,omitempty"`
	CreatedAt time.Time `json:"datetime"`
}

// ReactionSummary is computed on read, one per (interview, version).
type ReactionSummary struct {
	Interview *string `json:"interview"`
	Version   *string `json:"version"`
	Count     int64   `json:"count"`
	Average   float64 `json:"average"`
}
