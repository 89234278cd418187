// Package domain defines the draft query port and types
package domain

import "context"

// QueryInput selects matches whose drafts contain both hero sets
// TeamA and TeamB are unordered and side-agnostic: a match qualifies when
// one faction drafted all of TeamA and the other all of TeamB
type QueryInput struct {
	TeamA  []uint8 `json:"team_a" validate:"max=5,dive,min=1"`
	TeamB  []uint8 `json:"team_b" validate:"max=5,dive,min=1"`
	Limit  int     `json:"limit" validate:"min=1,max=100"`
	Offset int     `json:"offset" validate:"min=0"`
}

// MatchDraft is one qualifying match with both full hero sets
type MatchDraft struct {
	MatchID uint64  `json:"match_id"`
	Radiant []uint8 `json:"radiant"`
	Dire    []uint8 `json:"dire"`
}

// QueryPort is the public read port exposed by the module
type QueryPort interface {
	Drafts(ctx context.Context, in QueryInput) ([]MatchDraft, error)
}

// ReaderRepo is the bitmap store gateway read path
type ReaderRepo interface {
	// Drafts returns matches containing both sets, newest first
	// an input with both sets empty must return empty without a scan
	Drafts(ctx context.Context, in QueryInput) ([]MatchDraft, error)
}
