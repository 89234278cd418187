// Package domain defines the collector's ports and types
package domain

import (
	"context"

	"herodex/internal/core/dota2"
)

// RunnerPort is the public port exposed by the module
type RunnerPort interface {
	Run(ctx context.Context) error
}

// FetcherPort is one fetch handle of the upstream match-history feed
// implementations must classify every failure as exactly one of
// shape mismatch (steam.DecodeError) or transient (anything else)
type FetcherPort interface {
	Matches(ctx context.Context, seq uint64, count int) ([]dota2.Match, error)
}

// StorageRepo is the bitmap store gateway write path
type StorageRepo interface {
	// EnsureSchema provisions the database and drafts table
	EnsureSchema(ctx context.Context) error

	// SaveIndexedMasks appends one hero bucket's worth of masks
	// appends are unconditional, there is no upsert or dedup
	SaveIndexedMasks(ctx context.Context, hero uint8, masks []dota2.MatchMask) error
}
