// Package repo persists the per-hero draft index into clickhouse
package repo

import (
	"context"
	"fmt"

	"herodex/internal/core/dota2"
	perr "herodex/internal/platform/errors"
	"herodex/internal/platform/store"
	"herodex/internal/services/collector/domain"
)

// CH implements domain.StorageRepo on the clickhouse seam
type CH struct {
	ch store.Clickhouse
	db string
}

// NewCH builds the write-side gateway for database db
func NewCH(ch store.Clickhouse, db string) *CH {
	return &CH{ch: ch, db: db}
}

var _ domain.StorageRepo = (*CH)(nil)

// EnsureSchema provisions the database and the drafts table. Rows are keyed
// by (hero, match_id) so a subset query can pin one hero and stay on a
// contiguous key range
func (r *CH) EnsureSchema(ctx context.Context) error {
	if err := r.ch.Exec(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", r.db)); err != nil {
		return perr.DBf("create database %s: %v", r.db, err)
	}

	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.drafts (
			hero     UInt8,
			match_id UInt64,
			radiant  Array(UInt8),
			dire     Array(UInt8)
		)
		ENGINE = MergeTree
		PARTITION BY intDiv(match_id, 10000000)
		ORDER BY (hero, match_id)`, r.db)
	if err := r.ch.Exec(ctx, ddl); err != nil {
		return perr.DBf("create drafts table: %v", err)
	}
	return nil
}

// SaveIndexedMasks appends one hero bucket as rows carrying the full draft
func (r *CH) SaveIndexedMasks(ctx context.Context, hero uint8, masks []dota2.MatchMask) error {
	if len(masks) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(masks))
	for _, m := range masks {
		rows = append(rows, []any{hero, m.MatchID, m.Radiant.Heroes(), m.Dire.Heroes()})
	}
	if err := r.ch.Insert(ctx, r.db+".drafts", rows); err != nil {
		return perr.DBf("insert %d draft rows for hero %d: %v", len(rows), hero, err)
	}
	return nil
}
