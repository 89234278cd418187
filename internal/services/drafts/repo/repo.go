// Package repo reads the per-hero draft index back out of clickhouse
package repo

import (
	"context"
	"fmt"
	"strings"

	perr "herodex/internal/platform/errors"
	"herodex/internal/platform/store"
	"herodex/internal/services/drafts/domain"
)

// CH implements domain.ReaderRepo on the clickhouse seam
type CH struct {
	ch store.Clickhouse
	db string
}

// NewCH builds the read-side gateway for database db
func NewCH(ch store.Clickhouse, db string) *CH {
	return &CH{ch: ch, db: db}
}

var _ domain.ReaderRepo = (*CH)(nil)

// Drafts scans exactly one hero's slice of the index. The pivot is the
// smallest hero across both sets, so every qualifying match carries a row
// under it and carries exactly one, which keeps pagination stable
func (r *CH) Drafts(ctx context.Context, in domain.QueryInput) ([]domain.MatchDraft, error) {
	if len(in.TeamA) == 0 && len(in.TeamB) == 0 {
		return []domain.MatchDraft{}, nil
	}

	q := fmt.Sprintf(`
		SELECT match_id, radiant, dire
		FROM %s.drafts
		WHERE hero = %d AND %s
		ORDER BY match_id DESC
		LIMIT %d OFFSET %d`,
		r.db, pivot(in.TeamA, in.TeamB), predicate(in.TeamA, in.TeamB), in.Limit, in.Offset)

	rows, err := r.ch.Query(ctx, q)
	if err != nil {
		return nil, perr.DBf("drafts query: %v", err)
	}
	defer rows.Close()

	out := make([]domain.MatchDraft, 0, in.Limit)
	for rows.Next() {
		var d domain.MatchDraft
		if err := rows.Scan(&d.MatchID, &d.Radiant, &d.Dire); err != nil {
			return nil, perr.DBf("drafts scan: %v", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.DBf("drafts rows: %v", err)
	}
	return out, nil
}

// pivot returns the smallest hero id across both sets
func pivot(a, b []uint8) uint8 {
	p := uint8(255)
	for _, h := range a {
		if h < p {
			p = h
		}
	}
	for _, h := range b {
		if h < p {
			p = h
		}
	}
	return p
}

// sideHas renders a containment check of set within the side column
func sideHas(side string, set []uint8) string {
	elems := make([]string, len(set))
	for i, h := range set {
		elems[i] = fmt.Sprintf("%d", h)
	}
	return fmt.Sprintf("bitmapHasAll(bitmapBuild(%s), bitmapBuild([%s]))", side, strings.Join(elems, ","))
}

// predicate renders the side-agnostic containment condition. With one set
// either faction may hold it; with two, the factions must hold one each in
// either orientation
func predicate(a, b []uint8) string {
	switch {
	case len(b) == 0:
		return fmt.Sprintf("(%s OR %s)", sideHas("radiant", a), sideHas("dire", a))
	case len(a) == 0:
		return fmt.Sprintf("(%s OR %s)", sideHas("radiant", b), sideHas("dire", b))
	default:
		return fmt.Sprintf("((%s AND %s) OR (%s AND %s))",
			sideHas("radiant", a), sideHas("dire", b),
			sideHas("radiant", b), sideHas("dire", a))
	}
}
