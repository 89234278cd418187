package repo

import (
	"context"
	"strings"
	"testing"

	"herodex/internal/platform/store"
	"herodex/internal/services/drafts/domain"
)

// fakeRows plays back canned draft rows
type fakeRows struct {
	rows [][3]any
	i    int
}

func (r *fakeRows) Next() bool { return r.i < len(r.rows) }

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.i]
	r.i++
	*(dest[0].(*uint64)) = row[0].(uint64)
	*(dest[1].(*[]uint8)) = row[1].([]uint8)
	*(dest[2].(*[]uint8)) = row[2].([]uint8)
	return nil
}

func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return []string{"match_id", "radiant", "dire"} }

type fakeCH struct {
	lastSQL string
	rows    *fakeRows
}

func (f *fakeCH) Exec(context.Context, string, ...any) error    { return nil }
func (f *fakeCH) Insert(context.Context, string, [][]any) error { return nil }
func (f *fakeCH) Close() error                                  { return nil }

func (f *fakeCH) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	f.lastSQL = sql
	if f.rows == nil {
		return &fakeRows{}, nil
	}
	return f.rows, nil
}

func query(t *testing.T, ch *fakeCH, in domain.QueryInput) []domain.MatchDraft {
	t.Helper()
	out, err := NewCH(ch, "herodex").Drafts(context.Background(), in)
	if err != nil {
		t.Fatalf("Drafts: %v", err)
	}
	return out
}

func TestDraftsBothSetsEmptyNeverScans(t *testing.T) {
	ch := &fakeCH{}
	out := query(t, ch, domain.QueryInput{Limit: 20})
	if len(out) != 0 {
		t.Fatalf("got %v, want empty", out)
	}
	if ch.lastSQL != "" {
		t.Fatalf("store was queried: %s", ch.lastSQL)
	}
}

func TestDraftsPinsSmallestHeroAcrossBothSets(t *testing.T) {
	ch := &fakeCH{}
	query(t, ch, domain.QueryInput{TeamA: []uint8{42, 7}, TeamB: []uint8{3, 99}, Limit: 20})
	if !strings.Contains(ch.lastSQL, "hero = 3") {
		t.Fatalf("pivot not pinned to 3:\n%s", ch.lastSQL)
	}
}

func TestDraftsOneSetChecksEitherFaction(t *testing.T) {
	ch := &fakeCH{}
	query(t, ch, domain.QueryInput{TeamA: []uint8{1, 6}, Limit: 20})

	sql := ch.lastSQL
	for _, frag := range []string{
		"hero = 1",
		"bitmapHasAll(bitmapBuild(radiant), bitmapBuild([1,6]))",
		"bitmapHasAll(bitmapBuild(dire), bitmapBuild([1,6]))",
		" OR ",
	} {
		if !strings.Contains(sql, frag) {
			t.Fatalf("missing %q:\n%s", frag, sql)
		}
	}

	// the second set is empty, only one containment subject may appear
	if strings.Count(sql, "bitmapHasAll") != 2 {
		t.Fatalf("want exactly two containment checks:\n%s", sql)
	}
}

func TestDraftsTwoSetsCheckBothOrientations(t *testing.T) {
	ch := &fakeCH{}
	query(t, ch, domain.QueryInput{TeamA: []uint8{1}, TeamB: []uint8{6}, Limit: 20})

	sql := ch.lastSQL
	for _, frag := range []string{
		"(bitmapHasAll(bitmapBuild(radiant), bitmapBuild([1])) AND bitmapHasAll(bitmapBuild(dire), bitmapBuild([6])))",
		"(bitmapHasAll(bitmapBuild(radiant), bitmapBuild([6])) AND bitmapHasAll(bitmapBuild(dire), bitmapBuild([1])))",
	} {
		if !strings.Contains(sql, frag) {
			t.Fatalf("missing orientation %q:\n%s", frag, sql)
		}
	}
}

func TestDraftsPaginatesNewestFirst(t *testing.T) {
	ch := &fakeCH{}
	query(t, ch, domain.QueryInput{TeamA: []uint8{1}, Limit: 10, Offset: 30})

	sql := ch.lastSQL
	if !strings.Contains(sql, "ORDER BY match_id DESC") {
		t.Fatalf("missing ordering:\n%s", sql)
	}
	if !strings.Contains(sql, "LIMIT 10 OFFSET 30") {
		t.Fatalf("missing pagination:\n%s", sql)
	}
}

func TestDraftsScansRows(t *testing.T) {
	ch := &fakeCH{rows: &fakeRows{rows: [][3]any{
		{uint64(12), []uint8{1, 2, 3, 4, 6}, []uint8{7, 8, 9, 10, 11}},
		{uint64(10), []uint8{6}, []uint8{1}},
	}}}
	out := query(t, ch, domain.QueryInput{TeamA: []uint8{1}, TeamB: []uint8{6}, Limit: 20})

	if len(out) != 2 {
		t.Fatalf("got %d drafts, want 2", len(out))
	}
	if out[0].MatchID != 12 || out[1].MatchID != 10 {
		t.Fatalf("match ids = %d, %d", out[0].MatchID, out[1].MatchID)
	}
	if len(out[0].Radiant) != 5 || out[0].Dire[0] != 7 {
		t.Fatalf("draft sides not carried through: %+v", out[0])
	}
}
