package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "herodex/internal/platform/net/http"
	"herodex/internal/services/drafts/domain"
)

type fakeQuery struct {
	in  domain.QueryInput
	out []domain.MatchDraft
	err error
}

func (f *fakeQuery) Drafts(_ context.Context, in domain.QueryInput) ([]domain.MatchDraft, error) {
	f.in = in
	return f.out, f.err
}

func serve(t *testing.T, q domain.QueryPort, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, q)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestDraftsParsesQuery(t *testing.T) {
	q := &fakeQuery{out: []domain.MatchDraft{{MatchID: 12, Radiant: []uint8{1, 6}, Dire: []uint8{42}}}}
	rec := serve(t, q, "/drafts?team_a=1,6&team_b=42&limit=10&offset=30")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	want := domain.QueryInput{TeamA: []uint8{1, 6}, TeamB: []uint8{42}, Limit: 10, Offset: 30}
	if len(q.in.TeamA) != 2 || q.in.TeamA[0] != 1 || q.in.TeamA[1] != 6 ||
		len(q.in.TeamB) != 1 || q.in.TeamB[0] != 42 ||
		q.in.Limit != want.Limit || q.in.Offset != want.Offset {
		t.Fatalf("port got %+v, want %+v", q.in, want)
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if env.Page == nil || env.Page.Count != 1 || env.Page.Limit != 10 || env.Page.Offset != 30 {
		t.Fatalf("page = %+v", env.Page)
	}
}

func TestDraftsOmittedParamsAreZero(t *testing.T) {
	q := &fakeQuery{}
	rec := serve(t, q, "/drafts")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if q.in.TeamA != nil || q.in.TeamB != nil || q.in.Limit != 0 || q.in.Offset != 0 {
		t.Fatalf("port got %+v, want zero input", q.in)
	}
}

func TestDraftsRejectsGarbageHeroList(t *testing.T) {
	q := &fakeQuery{}
	rec := serve(t, q, "/drafts?team_a=1,potato")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if env.Error == "" {
		t.Fatal("error envelope must carry a message")
	}
}

func TestDraftsRejectsOversizedHeroID(t *testing.T) {
	q := &fakeQuery{}
	rec := serve(t, q, "/drafts?team_a=300")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
