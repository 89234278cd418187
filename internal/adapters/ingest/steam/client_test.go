package steam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "herodex/internal/platform/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cs, err := NewClients([]string{"k1"}, Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClients: %v", err)
	}
	return cs[0]
}

func TestNewClientsRequiresKeys(t *testing.T) {
	if _, err := NewClients(nil, Options{}); err == nil {
		t.Fatal("want error for empty key set")
	}
}

func TestNewClientsOneHandlePerKey(t *testing.T) {
	cs, err := NewClients([]string{"a", "b", "c"}, Options{})
	if err != nil {
		t.Fatalf("NewClients: %v", err)
	}
	if len(cs) != 3 {
		t.Fatalf("got %d handles, want 3", len(cs))
	}
	if cs[0].http != cs[1].http || cs[1].http != cs[2].http {
		t.Fatal("handles must share one transport")
	}
}

func TestMatchesSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("key"); got != "k1" {
			t.Errorf("key = %q, want k1", got)
		}
		if got := r.URL.Query().Get("start_at_match_seq_num"); got != "500" {
			t.Errorf("start_at_match_seq_num = %q, want 500", got)
		}
		if got := r.URL.Query().Get("matches_requested"); got != "100" {
			t.Errorf("matches_requested = %q, want 100", got)
		}
		_, _ = w.Write([]byte(`{"result":{"status":1,"matches":[{"match_id":1,"match_seq_num":500,"players":[]}]}}`))
	})

	page, err := c.Matches(context.Background(), 500, 100)
	if err != nil {
		t.Fatalf("Matches: %v", err)
	}
	if len(page) != 1 || page[0].MatchSeqNum != 500 {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestMatchesServerErrorIsTransient(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := c.Matches(context.Background(), 0, 100)
	if err == nil {
		t.Fatal("want error")
	}
	if _, ok := AsDecode(err); ok {
		t.Fatal("http status failures must not classify as shape mismatch")
	}
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got code %d", perr.CodeOf(err))
	}
}

func TestMatchesRateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := c.Matches(context.Background(), 0, 100)
	if !perr.IsCode(err, perr.ErrorCodeTooManyRequests) {
		t.Fatalf("want too many requests, got %v", err)
	}
}

func TestMatchesBadPayloadIsDecode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	})
	_, err := c.Matches(context.Background(), 0, 100)
	de, ok := AsDecode(err)
	if !ok {
		t.Fatalf("want *DecodeError, got %v", err)
	}
	if len(de.Raw) == 0 {
		t.Fatal("decode error should carry the raw payload")
	}
}
