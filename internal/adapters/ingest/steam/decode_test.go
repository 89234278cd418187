package steam

import (
	"bytes"
	"testing"

	perr "herodex/internal/platform/errors"
)

func TestDecodeHistoryOK(t *testing.T) {
	body := []byte(`{"result":{"status":1,"matches":[
		{"match_id":100,"match_seq_num":10,"players":[
			{"account_id":1,"player_slot":0,"hero_id":5},
			{"account_id":2,"player_slot":132,"hero_id":7}
		]}
	]}}`)
	page, err := decodeHistory(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("got %d matches, want 1", len(page))
	}
	m := page[0]
	if m.MatchID != 100 || m.MatchSeqNum != 10 || len(m.Players) != 2 {
		t.Fatalf("unexpected match %+v", m)
	}
	if m.Players[1].PlayerSlot != 132 || m.Players[1].HeroID != 7 {
		t.Fatalf("unexpected player %+v", m.Players[1])
	}
}

func TestDecodeHistoryShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>sorry</html>`},
		{name: "missing result", body: `{"response":{}}`},
		{name: "wrong types", body: `{"result":{"status":"ok"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeHistory([]byte(tt.body))
			de, ok := AsDecode(err)
			if !ok {
				t.Fatalf("want *DecodeError, got %v", err)
			}
			if !bytes.Equal(de.Raw, []byte(tt.body)) {
				t.Fatalf("decode error lost the raw payload")
			}
		})
	}
}

func TestDecodeHistoryRefusalIsTransient(t *testing.T) {
	_, err := decodeHistory([]byte(`{"result":{"status":15,"matches":[]}}`))
	if err == nil {
		t.Fatal("want error")
	}
	if _, ok := AsDecode(err); ok {
		t.Fatal("well formed refusal must not be a shape mismatch")
	}
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got code %d", perr.CodeOf(err))
	}
}
