package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "herodex/internal/platform/errors"
	pnet "herodex/internal/platform/net"
)

func TestRespondOKEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	req = req.WithContext(pnet.WithRequestID(req.Context(), "req-1"))

	RespondOK(rec, req, map[string]int{"n": 1})

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.RequestID != "req-1" || env.Status != "OK" || env.Error != "" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRespondListCarriesPage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)

	RespondList(rec, req, []int{1, 2, 3}, 20, 40, 3)

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Page == nil || env.Page.Limit != 20 || env.Page.Offset != 40 || env.Page.Count != 3 {
		t.Fatalf("page = %+v", env.Page)
	}
}

func TestRespondErrorMapsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)

	RespondError(rec, req, perr.NotFoundf("nothing here"))

	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Error != "nothing here" || env.Code != perr.ErrorCodeNotFound {
		t.Fatalf("envelope = %+v", env)
	}
}
