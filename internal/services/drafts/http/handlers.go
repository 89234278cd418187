// Package http provides http transport for draft queries
package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	perr "herodex/internal/platform/errors"
	phttp "herodex/internal/platform/net/http"
	"herodex/internal/services/drafts/domain"
)

// Register mounts draft endpoints on the given router
func Register(r phttp.Router, q domain.QueryPort) {
	h := &handlers{query: q}
	r.Get("/drafts", h.drafts)
}

type handlers struct{ query domain.QueryPort }

// drafts answers GET /drafts?team_a=1,6&team_b=42&limit=20&offset=0
func (h *handlers) drafts(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := parseQuery(r)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	out, err := h.query.Drafts(r.Context(), in)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	phttp.RespondList(w, r, out, in.Limit, in.Offset, len(out))
}

func parseQuery(r *stdhttp.Request) (domain.QueryInput, error) {
	var in domain.QueryInput
	qs := r.URL.Query()

	var err error
	if in.TeamA, err = parseHeroes(qs.Get("team_a")); err != nil {
		return in, perr.WithField(err, "team_a")
	}
	if in.TeamB, err = parseHeroes(qs.Get("team_b")); err != nil {
		return in, perr.WithField(err, "team_b")
	}
	if in.Limit, err = parseIntParam(qs.Get("limit")); err != nil {
		return in, perr.WithField(err, "limit")
	}
	if in.Offset, err = parseIntParam(qs.Get("offset")); err != nil {
		return in, perr.WithField(err, "offset")
	}
	return in, nil
}

// parseHeroes reads a comma separated hero id list; empty means no constraint
func parseHeroes(s string) ([]uint8, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]uint8, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return nil, perr.InvalidArgf("hero id %q", p)
		}
		out = append(out, uint8(v))
	}
	return out, nil
}

func parseIntParam(s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, perr.InvalidArgf("not an integer: %q", s)
	}
	return v, nil
}
