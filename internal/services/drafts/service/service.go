// Package service implements the draft query use case
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	perr "herodex/internal/platform/errors"
	"herodex/internal/platform/logger"
	"herodex/internal/platform/net/http/bind"
	"herodex/internal/platform/store"
	"herodex/internal/services/drafts/domain"
)

// Config controls the query service
type Config struct {
	// CacheTTL bounds how stale a cached result may get; zero disables caching
	CacheTTL time.Duration
}

// Svc answers draft subset queries, optionally through a response cache
type Svc struct {
	repo  domain.ReaderRepo
	cache store.Cache
	cfg   Config
	log   logger.Logger
}

// New constructs the drafts service; cache may be nil
func New(repo domain.ReaderRepo, cache store.Cache, cfg Config) *Svc {
	return &Svc{repo: repo, cache: cache, cfg: cfg, log: *logger.Named("drafts")}
}

var _ domain.QueryPort = (*Svc)(nil)

// Drafts validates the input and returns qualifying matches, newest first
func (s *Svc) Drafts(ctx context.Context, in domain.QueryInput) ([]domain.MatchDraft, error) {
	if in.Limit == 0 {
		in.Limit = 20
	}
	if err := bind.Struct(in); err != nil {
		return nil, err
	}
	if h, ok := overlap(in.TeamA, in.TeamB); ok {
		// no draft can put one hero on both factions
		return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "hero %d appears in both teams", h), "team_b")
	}

	key := cacheKey(in)
	if s.cache != nil && s.cfg.CacheTTL > 0 {
		if raw, ok, err := s.cache.Get(ctx, key); err != nil {
			s.log.Warn().Err(err).Msg("cache get failed")
		} else if ok {
			var out []domain.MatchDraft
			if err := json.Unmarshal([]byte(raw), &out); err == nil {
				return out, nil
			}
			// a malformed entry falls through to the store and gets rewritten
		}
	}

	out, err := s.repo.Drafts(ctx, in)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cfg.CacheTTL > 0 {
		if raw, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), s.cfg.CacheTTL); err != nil {
				s.log.Warn().Err(err).Msg("cache set failed")
			}
		}
	}
	return out, nil
}

// cacheKey canonicalizes the input so permutations of a set share an entry
// the two sets stay distinct: (A,B) and (B,A) select the same matches but
// that equivalence is the store's concern, not worth the key gymnastics
func cacheKey(in domain.QueryInput) string {
	return fmt.Sprintf("drafts:a=%s:b=%s:l=%d:o=%d",
		canon(in.TeamA), canon(in.TeamB), in.Limit, in.Offset)
}

func overlap(a, b []uint8) (uint8, bool) {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return x, true
			}
		}
	}
	return 0, false
}

func canon(set []uint8) string {
	cp := make([]uint8, len(set))
	copy(cp, set)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	parts := make([]string, len(cp))
	for i, h := range cp {
		parts[i] = fmt.Sprintf("%d", h)
	}
	return strings.Join(parts, ",")
}
