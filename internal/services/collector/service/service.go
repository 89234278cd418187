// Package service implements the adaptive ingestion loop
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"herodex/internal/adapters/ingest/steam"
	"herodex/internal/core/dota2"
	"herodex/internal/platform/logger"
	"herodex/internal/platform/metrics"
	dom "herodex/internal/services/collector/domain"
)

// Config controls the ingestion loop
type Config struct {
	// Start is the sequence number of the first fetch window
	Start uint64

	// PageSize is how many matches each fetch requests
	PageSize int

	// BatchSize is the number of requests between flushes
	BatchSize int

	// Cooldown is the fixed pause after a transient fetch failure,
	// independent of the governor interval
	Cooldown time.Duration

	// ArtifactDir is where shape-mismatch payloads are captured
	ArtifactDir string
}

// Svc drives fetch, transform, fan-out, and flush over a fixed handle set
// all mutable state (cursor, governor, index) is owned by this one value
type Svc struct {
	cfg      Config
	fetchers []dom.FetcherPort
	repo     dom.StorageRepo
	rate     *RateControl
	index    *heroIndex
	seq      uint64
	met      *metrics.Metrics
	log      logger.Logger

	sleep         func(context.Context, time.Duration) error
	writeArtifact func(name string, raw []byte) error
}

// New constructs the collector service
func New(repo dom.StorageRepo, fetchers []dom.FetcherPort, rate *RateControl, met *metrics.Metrics, cfg Config) *Svc {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 5 * time.Second
	}
	s := &Svc{
		cfg:      cfg,
		fetchers: fetchers,
		repo:     repo,
		rate:     rate,
		index:    newHeroIndex(),
		seq:      cfg.Start,
		met:      met,
		log:      *logger.Named("collector"),
		sleep:    sleepCtx,
	}
	s.writeArtifact = func(name string, raw []byte) error {
		return os.WriteFile(filepath.Join(cfg.ArtifactDir, name), raw, 0o644)
	}
	return s
}

// Run drives the loop until a fatal failure, a flush failure, or ctx cancel
// there is no natural success termination, the feed is live
func (s *Svc) Run(ctx context.Context) error {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return err
	}

	s.log.Info().
		Uint64("start", s.seq).
		Int("handles", len(s.fetchers)).
		Int("batch", s.cfg.BatchSize).
		Msg("collector starting")

	// index-based round robin over a fixed ordered handle set
	next := 0
	for {
		for i := 0; i < s.cfg.BatchSize; i++ {
			f := s.fetchers[next%len(s.fetchers)]
			next++

			if err := s.rate.Wait(ctx); err != nil {
				return err
			}
			if err := s.request(ctx, f); err != nil {
				// a shape mismatch still gets the buffered matches saved
				if ferr := s.flush(ctx); ferr != nil {
					s.log.Error().Err(ferr).Msg("best-effort flush after fatal fetch failed")
				}
				return err
			}
		}
		// one flush per completed batch, no matter which handles served it
		if err := s.flush(ctx); err != nil {
			return err
		}
	}
}

// request performs one paced fetch cycle against a single handle
// transient failures are absorbed here; only fatal ones come back as errors
func (s *Svc) request(ctx context.Context, f dom.FetcherPort) error {
	page, err := f.Matches(ctx, s.seq, s.cfg.PageSize)
	if err == nil {
		// seq range of this page: [left, right)
		left := s.seq
		s.seq = s.index.Collect(page, s.seq)
		s.log.Debug().
			Int("count", len(page)).
			Uint64("from", left).
			Uint64("to", s.seq).
			Msg("page collected")

		s.rate.SpeedUp()
		outcome := "ok"
		if len(page) < s.cfg.PageSize {
			// reaching the live edge of the feed, back off
			s.rate.SlowDown()
			outcome = "short"
		}
		if s.met != nil {
			s.met.IncFetch(outcome)
			s.met.AddMatches(len(page))
			s.met.SetInterval(s.rate.Interval())
		}
		return nil
	}

	if de, ok := steam.AsDecode(err); ok {
		// the feed's shape changed under us, capture and stop
		// retrying would loop forever on the same payload
		name := fmt.Sprintf("%d-error.json", s.seq)
		s.log.Error().Err(err).Str("artifact", name).Msg("response shape mismatch")
		if werr := s.writeArtifact(name, de.Raw); werr != nil {
			s.log.Error().Err(werr).Str("artifact", name).Msg("artifact capture failed")
		}
		if s.met != nil {
			s.met.IncFetch("decode")
		}
		return err
	}

	// transient: back off, cool down, keep going
	s.log.Warn().Err(err).Uint64("seq", s.seq).Msg("fetch failed, retrying")
	s.rate.SlowDown()
	if s.met != nil {
		s.met.IncFetch("transient")
		s.met.SetInterval(s.rate.Interval())
	}
	return s.sleep(ctx, s.cfg.Cooldown)
}

// flush persists every buffered bucket and clears the persisted ones
func (s *Svc) flush(ctx context.Context) error {
	buffered := s.index.Len()
	if buffered == 0 {
		return nil
	}
	err := s.index.Flush(ctx, func(ctx context.Context, hero uint8, masks []dota2.MatchMask) error {
		if err := s.repo.SaveIndexedMasks(ctx, hero, masks); err != nil {
			return err
		}
		if s.met != nil {
			s.met.AddRowsFlushed(len(masks))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if s.met != nil {
		s.met.IncFlushes()
	}
	s.log.Debug().Int("rows", buffered).Msg("index flushed")
	return nil
}
