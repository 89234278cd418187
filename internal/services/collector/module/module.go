// Package module implements the collector service module
package module

import (
	"herodex/internal/adapters/ingest/steam"
	"herodex/internal/modkit"
	"herodex/internal/platform/metrics"
	phttp "herodex/internal/platform/net/http"
	"herodex/internal/services/collector/domain"
	"herodex/internal/services/collector/repo"
	"herodex/internal/services/collector/service"
)

// Ports exposed by the collector module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the collector service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new collector module
// met may be nil when the metrics endpoint is disabled
func New(deps modkit.Deps, met *metrics.Metrics) (*Module, error) {
	opts := FromConfig(deps.Cfg)

	clients, err := steam.NewClients(opts.Keys, steam.Options{Proxy: opts.Proxy})
	if err != nil {
		return nil, err
	}
	fetchers := make([]domain.FetcherPort, 0, len(clients))
	for _, c := range clients {
		fetchers = append(fetchers, c)
	}

	gateway := repo.NewCH(deps.CH, opts.Database)
	rate := service.NewRateControl(opts.MinInterval, opts.MaxInterval)
	svc := service.New(gateway, fetchers, rate, met, service.Config{
		Start:       opts.Start,
		BatchSize:   opts.BatchSize,
		Cooldown:    opts.Cooldown,
		ArtifactDir: opts.ArtifactDir,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc}
	return m, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "collector" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module; the collector has no HTTP surface
func (m *Module) MountRoutes(r phttp.Router) {}
