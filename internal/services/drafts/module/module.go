// Package module implements the drafts query module
package module

import (
	"herodex/internal/modkit"
	phttp "herodex/internal/platform/net/http"
	"herodex/internal/services/drafts/domain"
	draftshttp "herodex/internal/services/drafts/http"
	"herodex/internal/services/drafts/repo"
	"herodex/internal/services/drafts/service"
)

// Ports exposed by the drafts module
type Ports struct {
	Query domain.QueryPort
}

// Module implements the drafts query module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new drafts module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	reader := repo.NewCH(deps.CH, opts.Database)
	svc := service.New(reader, deps.Cache, service.Config{
		CacheTTL: opts.CacheTTL,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Query: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "drafts" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r phttp.Router) {
	draftshttp.Register(r, m.ports.Query)
}
