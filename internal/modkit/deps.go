package modkit

import (
	"herodex/internal/platform/config"
	"herodex/internal/platform/logger"
	"herodex/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	CH    store.Clickhouse
	Cache store.Cache
}
