package module

import (
	"time"

	"herodex/internal/platform/config"
)

// Options holds configuration settings for the drafts module
type Options struct {
	Database string
	CacheTTL time.Duration
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	return Options{
		Database: cfg.Prefix("SERVICE_CLICKHOUSE_").MayString("DATABASE", "herodex"),
		CacheTTL: cfg.Prefix("CORE_API_").MayDuration("CACHE_TTL", 30*time.Second),
	}
}
