package module

import (
	"time"

	"herodex/internal/platform/config"
)

// Options holds configuration settings for the collector module
type Options struct {
	Start       uint64
	Keys        []string
	Proxy       string
	MinInterval time.Duration
	MaxInterval time.Duration
	BatchSize   int
	Cooldown    time.Duration
	ArtifactDir string
	Database    string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("CORE_COLLECT_")
	return Options{
		Start:       cf.MustUint64("START"),
		Keys:        cf.MustCSV("KEYS"),
		Proxy:       cf.MayString("PROXY", ""),
		MinInterval: cf.MayDuration("MIN_INTERVAL", 5*time.Second),
		MaxInterval: cf.MayDuration("MAX_INTERVAL", time.Minute),
		BatchSize:   cf.MayInt("BATCH", 100),
		Cooldown:    cf.MayDuration("COOLDOWN", 5*time.Second),
		ArtifactDir: cf.MayString("ARTIFACT_DIR", "."),
		Database:    cfg.Prefix("SERVICE_CLICKHOUSE_").MayString("DATABASE", "herodex"),
	}
}
