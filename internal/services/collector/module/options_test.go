package module

import (
	"testing"
	"time"

	"herodex/internal/platform/config"
	kit "herodex/internal/platform/testkit"
)

func TestFromConfigReadsCollectorScope(t *testing.T) {
	t.Setenv("CORE_COLLECT_START", "5627000000")
	t.Setenv("CORE_COLLECT_KEYS", "k1,k2,k3")
	t.Setenv("CORE_COLLECT_PROXY", "http://proxy.local:3128")
	t.Setenv("CORE_COLLECT_MIN_INTERVAL", "2s")
	t.Setenv("CORE_COLLECT_MAX_INTERVAL", "30s")
	t.Setenv("CORE_COLLECT_BATCH", "50")
	t.Setenv("CORE_COLLECT_COOLDOWN", "10s")
	t.Setenv("CORE_COLLECT_ARTIFACT_DIR", "/var/lib/herodex")
	t.Setenv("SERVICE_CLICKHOUSE_DATABASE", "dota")

	o := FromConfig(config.New())
	if o.Start != 5627000000 {
		t.Fatalf("Start = %d", o.Start)
	}
	if len(o.Keys) != 3 || o.Keys[2] != "k3" {
		t.Fatalf("Keys = %v", o.Keys)
	}
	if o.Proxy != "http://proxy.local:3128" {
		t.Fatalf("Proxy = %q", o.Proxy)
	}
	if o.MinInterval != 2*time.Second || o.MaxInterval != 30*time.Second {
		t.Fatalf("intervals = %v / %v", o.MinInterval, o.MaxInterval)
	}
	if o.BatchSize != 50 || o.Cooldown != 10*time.Second {
		t.Fatalf("batch/cooldown = %d / %v", o.BatchSize, o.Cooldown)
	}
	if o.ArtifactDir != "/var/lib/herodex" || o.Database != "dota" {
		t.Fatalf("artifact/db = %q / %q", o.ArtifactDir, o.Database)
	}
}

func TestFromConfigDefaults(t *testing.T) {
	t.Setenv("CORE_COLLECT_START", "1")
	t.Setenv("CORE_COLLECT_KEYS", "k1")

	o := FromConfig(config.New())
	if o.MinInterval != 5*time.Second || o.MaxInterval != time.Minute {
		t.Fatalf("interval defaults = %v / %v", o.MinInterval, o.MaxInterval)
	}
	if o.BatchSize != 100 || o.Cooldown != 5*time.Second {
		t.Fatalf("batch/cooldown defaults = %d / %v", o.BatchSize, o.Cooldown)
	}
	if o.ArtifactDir != "." || o.Database != "herodex" {
		t.Fatalf("artifact/db defaults = %q / %q", o.ArtifactDir, o.Database)
	}
}

func TestFromConfigRequiresStartAndKeys(t *testing.T) {
	kit.MustPanic(t, func() { _ = FromConfig(config.New()) })
}
