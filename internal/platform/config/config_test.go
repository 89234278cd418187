package config

import (
	"testing"
	"time"

	kit "herodex/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("CORE_API_")
	if got := api.key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "CORE_API_PORT")
	}
	// nested prefix
	nested := api.Prefix("CACHE_")
	if got := nested.key("TTL"); got != "CORE_API_CACHE_TTL" {
		t.Fatalf("nested key() = %q, want %q", got, "CORE_API_CACHE_TTL")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  herodex ")
	if got := c.MustString("NAME"); got != "herodex" {
		t.Fatalf("MustString = %q, want %q", got, "herodex")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustUint64(t *testing.T) {
	c := New().Prefix("SEQ_")
	t.Setenv("SEQ_START", "5627000000")
	if got := c.MustUint64("START"); got != 5627000000 {
		t.Fatalf("MustUint64 = %d", got)
	}
	kit.MustPanic(t, func() { _ = c.MustUint64("MISSING") })
	t.Setenv("SEQ_BAD", "-1")
	kit.MustPanic(t, func() { _ = c.MustUint64("BAD") })
}

func TestMustCSV(t *testing.T) {
	c := New().Prefix("K_")
	t.Setenv("K_KEYS", " a , b ,, c ")
	got := c.MustCSV("KEYS")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("MustCSV = %v", got)
	}
	kit.MustPanic(t, func() { _ = c.MustCSV("MISSING") })
	t.Setenv("K_BLANK", " , , ")
	kit.MustPanic(t, func() { _ = c.MustCSV("BLANK") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("R_")
	t.Setenv("R_A", "x")
	t.Setenv("R_B", "y")
	kit.MustNotPanic(t, func() { c.Require("A", "B") })
	kit.MustPanic(t, func() { c.Require("A", "MISSING") })
}

// May* defaults

func TestMayString(t *testing.T) {
	c := New().Prefix("M_")
	if got := c.MayString("NOPE", "fallback"); got != "fallback" {
		t.Fatalf("MayString = %q", got)
	}
	t.Setenv("M_VAL", " v ")
	if got := c.MayString("VAL", "fallback"); got != "v" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayIntInvalidFallsBack(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_N", "notanint")
	if got := c.MayInt("N", 7); got != 7 {
		t.Fatalf("MayInt = %d, want default 7", got)
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("M_")
	if got := c.MayDuration("NOPE", 5*time.Second); got != 5*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("M_D", "90s")
	if got := c.MayDuration("D", time.Second); got != 90*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("M_")
	def := []string{"*"}
	if got := c.MayCSV("NOPE", def); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV = %v", got)
	}
	t.Setenv("M_ORIGINS", "a.example,b.example")
	if got := c.MayCSV("ORIGINS", def); len(got) != 2 || got[1] != "b.example" {
		t.Fatalf("MayCSV = %v", got)
	}
}
