package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/snakeloop/internal/core"
	"github.com/vovakirdan/snakeloop/internal/world"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.World.Width != 16 || cfg.World.SpawnIndex != 10 {
		t.Errorf("world = %+v, expected width 16 spawn 10", cfg.World)
	}
	if cfg.Render.CellSize != 20 {
		t.Errorf("cell_size = %d, expected 20", cfg.Render.CellSize)
	}
	if cfg.Render.Background != core.ColorBlack || cfg.Render.Foreground != core.ColorGreen {
		t.Errorf("colors = %v/%v, expected black/green", cfg.Render.Background, cfg.Render.Foreground)
	}
	if cfg.Loop.FrameLimit != 3000 {
		t.Errorf("frame_limit = %d, expected 3000", cfg.Loop.FrameLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should be valid, got %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("world:\n  boundary: wrap\nloop:\n  frame_limit: 100\nrender:\n  foreground: orange\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Loop.FrameLimit != 100 {
		t.Errorf("frame_limit = %d, expected 100", cfg.Loop.FrameLimit)
	}
	if cfg.Render.Foreground != core.ColorOrange {
		t.Errorf("foreground = %v, expected orange", cfg.Render.Foreground)
	}
	boundary, err := cfg.World.BoundaryPolicy()
	if err != nil || boundary != world.BoundaryWrap {
		t.Errorf("boundary = %q (%v), expected wrap", boundary, err)
	}

	// Unset keys keep their defaults
	if cfg.World.Width != 16 || cfg.Loop.TickRate != 60 {
		t.Errorf("unset keys should keep defaults, got width %d tick_rate %d", cfg.World.Width, cfg.Loop.TickRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  width: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of invalid values should wrap ErrInvalid, got %v", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".snakeloop")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("world:\n  width: 8\n  spawn_index: 3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.World.Width != 8 || cfg.World.SpawnIndex != 3 {
		t.Errorf("world = %+v, expected width 8 spawn 3", cfg.World)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.World.Width = 0 }},
		{"unknown boundary", func(c *Config) { c.World.Boundary = "bounce" }},
		{"spawn off grid with clamp", func(c *Config) {
			c.World.Boundary = "clamp"
			c.World.SpawnIndex = 256
		}},
		{"zero cell size", func(c *Config) { c.Render.CellSize = 0 }},
		{"negative frame limit", func(c *Config) { c.Loop.FrameLimit = -1 }},
		{"zero tick rate", func(c *Config) { c.Loop.TickRate = 0 }},
		{"zero hold timeout", func(c *Config) { c.Input.HoldTimeoutMS = 0 }},
		{"zero repeat delay", func(c *Config) { c.Input.RepeatDelayMS = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	// Unbounded worlds accept any spawn index
	cfg := Default()
	cfg.World.SpawnIndex = 1000
	if err := cfg.Validate(); err != nil {
		t.Errorf("spawn off grid with boundary none should be valid, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Render.Foreground = core.ColorCyan
	cfg.World.Boundary = "clamp"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}

func TestHoldTimeout(t *testing.T) {
	c := InputConfig{RepeatDelayMS: 700, HoldTimeoutMS: 150}
	if c.RepeatDelay().Milliseconds() != 700 {
		t.Errorf("RepeatDelay() = %v, expected 700ms", c.RepeatDelay())
	}
	if c.HoldTimeout().Milliseconds() != 150 {
		t.Errorf("HoldTimeout() = %v, expected 150ms", c.HoldTimeout())
	}
}
