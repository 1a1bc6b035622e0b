package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultGorillasConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if n := cfg.Arena.NumBuildings(); n != 8 {
		t.Errorf("NumBuildings() = %d, expected 8", n)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := DefaultGorillasConfig()
	if cfg.Arena != def.Arena {
		t.Errorf("arena = %+v, expected %+v", cfg.Arena, def.Arena)
	}
	if cfg.Rules.RepeatDelay != 150*time.Millisecond {
		t.Errorf("repeat delay = %v", cfg.Rules.RepeatDelay)
	}
	if cfg.Physics.TickHz != 60 {
		t.Errorf("tick_hz = %d", cfg.Physics.TickHz)
	}
}

func TestValidateTiling(t *testing.T) {
	cfg := DefaultGorillasConfig()
	cfg.Arena.BuildingWidth = 150

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected tiling error for 1280/150")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig: %v", err)
	}
}

func TestValidateTickRate(t *testing.T) {
	cfg := DefaultGorillasConfig()
	cfg.Physics.TickHz = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for tick_hz 0")
	}
}

func TestValidateRejectsStalledRules(t *testing.T) {
	cases := map[string]func(*GorillasConfig){
		"explosion speed zero":     func(c *GorillasConfig) { c.Explosion.Speed = 0 },
		"explosion speed negative": func(c *GorillasConfig) { c.Explosion.Speed = -1 },
		"negative release":         func(c *GorillasConfig) { c.Rules.ReleaseDistance = -5 },
		"negative repeat delay":    func(c *GorillasConfig) { c.Rules.RepeatDelay = -time.Millisecond },
	}
	for name, mutate := range cases {
		cfg := DefaultGorillasConfig()
		mutate(&cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("wind:\n  scale: 0.25\nplayers:\n  one: Kong\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Wind.Scale != 0.25 || cfg.Players.One != "Kong" {
		t.Errorf("overrides not applied: %+v %+v", cfg.Wind, cfg.Players)
	}
	if cfg.Players.Two != "Player 2" || cfg.Arena.Width != 1280 {
		t.Error("unnamed fields should keep defaults")
	}
}

func TestLoadMissingCustom(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}
}

func TestWindPresets(t *testing.T) {
	p, err := ParseWindPreset("gusty")
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultGorillasConfig()
	ApplyWindPreset(&cfg, p)
	if cfg.Wind.Scale != 2.0 {
		t.Errorf("gusty scale = %v, expected 2", cfg.Wind.Scale)
	}

	if _, err := ParseWindPreset("hurricane"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if p, _ := ParseWindPreset(""); p != WindNormal {
		t.Errorf("empty preset = %q, expected normal", p)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultGorillasConfig())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load marshalled config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("marshalled config invalid: %v", err)
	}
}
