package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/settings"
	"github.com/vovakirdan/tui-gorillas/internal/storage"
)

func TestApplySettingsNames(t *testing.T) {
	cfg := config.DefaultGorillasConfig()
	cfg.Players.One = "FromFile"

	s := settings.Defaults()
	s.PlayerTwo = "Bonzo"
	if err := applySettings(&cfg, s); err != nil {
		t.Fatal(err)
	}
	if cfg.Players.One != "FromFile" {
		t.Errorf("default setting overrode config name: %q", cfg.Players.One)
	}
	if cfg.Players.Two != "Bonzo" {
		t.Errorf("custom setting ignored: %q", cfg.Players.Two)
	}
}

func TestApplySettingsWind(t *testing.T) {
	cfg := config.DefaultGorillasConfig()
	base := cfg.Wind.Scale

	s := settings.Defaults()
	s.Wind = "gusty"
	if err := applySettings(&cfg, s); err != nil {
		t.Fatal(err)
	}
	if cfg.Wind.Scale != base*2 {
		t.Errorf("wind scale = %v, expected %v", cfg.Wind.Scale, base*2)
	}

	s.Wind = "hurricane"
	if err := applySettings(&cfg, s); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestPrintResults(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "r.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printResults(&buf, store, 10); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No rounds recorded yet") {
		t.Errorf("empty output:\n%s", buf.String())
	}

	store.SaveRound(storage.Round{Winner: "Kong", Loser: "Bonzo", WinnerSlot: 1, Throws: 2, Wind: -3})
	buf.Reset()
	if err := printResults(&buf, store, 10); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"1 rounds played", "Kong", "Bonzo", "-3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
