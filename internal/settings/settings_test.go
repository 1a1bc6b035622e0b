package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openData(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	data, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return data
}

func TestMemoryOnlyManager(t *testing.T) {
	m := NewManager(nil, nil)

	if m.Persistent() {
		t.Error("nil data manager should not be persistent")
	}
	if m.Get() != Defaults() {
		t.Errorf("settings = %+v, expected defaults", m.Get())
	}
	if err := m.Save(); err != nil {
		t.Errorf("Save() in memory mode should be a no-op, got %v", err)
	}
}

func TestSaveAndReload(t *testing.T) {
	data := openData(t, "gorillas_settings_test")

	m1 := NewManager(data, nil)
	s := m1.Get()
	s.PlayerOne = "Kong"
	s.SoundEnabled = false
	s.Wind = "gusty"
	m1.Set(s)
	if err := m1.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	m2 := NewManager(data, nil)
	got := m2.Get()
	if got.PlayerOne != "Kong" || got.SoundEnabled || got.Wind != "gusty" {
		t.Errorf("reloaded settings = %+v", got)
	}
	if got.PlayerTwo != "Player 2" {
		t.Errorf("unchanged name = %q", got.PlayerTwo)
	}
}

func TestSetNormalizes(t *testing.T) {
	m := NewManager(nil, nil)
	m.Set(Settings{SoundVolume: 3})

	got := m.Get()
	if got.PlayerOne != "Player 1" || got.PlayerTwo != "Player 2" {
		t.Errorf("empty names should fall back to defaults: %+v", got)
	}
	if got.SoundVolume != 1 {
		t.Errorf("volume = %v, expected clamp to 1", got.SoundVolume)
	}
	if got.Wind != "normal" {
		t.Errorf("wind = %q", got.Wind)
	}
}
