// Package settings persists player preferences (names, sound, wind preset)
// in the platform's per-user data directory.
package settings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// AppName is the gdata application directory.
const AppName = "tui_gorillas"

const (
	settingsObject   = "settings"
	settingsProperty = "players"
)

// Settings are the saved preferences.
type Settings struct {
	PlayerOne    string  `yaml:"player_one"`
	PlayerTwo    string  `yaml:"player_two"`
	SoundEnabled bool    `yaml:"sound_enabled"`
	SoundVolume  float64 `yaml:"sound_volume"` // 0.0 ~ 1.0
	Wind         string  `yaml:"wind"`
}

// Defaults returns the settings used when nothing is saved.
func Defaults() Settings {
	return Settings{
		PlayerOne:    core.Player1.String(),
		PlayerTwo:    core.Player2.String(),
		SoundEnabled: true,
		SoundVolume:  0.8,
		Wind:         "normal",
	}
}

// Manager loads and saves Settings. A nil gdata manager keeps settings in
// memory only.
type Manager struct {
	data     *gdata.Manager
	settings Settings
	log      *log.Logger
}

// OpenDefault opens the user data directory. On failure it returns a
// memory-only manager together with the error.
func OpenDefault(logger *log.Logger) (*Manager, error) {
	data, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return NewManager(nil, logger), fmt.Errorf("settings: open data dir: %w", err)
	}
	return NewManager(data, logger), nil
}

// NewManager creates a manager and loads any saved settings.
func NewManager(data *gdata.Manager, logger *log.Logger) *Manager {
	m := &Manager{data: data, settings: Defaults(), log: logger}
	if err := m.Load(); err != nil && logger != nil {
		logger.Warn("failed to load settings, using defaults", "err", err)
	}
	return m
}

// Load reads saved settings, falling back to defaults.
func (m *Manager) Load() error {
	m.settings = Defaults()
	if m.data == nil || !m.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	raw, err := m.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}
	loaded := Defaults()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("settings: unmarshal: %w", err)
	}
	m.settings = loaded.normalized()
	return nil
}

// Save writes the current settings. Memory-only managers do nothing.
func (m *Manager) Save() error {
	if m.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := m.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	if m.log != nil {
		m.log.Debug("settings saved")
	}
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings { return m.settings }

// Set replaces the current settings in memory. Call Save to persist.
func (m *Manager) Set(s Settings) { m.settings = s.normalized() }

// Persistent reports whether settings survive a restart.
func (m *Manager) Persistent() bool { return m.data != nil }

func (s Settings) normalized() Settings {
	def := Defaults()
	if s.PlayerOne == "" {
		s.PlayerOne = def.PlayerOne
	}
	if s.PlayerTwo == "" {
		s.PlayerTwo = def.PlayerTwo
	}
	s.SoundVolume = core.ClampF(s.SoundVolume, 0, 1)
	if s.Wind == "" {
		s.Wind = def.Wind
	}
	return s
}
