package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "gorillas.yaml"

// Load loads the game rules.
// Search order: customPath -> ~/.gorillas/configs/gorillas.yaml -> ./configs/gorillas.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func Load(customPath string) (GorillasConfig, error) {
	cfg := DefaultGorillasConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultGorillasConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultGorillasYAML, &cfg); err != nil {
		return DefaultGorillasConfig(), nil
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func Marshal(cfg GorillasConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// HomeDir returns ~/.gorillas, or empty if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gorillas")
}

func userConfigPath(filename string) string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
