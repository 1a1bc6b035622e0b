package config

import "fmt"

// WindPreset is a named wind strength.
type WindPreset string

const (
	WindStill  WindPreset = "still"
	WindCalm   WindPreset = "calm"
	WindNormal WindPreset = "normal"
	WindGusty  WindPreset = "gusty"
)

// WindPresets lists the presets in display order.
var WindPresets = []WindPreset{WindStill, WindCalm, WindNormal, WindGusty}

// ScaleForPreset returns the wind multiplier of a preset.
func ScaleForPreset(p WindPreset) float64 {
	switch p {
	case WindStill:
		return 0
	case WindCalm:
		return 0.5
	case WindGusty:
		return 2.0
	default:
		return 1.0
	}
}

// ParseWindPreset validates a preset name. Empty means normal.
func ParseWindPreset(s string) (WindPreset, error) {
	if s == "" {
		return WindNormal, nil
	}
	for _, p := range WindPresets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown wind preset %q (want still, calm, normal or gusty)", s)
}

// ApplyWindPreset scales the configured wind by the preset multiplier.
func ApplyWindPreset(cfg *GorillasConfig, p WindPreset) {
	cfg.Wind.Scale *= ScaleForPreset(p)
}
