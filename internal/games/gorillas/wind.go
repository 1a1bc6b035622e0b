package gorillas

import (
	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// Wind is the horizontal acceleration applied to every moving body.
type Wind struct {
	Raw   int     // integer draw shown to players
	Accel float64 // world units per second squared
}

// Regenerate draws a new wind in [Min, Max) and scales it.
func (w *Wind) Regenerate(rng Rand, cfg config.WindConfig) float64 {
	span := cfg.Max - cfg.Min
	w.Raw = cfg.Min
	if span > 0 {
		w.Raw += rng.Intn(span)
	}
	w.Accel = float64(w.Raw) * cfg.Scale
	return w.Accel
}

// Vec returns the wind as an acceleration vector.
func (w Wind) Vec() core.Vec2 {
	return core.V(w.Accel, 0)
}
