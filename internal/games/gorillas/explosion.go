package gorillas

import (
	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// Explosion is a growing shockwave left behind by a banana impact.
type Explosion struct {
	Center    core.Vec2
	Scale     float64
	PrevScale float64
}

func newExplosion(at core.Vec2) *Explosion {
	return &Explosion{Center: at, Scale: 1, PrevScale: 1}
}

// Radius returns the current shockwave radius.
func (e *Explosion) Radius(cfg config.ExplosionConfig) float64 {
	return cfg.StartRadius * e.Scale
}

// Box is the square that circumscribes the current radius.
func (e *Explosion) Box(cfg config.ExplosionConfig) core.AABB {
	d := 2 * e.Radius(cfg)
	return core.BoxAt(e.Center, d, d)
}

// Grow reports done once the shockwave has outgrown the configured maximum.
// Otherwise it scales the shockwave for one tick, so the largest radius is
// still tested for one tick before removal.
func (e *Explosion) Grow(cfg config.ExplosionConfig, dt float64) (done bool) {
	if e.Scale > cfg.MaxScale {
		return true
	}
	e.PrevScale = e.Scale
	e.Scale *= 1 + cfg.Speed*dt
	return false
}
