package gorillas

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/core"
)

func TestBrickShatter(t *testing.T) {
	d := config.DefaultGorillasConfig().Debris
	b := newBrick(3, core.V(100, 50), 32, 8, core.ColorBrown)

	if !b.Shatter(fixedRand{0}, d) {
		t.Fatal("solid brick should shatter")
	}
	if b.State != BrickDebris || b.Active {
		t.Error("debris must not be an active collider")
	}
	if b.Body.Vel != core.V(d.VelXMin, d.VelYMin) {
		t.Errorf("vel = %v, expected range minimum", b.Body.Vel)
	}
	if b.Body.Cur != core.V(100, 50) {
		t.Errorf("debris should start where the brick was, got %v", b.Body.Cur)
	}
	if b.Fade != d.FadeStepMin {
		t.Errorf("fade = %v, expected %v", b.Fade, d.FadeStepMin)
	}

	if b.Shatter(fixedRand{0.5}, d) {
		t.Error("debris must not shatter twice")
	}
}

func TestBrickShatterRanges(t *testing.T) {
	d := config.DefaultGorillasConfig().Debris
	rng := rand.New(rand.NewSource(3))

	for i := range 200 {
		b := newBrick(i, core.V(0, 0), 32, 8, core.ColorGray)
		b.Shatter(rng, d)
		v := b.Body.Vel
		if v.X < d.VelXMin || v.X >= d.VelXMax || v.Y < d.VelYMin || v.Y >= d.VelYMax {
			t.Fatalf("velocity %v outside configured ranges", v)
		}
		if b.Fade < d.FadeStepMin || b.Fade >= d.FadeStepMax {
			t.Fatalf("fade %v outside range", b.Fade)
		}
	}
}

func TestBrickDecay(t *testing.T) {
	b := newBrick(0, core.V(0, 0), 32, 8, core.ColorGray)

	if b.Decay() || b.Opacity != 1 {
		t.Fatal("solid bricks do not decay")
	}

	b.Shatter(fixedRand{0}, config.DefaultGorillasConfig().Debris)
	b.Fade = 0.3

	last := b.Opacity
	ticks := 0
	for !b.Decay() {
		ticks++
		if b.Opacity > last {
			t.Fatalf("opacity rose from %v to %v", last, b.Opacity)
		}
		if b.Opacity < 0 {
			t.Fatalf("opacity went negative: %v", b.Opacity)
		}
		last = b.Opacity
		if ticks > 10 {
			t.Fatal("debris never finished decaying")
		}
	}

	if b.Opacity != 0 {
		t.Errorf("opacity at removal = %v, expected exactly 0", b.Opacity)
	}
	// 1 -> 0.7 -> 0.4 -> 0.1 -> 0, removed on the following tick
	if ticks != 4 {
		t.Errorf("decayed in %d ticks, expected 4", ticks)
	}
}

func TestExplosionGrowth(t *testing.T) {
	cfg := config.DefaultGorillasConfig().Explosion
	e := newExplosion(core.V(0, 0))
	dt := 1.0 / 60

	if r := e.Radius(cfg); r != cfg.StartRadius {
		t.Errorf("start radius = %v", r)
	}
	if half := e.Box(cfg).Half.X; half != cfg.StartRadius {
		t.Errorf("box half extent = %v, expected radius", half)
	}

	ticks := 0
	prev := e.Scale
	for !e.Grow(cfg, dt) {
		ticks++
		if e.Scale <= prev {
			t.Fatal("explosion must keep growing")
		}
		prev = e.Scale
		if ticks > 1000 {
			t.Fatal("explosion never finished")
		}
	}
	if e.Scale <= cfg.MaxScale {
		t.Errorf("finished at scale %v, expected above %v", e.Scale, cfg.MaxScale)
	}
	// (1 + 2/60)^n > 3 first holds at n = 34, and that size lives one more tick
	if ticks+1 != 35 {
		t.Errorf("explosion lived %d ticks, expected 35", ticks+1)
	}
}
