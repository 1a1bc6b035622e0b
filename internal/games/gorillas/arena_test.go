package gorillas

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// fixedRand returns constant draws.
type fixedRand struct {
	f float64
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return int(r.f * float64(n)) }

func TestGenerateArenaBuildings(t *testing.T) {
	cfg := config.DefaultGorillasConfig()
	w := GenerateArena(cfg, rand.New(rand.NewSource(1)))

	if len(w.Buildings) != 8 {
		t.Fatalf("got %d buildings, expected 8", len(w.Buildings))
	}
	for i, b := range w.Buildings {
		if b.Left != -640+float64(i)*160 {
			t.Errorf("building %d left = %v", i, b.Left)
		}
		if b.Bottom != -360 {
			t.Errorf("building %d bottom = %v, expected -360", i, b.Bottom)
		}
	}
}

func TestGenerateArenaGorillasOnEndBuildings(t *testing.T) {
	cfg := config.DefaultGorillasConfig()

	for seed := int64(0); seed < 20; seed++ {
		w := GenerateArena(cfg, rand.New(rand.NewSource(seed)))
		first, last := w.Buildings[0], w.Buildings[7]

		g1, g2 := w.Gorilla(core.Player1), w.Gorilla(core.Player2)
		if g1 == nil || g2 == nil {
			t.Fatal("both gorillas should be placed")
		}
		if g1.Pos().X != first.Left+first.Width/2 {
			t.Errorf("seed %d: player 1 x = %v, expected centre of building 0", seed, g1.Pos().X)
		}
		if g2.Pos().X != last.Left+last.Width/2 {
			t.Errorf("seed %d: player 2 x = %v, expected centre of building 7", seed, g2.Pos().X)
		}
		if feet := g1.Box.Min().Y; feet != first.Bottom+first.Height {
			t.Errorf("seed %d: player 1 feet at %v, roof at %v", seed, feet, first.Bottom+first.Height)
		}
		if feet := g2.Box.Min().Y; feet != last.Bottom+last.Height {
			t.Errorf("seed %d: player 2 feet at %v, roof at %v", seed, feet, last.Bottom+last.Height)
		}
		if g1.Aim != (AngleSpeed{45, 30}) {
			t.Errorf("default aim = %+v", g1.Aim)
		}
	}
}

func TestBuildingHeightRange(t *testing.T) {
	cfg := config.DefaultGorillasConfig()
	lo, hi := cfg.Arena.Height/8, cfg.Arena.Height/8+cfg.Arena.Height/2

	for _, f := range []float64{0, 0.5, 0.999999} {
		h := buildingHeight(fixedRand{f}, cfg.Arena.Height, cfg.Arena.BrickHeight)
		if h < lo || h >= hi {
			t.Errorf("height %v outside [%v, %v)", h, lo, hi)
		}
		if math.Mod(h, cfg.Arena.BrickHeight) != 0 {
			t.Errorf("height %v not a multiple of brick height", h)
		}
	}

	rng := rand.New(rand.NewSource(99))
	for range 500 {
		h := buildingHeight(rng, cfg.Arena.Height, cfg.Arena.BrickHeight)
		if h < lo || h >= hi || math.Mod(h, cfg.Arena.BrickHeight) != 0 {
			t.Fatalf("bad height %v", h)
		}
	}
}

func TestGenerateArenaBricks(t *testing.T) {
	cfg := config.DefaultGorillasConfig()
	w := GenerateArena(cfg, rand.New(rand.NewSource(5)))

	expected := 0
	for _, b := range w.Buildings {
		expected += int(b.Height/cfg.Arena.BrickHeight) * 5
	}
	if len(w.Bricks) != expected {
		t.Fatalf("got %d bricks, expected %d", len(w.Bricks), expected)
	}

	for i, b := range w.Bricks {
		if b.State != BrickSolid || !b.Active || b.Opacity != 1 {
			t.Fatalf("brick %d should start solid and opaque: %+v", i, b)
		}
		if b.Index != i {
			t.Fatalf("brick %d has index %d", i, b.Index)
		}
	}

	// first brick sits in the bottom-left corner of building 0
	first := w.Bricks[0].Box
	if first.Min() != core.V(-640, -360) {
		t.Errorf("first brick min = %v, expected (-640,-360)", first.Min())
	}
	if w.SolidBricks() != len(w.Bricks) {
		t.Error("all bricks should be solid")
	}
}

func TestGenerateArenaPanicsOnBadTiling(t *testing.T) {
	cfg := config.DefaultGorillasConfig()
	cfg.Arena.BuildingWidth = 150

	defer func() {
		if recover() == nil {
			t.Error("expected panic when buildings do not tile the width")
		}
	}()
	GenerateArena(cfg, rand.New(rand.NewSource(1)))
}
