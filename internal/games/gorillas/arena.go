package gorillas

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// BuildingPalette is the set of facade colors a building is drawn from.
var BuildingPalette = [3]core.Color{core.ColorGray, core.ColorBrown, core.ColorSand}

// Building records one generated slot of the skyline.
type Building struct {
	Index  int
	Left   float64
	Bottom float64
	Width  float64
	Height float64
	Color  core.Color
}

// Gorilla is a player's avatar and kill target.
type Gorilla struct {
	Collider
	Name string
	Aim  AngleSpeed
}

// Pos returns the gorilla's centre.
func (g *Gorilla) Pos() core.Vec2 { return g.Box.Center }

// World holds every entity of a round.
type World struct {
	Width      float64
	Height     float64
	Buildings  []Building
	Bricks     []*Brick
	Gorillas   [2]*Gorilla
	Banana     *Banana
	Explosions []*Explosion
	Wind       Wind
}

// Gorilla returns the gorilla of p, or nil if it is missing.
func (w *World) Gorilla(p core.PlayerID) *Gorilla {
	return w.Gorillas[p.Index()]
}

// Colliders lists every active collider. Debris is skipped.
func (w *World) Colliders() []*Collider {
	out := make([]*Collider, 0, len(w.Bricks)+2)
	for _, b := range w.Bricks {
		if b.Active {
			out = append(out, &b.Collider)
		}
	}
	for _, g := range w.Gorillas {
		if g != nil {
			out = append(out, &g.Collider)
		}
	}
	return out
}

// SolidBricks counts bricks that still collide.
func (w *World) SolidBricks() int {
	n := 0
	for _, b := range w.Bricks {
		if b.State == BrickSolid {
			n++
		}
	}
	return n
}

// buildingHeight picks a height that is a multiple of brick height inside
// [h/8, h/8 + h/2).
func buildingHeight(rng Rand, h, brickH float64) float64 {
	lo := math.Ceil(h/8/brickH) * brickH
	hi := h/8 + h/2
	steps := int(math.Floor((hi-lo)/brickH-1e-9)) + 1
	if steps < 1 {
		return lo
	}
	return lo + float64(rng.Intn(steps))*brickH
}

// GenerateArena builds the skyline, its bricks and both gorillas.
// It panics if the buildings do not exactly tile the arena width;
// config.Validate reports the same condition before a game starts.
func GenerateArena(cfg config.GorillasConfig, rng Rand) *World {
	a := cfg.Arena
	n := a.NumBuildings()
	if !a.Tiles() {
		panic(fmt.Sprintf("gorillas: %d buildings of width %v do not tile width %v", n, a.BuildingWidth, a.Width))
	}

	w := &World{Width: a.Width, Height: a.Height}
	left := -a.Width / 2
	bottom := -a.Height / 2
	cols := int(a.BuildingWidth / a.BrickWidth)

	for i := range n {
		b := Building{
			Index:  i,
			Left:   left + float64(i)*a.BuildingWidth,
			Bottom: bottom,
			Width:  a.BuildingWidth,
			Height: buildingHeight(rng, a.Height, a.BrickHeight),
			Color:  BuildingPalette[rng.Intn(len(BuildingPalette))],
		}
		w.Buildings = append(w.Buildings, b)

		rows := int(math.Round(b.Height / a.BrickHeight))
		for r := range rows {
			for c := range cols {
				center := core.V(
					b.Left+a.BrickWidth/2+float64(c)*a.BrickWidth,
					b.Bottom+a.BrickHeight/2+float64(r)*a.BrickHeight,
				)
				w.Bricks = append(w.Bricks, newBrick(len(w.Bricks), center, a.BrickWidth, a.BrickHeight, b.Color))
			}
		}
	}

	w.Gorillas[0] = placeGorilla(cfg, w.Buildings[0], core.Player1, cfg.Players.One)
	w.Gorillas[1] = placeGorilla(cfg, w.Buildings[n-1], core.Player2, cfg.Players.Two)
	return w
}

func placeGorilla(cfg config.GorillasConfig, b Building, p core.PlayerID, name string) *Gorilla {
	if name == "" {
		name = p.String()
	}
	center := core.V(b.Left+b.Width/2, b.Bottom+b.Height+cfg.Arena.GorillaHeight/2)
	return &Gorilla{
		Collider: Collider{
			Kind:   KindGorilla,
			Box:    core.BoxAt(center, cfg.Arena.GorillaWidth, cfg.Arena.GorillaHeight),
			Active: true,
			Player: p,
		},
		Name: name,
		Aim:  DefaultAim(cfg.Rules),
	}
}
