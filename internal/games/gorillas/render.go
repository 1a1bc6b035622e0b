package gorillas

import (
	"math"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	GorillaChar   = '@'
	BananaChar    = ')'
	ExplosionChar = '*'
)

// shade maps opacity to a block glyph. Zero opacity draws nothing.
func shade(opacity float64) rune {
	switch {
	case opacity >= 0.75:
		return '█'
	case opacity >= 0.5:
		return '▓'
	case opacity >= 0.25:
		return '▒'
	case opacity > 0:
		return '░'
	default:
		return 0
	}
}

// projection maps world space onto a grid of terminal cells.
type projection struct {
	w, h       float64
	cols, rows int
}

func (p projection) cellX(x float64) float64 { return (x + p.w/2) / p.w * float64(p.cols) }
func (p projection) cellY(y float64) float64 { return (p.h/2 - y) / p.h * float64(p.rows) }

// rect returns the cells covered by a box, always at least one cell.
func (p projection) rect(center, size core.Vec2) core.Rect {
	x0 := int(math.Floor(p.cellX(center.X - size.X/2)))
	x1 := int(math.Ceil(p.cellX(center.X + size.X/2)))
	y0 := int(math.Floor(p.cellY(center.Y + size.Y/2)))
	y1 := int(math.Ceil(p.cellY(center.Y - size.Y/2)))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (p projection) cell(pos core.Vec2) (int, int) {
	return int(math.Floor(p.cellX(pos.X))), int(math.Floor(p.cellY(pos.Y)))
}

// Render draws the current frame onto dst. HUD text is left to the frontend.
func (g *Game) Render(dst *core.Screen) {
	RenderScene(dst, g.Scene())
}

// RenderScene projects a scene onto a terminal cell buffer.
func RenderScene(dst *core.Screen, s Scene) {
	dst.Clear()
	p := projection{w: s.Width, h: s.Height, cols: dst.Width(), rows: dst.Height()}

	for _, sp := range s.Sprites {
		switch sp.Kind {
		case SpriteBrick:
			dst.FillRect(p.rect(sp.Pos, sp.Size), shade(sp.Opacity), sp.Color)
		case SpriteDebris:
			if r := shade(sp.Opacity); r != 0 {
				x, y := p.cell(sp.Pos)
				dst.SetColor(x, y, r, sp.Color)
			}
		}
	}

	for _, sp := range s.Sprites {
		switch sp.Kind {
		case SpriteExplosion:
			drawBlast(dst, p, sp)
		case SpriteGorilla:
			dst.FillRect(p.rect(sp.Pos, sp.Size), GorillaChar, sp.Color)
		case SpriteBanana:
			x, y := p.cell(sp.Pos)
			dst.SetColor(x, y, BananaChar, sp.Color)
		}
	}
}

// drawBlast fills the cells inside the shockwave circle.
func drawBlast(dst *core.Screen, p projection, sp Sprite) {
	r := sp.Size.X / 2
	box := p.rect(sp.Pos, sp.Size)
	cw, ch := p.w/float64(p.cols), p.h/float64(p.rows)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			wx := (float64(x)+0.5)*cw - p.w/2
			wy := p.h/2 - (float64(y)+0.5)*ch
			if core.V(wx, wy).Dist(sp.Pos) <= r+math.Max(cw, ch)/2 {
				dst.SetColor(x, y, ExplosionChar, sp.Color)
			}
		}
	}
}
