package gorillas

import "github.com/vovakirdan/tui-gorillas/internal/core"

// SpriteKind tells a renderer how to draw a sprite.
type SpriteKind int

const (
	SpriteBrick SpriteKind = iota
	SpriteDebris
	SpriteGorilla
	SpriteBanana
	SpriteExplosion
)

// Sprite is one entity as a renderer sees it, already interpolated.
type Sprite struct {
	Kind     SpriteKind
	Pos      core.Vec2 // centre, world space
	Size     core.Vec2
	Rotation float64
	Opacity  float64
	Color    core.Color
	Player   core.PlayerID
}

// HUD is the read-only status a frontend formats.
type HUD struct {
	Player     core.PlayerID
	PlayerName string
	Phase      Phase
	Angle      int
	Speed      int
	Wind       int
	Names      [2]string
	Wins       [2]int
	Winner     core.PlayerID
	WinnerName string
	Round      int
	Paused     bool
}

// Scene is everything needed to draw one frame.
type Scene struct {
	Width   float64
	Height  float64
	Sprites []Sprite
	HUD     HUD
}

// GorillaColor is the body color of each player's gorilla.
var GorillaColor = [2]core.Color{core.ColorGreen, core.ColorMagenta}

// HUD returns the status snapshot.
func (g *Game) HUD() HUD {
	w := g.world
	h := HUD{
		Player:     g.turn.Player,
		PlayerName: g.name(g.turn.Player),
		Phase:      g.turn.Phase,
		Wind:       w.Wind.Raw,
		Names:      [2]string{g.name(core.Player1), g.name(core.Player2)},
		Wins:       g.wins,
		Round:      g.round,
		Paused:     g.paused,
	}
	if gor := w.Gorilla(g.turn.Player); gor != nil {
		h.Angle, h.Speed = gor.Aim.Angle, gor.Aim.Speed
	}
	if g.turn.Over() {
		h.Winner = g.turn.Winner
		h.WinnerName = g.name(g.turn.Winner)
	}
	return h
}

// Scene builds the frame at the current overstep.
func (g *Game) Scene() Scene {
	return g.SceneAt(g.clock.Overstep())
}

// SceneAt builds the frame blended alpha of the way into the next tick.
func (g *Game) SceneAt(alpha float64) Scene {
	w := g.world
	a := g.cfg.Arena
	s := Scene{
		Width:   w.Width,
		Height:  w.Height,
		Sprites: make([]Sprite, 0, len(w.Bricks)+len(w.Explosions)+3),
		HUD:     g.HUD(),
	}

	for _, b := range w.Bricks {
		sp := Sprite{Kind: SpriteBrick, Pos: b.Box.Center, Size: core.V(a.BrickWidth, a.BrickHeight), Opacity: b.Opacity, Color: b.Color}
		if b.State == BrickDebris {
			sp.Kind = SpriteDebris
			sp.Pos = b.Body.At(alpha)
		}
		s.Sprites = append(s.Sprites, sp)
	}

	for i, gor := range w.Gorillas {
		if gor == nil {
			continue
		}
		s.Sprites = append(s.Sprites, Sprite{
			Kind:    SpriteGorilla,
			Pos:     gor.Pos(),
			Size:    core.V(a.GorillaWidth, a.GorillaHeight),
			Opacity: 1,
			Color:   GorillaColor[i],
			Player:  gor.Player,
		})
	}

	for _, e := range w.Explosions {
		scale := e.PrevScale + (e.Scale-e.PrevScale)*alpha
		d := 2 * g.cfg.Explosion.StartRadius * scale
		s.Sprites = append(s.Sprites, Sprite{
			Kind:    SpriteExplosion,
			Pos:     e.Center,
			Size:    core.V(d, d),
			Opacity: 1,
			Color:   core.ColorOrange,
		})
	}

	if b := w.Banana; b != nil {
		s.Sprites = append(s.Sprites, Sprite{
			Kind:     SpriteBanana,
			Pos:      b.At(alpha),
			Size:     core.V(b.Size, b.Size),
			Rotation: b.PrevRotation + (b.Rotation-b.PrevRotation)*alpha,
			Opacity:  1,
			Color:    core.ColorYellow,
			Player:   b.Thrower,
		})
	}
	return s
}
