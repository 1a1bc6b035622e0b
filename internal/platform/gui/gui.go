// Package gui runs Gorillas in a desktop window with Ebitengine.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas"
	"github.com/vovakirdan/tui-gorillas/internal/platform"
)

// Options wires the window to its surroundings. Zero values are fine.
type Options struct {
	Store  platform.RoundSaver
	Sound  platform.Sound
	Logger *log.Logger
}

// keyState abstracts the keyboard so input mapping can be tested.
type keyState interface {
	JustPressed(k ebiten.Key) bool
	Pressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }

// Bindings maps keys to actions.
var Bindings = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionAimUp,
	ebiten.KeyArrowDown:  core.ActionAimDown,
	ebiten.KeyArrowLeft:  core.ActionAimLeft,
	ebiten.KeyArrowRight: core.ActionAimRight,
	ebiten.KeySpace:      core.ActionThrow,
	ebiten.KeyW:          core.ActionWind,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyR:          core.ActionRestart,
	ebiten.KeyEnter:      core.ActionRestart,
	ebiten.KeyQ:          core.ActionQuit,
	ebiten.KeyEscape:     core.ActionPause,
}

// readInput fills frame from the keyboard.
func readInput(keys keyState, frame *core.InputFrame) {
	frame.Clear()
	for k, a := range Bindings {
		switch {
		case keys.JustPressed(k):
			frame.Press(a)
		case keys.Pressed(k):
			frame.Hold(a)
		}
	}
}

// App implements ebiten.Game around a match.
type App struct {
	game     *gorillas.Game
	keys     keyState
	input    core.InputFrame
	recorder *platform.Recorder
}

// NewApp creates the window game. Reset the match before running it.
func NewApp(game *gorillas.Game, opts Options) *App {
	return &App{
		game:     game,
		keys:     ebitenKeys{},
		input:    core.NewInputFrame(),
		recorder: platform.NewRecorder(opts.Store, opts.Sound, "gui", opts.Logger),
	}
}

// Update runs once per Ebitengine tick.
func (a *App) Update() error {
	readInput(a.keys, &a.input)
	if a.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	elapsed := time.Second / time.Duration(ebiten.TPS())
	res := a.game.Update(elapsed, a.input)
	a.recorder.Handle(a.game, res)
	return nil
}

// Draw paints the interpolated scene.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(core.ColorSky, 1))
	s := a.game.Scene()
	for _, sp := range s.Sprites {
		drawSprite(screen, s, sp)
	}
	for i, line := range HUDLines(s.HUD) {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+16*i)
	}
}

// Layout keeps the logical screen the size of the world.
func (a *App) Layout(_, _ int) (int, int) {
	w, h := a.game.Config().Arena.Width, a.game.Config().Arena.Height
	return int(w), int(h)
}

// toScreen maps centred +Y-up world coordinates to pixels.
func toScreen(s gorillas.Scene, p core.Vec2) (float32, float32) {
	return float32(p.X + s.Width/2), float32(s.Height/2 - p.Y)
}

func rgba(c core.Color, opacity float64) color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(core.ClampF(opacity, 0, 1) * 255)}
}

func drawSprite(dst *ebiten.Image, s gorillas.Scene, sp gorillas.Sprite) {
	x, y := toScreen(s, sp.Pos)
	w, h := float32(sp.Size.X), float32(sp.Size.Y)
	clr := rgba(sp.Color, sp.Opacity)

	switch sp.Kind {
	case gorillas.SpriteBrick, gorillas.SpriteDebris:
		if sp.Opacity <= 0 {
			return
		}
		vector.DrawFilledRect(dst, x-w/2, y-h/2, w, h, clr, false)

	case gorillas.SpriteGorilla:
		// body, then a head on top
		vector.DrawFilledRect(dst, x-w/2, y-h/4, w, h*3/4, clr, false)
		vector.DrawFilledCircle(dst, x, y-h/4-w/3, w/3, clr, true)

	case gorillas.SpriteBanana:
		r := w / 2
		dx := float32(math.Cos(sp.Rotation)) * r
		dy := float32(math.Sin(sp.Rotation)) * r
		vector.StrokeLine(dst, x-dx, y+dy, x+dx, y-dy, 5, clr, true)

	case gorillas.SpriteExplosion:
		vector.DrawFilledCircle(dst, x, y, w/2, rgba(sp.Color, 0.7), true)
	}
}

// HUDLines formats the status text.
func HUDLines(h gorillas.HUD) []string {
	lines := []string{
		fmt.Sprintf("Round %d   %s %d : %d %s   Wind %+d", h.Round, h.Names[0], h.Wins[0], h.Wins[1], h.Names[1], h.Wind),
	}
	switch {
	case h.Paused:
		lines = append(lines, "PAUSED - press P to resume")
	case h.Phase == gorillas.PhaseWinner:
		lines = append(lines, h.WinnerName+" wins! Press R for the next round")
	case h.Phase == gorillas.PhaseEnter:
		lines = append(lines, fmt.Sprintf("%s   angle %d   speed %d", h.PlayerName, h.Angle, h.Speed))
	default:
		lines = append(lines, h.PlayerName+" throws...")
	}
	return lines
}

// start resets game for a new match, seeding from now when cfg has no seed.
func start(game *gorillas.Game, cfg core.RuntimeConfig, now time.Time) {
	game.Reset(cfg.Seeded(now))
}

// Run opens the window and plays until it is closed.
func Run(game *gorillas.Game, cfg core.RuntimeConfig, opts Options) error {
	start(game, cfg, time.Now())
	arena := game.Config().Arena

	ebiten.SetWindowSize(int(arena.Width), int(arena.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewApp(game, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
