// Package gorillas implements the Gorillas artillery duel: two gorillas on a
// destructible skyline take turns throwing an exploding banana under gravity
// and wind until one of them is hit.
package gorillas

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// Game runs a match: a series of rounds between the same two players.
type Game struct {
	cfg     config.GorillasConfig
	runtime core.RuntimeConfig
	log     *log.Logger
	rng     Rand
	userRng bool

	world *World
	turn  Turn
	clock *Clock
	aimer *Aimer
	dt    float64

	paused     bool
	wins       [2]int
	round      int
	throws     int
	tick       uint64
	roundSeed  int64
	roundTicks int
	roundWind  int

	events []Event
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes game logs to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithRand replaces the seeded generator. Reset keeps using r.
func WithRand(r Rand) Option {
	return func(g *Game) {
		g.rng = r
		g.userRng = r != nil
	}
}

// New creates a game with the given rules. Call Reset before use.
func New(cfg config.GorillasConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg, log: log.New(io.Discard)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) ID() string    { return "gorillas" }
func (g *Game) Title() string { return "Gorillas" }

// Reset starts a new match. Player 1 opens.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.clock = NewClock(g.cfg.Physics.TickHz)
	g.dt = g.cfg.Physics.TickDuration()
	g.aimer = NewAimer(g.cfg.Rules)
	g.paused = false
	g.wins = [2]int{}
	g.round = 0
	g.tick = 0
	g.newRound(core.Player1)
}

// reseed gives every round its own seed. The first round uses the match
// seed; later rounds draw theirs from the previous round's generator, so a
// stored round seed replays that round as the opening round of a new match.
func (g *Game) reseed() {
	if g.userRng {
		g.roundSeed = g.runtime.Seed
		return
	}
	seed := g.runtime.Seed
	if g.round > 0 {
		seed = int64(g.rng.Intn(math.MaxInt32)) + 1
	}
	g.roundSeed = seed
	g.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
}

func (g *Game) newRound(first core.PlayerID) {
	g.reseed()
	g.world = GenerateArena(g.cfg, g.rng)
	g.world.Wind.Regenerate(g.rng, g.cfg.Wind)
	g.turn = NewTurn(first)
	g.clock.Reset()
	g.round++
	g.throws = 0
	g.roundTicks = 0
	g.roundWind = g.world.Wind.Raw
	g.log.Info("round start", "round", g.round, "seed", g.roundSeed, "first", first, "buildings", len(g.world.Buildings), "wind", g.world.Wind.Raw)
}

// Update feeds one frame of input and runs as many fixed ticks as the
// elapsed frame time allows.
func (g *Game) Update(elapsed time.Duration, in core.InputFrame) Result {
	g.events = nil
	g.handleInput(in, elapsed)
	if g.paused {
		return Result{Events: g.events}
	}
	n := g.clock.Advance(elapsed)
	for range n {
		g.Tick()
	}
	return Result{Ticks: n, Events: g.events}
}

// Step feeds input and runs exactly one fixed tick.
func (g *Game) Step(in core.InputFrame) Result {
	g.events = nil
	g.handleInput(in, g.clock.Step())
	if g.paused {
		return Result{Events: g.events}
	}
	g.Tick()
	return Result{Ticks: 1, Events: g.events}
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// transition applies a turn method and reports the change if it happened.
func (g *Game) transition(apply func() bool) bool {
	from := g.turn.Phase
	if !apply() {
		return false
	}
	g.log.Debug("phase change", "from", from, "to", g.turn.Phase, "player", g.turn.Player)
	g.emit(Event{Kind: EventPhaseChanged, Phase: g.turn.Phase, Player: g.turn.Player})
	return true
}

func (g *Game) handleInput(in core.InputFrame, dt time.Duration) {
	if in.Has(core.ActionPause) && !g.turn.Over() {
		g.paused = !g.paused
		g.clock.Reset()
		g.log.Debug("pause", "paused", g.paused)
	}
	if g.paused {
		return
	}

	if g.turn.Over() {
		if in.Has(core.ActionRestart) {
			g.newRound(g.turn.Winner.Other())
			g.emit(Event{Kind: EventPhaseChanged, Phase: g.turn.Phase, Player: g.turn.Player})
		}
		return
	}

	if in.Has(core.ActionWind) {
		accel := g.world.Wind.Regenerate(g.rng, g.cfg.Wind)
		g.roundWind = g.world.Wind.Raw
		g.log.Info("wind changed", "wind", g.world.Wind.Raw)
		g.emit(Event{Kind: EventWindChanged, Wind: accel})
	}

	if g.turn.Phase != PhaseEnter {
		return
	}
	gor := g.world.Gorilla(g.turn.Player)
	if gor == nil {
		g.log.Warn("no gorilla for current player, skipping input", "player", g.turn.Player)
		return
	}
	gor.Aim = g.aimer.Apply(gor.Aim, in, dt)
	if in.Has(core.ActionThrow) {
		g.throw(gor)
	}
}

func (g *Game) throw(gor *Gorilla) {
	player := g.turn.Player
	vel := ThrowVelocity(gor.Aim, player, g.cfg.Physics.UnitScale)
	g.world.Banana = &Banana{
		Body:    NewBody(gor.Pos(), vel),
		Thrower: player,
		Size:    g.cfg.Arena.BananaSize,
	}
	g.throws++
	g.log.Debug("throw", "player", player, "angle", gor.Aim.Angle, "speed", gor.Aim.Speed)
	g.emit(Event{Kind: EventThrow, Player: player, Pos: gor.Pos()})
	g.transition(g.turn.Throw)
}

// Tick advances the simulation by one fixed step:
// physics, explosion growth, debris fade, banana checks, explosion checks,
// then the turn transition.
func (g *Game) Tick() {
	g.tick++
	g.roundTicks++
	w := g.world
	accel := core.V(0, g.cfg.Physics.Gravity).Add(w.Wind.Vec())

	if b := w.Banana; b != nil {
		b.Integrate(accel, g.dt)
		b.Spin(g.cfg.Physics.SpinRate, g.dt)
	}
	for _, br := range w.Bricks {
		if br.State == BrickDebris {
			br.Body.Integrate(accel, g.dt)
		}
	}

	g.growExplosions()
	g.decayDebris()

	pass, struck, hit := g.updateBanana()
	if p, ok := g.explosionHits(); ok && !hit {
		struck, hit = p, true
	}

	switch {
	case hit:
		g.finishRound(struck)
	case pass:
		g.transition(g.turn.Pass)
	}
}

func (g *Game) growExplosions() {
	w := g.world
	kept := w.Explosions[:0]
	for _, e := range w.Explosions {
		if !e.Grow(g.cfg.Explosion, g.dt) {
			kept = append(kept, e)
		}
	}
	clear(w.Explosions[len(kept):])
	w.Explosions = kept
}

func (g *Game) decayDebris() {
	w := g.world
	kept := w.Bricks[:0]
	for _, b := range w.Bricks {
		if b.Decay() {
			continue
		}
		b.Index = len(kept)
		kept = append(kept, b)
	}
	clear(w.Bricks[len(kept):])
	w.Bricks = kept
}

// updateBanana runs the release and collision checks for the live banana.
func (g *Game) updateBanana() (pass bool, struck core.PlayerID, hit bool) {
	w := g.world
	b := w.Banana
	if b == nil {
		return false, 0, false
	}

	switch g.turn.Phase {
	case PhaseThrowing:
		gor := w.Gorilla(b.Thrower)
		if gor == nil {
			g.log.Warn("thrower gorilla missing, skipping release check", "player", b.Thrower)
			return false, 0, false
		}
		if b.Cur.Dist(gor.Pos()) > g.cfg.Rules.ReleaseDistance {
			g.transition(g.turn.Release)
		}

	case PhaseWatching:
		if OffScreen(b.Cur, w.Width, w.Height) {
			w.Banana = nil
			g.log.Debug("banana off screen", "pos", b.Cur)
			g.emit(Event{Kind: EventMiss, Player: b.Thrower, Pos: b.Cur})
			return true, 0, false
		}
		res := Resolve(b.Box(), w.Colliders())
		if !res.Collided() {
			return false, 0, false
		}
		w.Banana = nil
		w.Explosions = append(w.Explosions, newExplosion(b.Cur))
		g.shatter(res.Bricks)
		g.emit(Event{Kind: EventCollision, Player: b.Thrower, Pos: b.Cur})
		struck, hit = res.Gorilla()
		return true, struck, hit
	}
	return false, 0, false
}

// explosionHits tests every live shockwave. Bricks inside are shattered and
// the first gorilla touched is returned.
func (g *Game) explosionHits() (core.PlayerID, bool) {
	w := g.world
	if g.turn.Over() || len(w.Explosions) == 0 {
		return 0, false
	}
	colliders := w.Colliders()
	var struck core.PlayerID
	found := false
	for _, e := range w.Explosions {
		res := Resolve(e.Box(g.cfg.Explosion), colliders)
		g.shatter(res.Bricks)
		if p, ok := res.Gorilla(); ok && !found {
			struck, found = p, true
		}
	}
	return struck, found
}

func (g *Game) shatter(indices []int) {
	n := 0
	for _, i := range indices {
		if g.world.Bricks[i].Shatter(g.rng, g.cfg.Debris) {
			n++
		}
	}
	if n > 0 {
		g.log.Debug("bricks shattered", "count", n)
	}
}

func (g *Game) finishRound(struck core.PlayerID) {
	if !g.transition(func() bool { return g.turn.Win(struck) }) {
		return
	}
	g.world.Banana = nil
	winner := g.turn.Winner
	g.wins[winner.Index()]++
	g.log.Info("round over", "round", g.round, "winner", winner, "throws", g.throws, "ticks", g.roundTicks)
	g.emit(Event{Kind: EventRoundOver, Player: winner})
}

// Turn returns the current turn state.
func (g *Game) Turn() Turn { return g.turn }

// World exposes the entities of the current round.
func (g *Game) World() *World { return g.world }

// Wins returns the number of rounds each player has won this match.
func (g *Game) Wins() [2]int { return g.wins }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// Overstep is the interpolation fraction for rendering.
func (g *Game) Overstep() float64 { return g.clock.Overstep() }

// Config returns the rules in use.
func (g *Game) Config() config.GorillasConfig { return g.cfg }

// RoundSummary describes a finished round.
type RoundSummary struct {
	Round      int
	Winner     core.PlayerID
	WinnerName string
	LoserName  string
	Throws     int
	Wind       int
	Ticks      int
	Seed       int64 // replays this round as round 1 of a new match
}

// Summary describes the current round. Winner is zero until the round is over.
func (g *Game) Summary() RoundSummary {
	s := RoundSummary{
		Round:  g.round,
		Throws: g.throws,
		Wind:   g.roundWind,
		Ticks:  g.roundTicks,
		Seed:   g.roundSeed,
	}
	if g.turn.Over() {
		s.Winner = g.turn.Winner
		s.WinnerName = g.name(s.Winner)
		s.LoserName = g.name(s.Winner.Other())
	}
	return s
}

func (g *Game) name(p core.PlayerID) string {
	if gor := g.world.Gorilla(p); gor != nil {
		return gor.Name
	}
	return p.String()
}
