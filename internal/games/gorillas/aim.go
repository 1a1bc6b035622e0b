package gorillas

import (
	"time"

	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// AngleSpeed is a player's aim. Angle is in degrees, speed in throw units.
type AngleSpeed struct {
	Angle int
	Speed int
}

// DefaultAim returns the aim every gorilla starts a round with.
func DefaultAim(r config.RulesConfig) AngleSpeed {
	return AngleSpeed{Angle: r.DefaultAngle, Speed: r.DefaultSpeed}.Clamp(r)
}

// Clamp forces the aim into the configured bounds.
func (a AngleSpeed) Clamp(r config.RulesConfig) AngleSpeed {
	return AngleSpeed{
		Angle: core.Clamp(a.Angle, r.AngleMin, r.AngleMax),
		Speed: core.Clamp(a.Speed, r.SpeedMin, r.SpeedMax),
	}
}

// Adjust applies a step and clamps. Values never wrap.
func (a AngleSpeed) Adjust(dAngle, dSpeed int, r config.RulesConfig) AngleSpeed {
	return AngleSpeed{Angle: a.Angle + dAngle, Speed: a.Speed + dSpeed}.Clamp(r)
}

// RepeatTimer gates auto-repeat of a held key. A fresh press fires once and
// restarts the timer; holding fires again every frame once the delay elapsed.
type RepeatTimer struct {
	Delay   time.Duration
	elapsed time.Duration
}

// Update advances the timer by dt and reports whether the action fires.
func (t *RepeatTimer) Update(pressed, held bool, dt time.Duration) bool {
	if pressed {
		t.elapsed = 0
		return true
	}
	if !held {
		return false
	}
	t.elapsed += dt
	return t.elapsed >= t.Delay
}

type aimStep struct {
	action         core.Action
	dAngle, dSpeed int
}

var aimSteps = [4]aimStep{
	{core.ActionAimUp, 1, 0},
	{core.ActionAimDown, -1, 0},
	{core.ActionAimRight, 0, 1},
	{core.ActionAimLeft, 0, -1},
}

// Aimer turns directional input into aim changes.
type Aimer struct {
	rules  config.RulesConfig
	timers [len(aimSteps)]RepeatTimer
}

// NewAimer creates an aimer with one repeat timer per direction.
func NewAimer(rules config.RulesConfig) *Aimer {
	a := &Aimer{rules: rules}
	for i := range a.timers {
		a.timers[i].Delay = rules.RepeatDelay
	}
	return a
}

// Apply returns aim after one frame of input lasting dt.
func (a *Aimer) Apply(aim AngleSpeed, in core.InputFrame, dt time.Duration) AngleSpeed {
	for i, s := range aimSteps {
		if a.timers[i].Update(in.Has(s.action), in.IsHeld(s.action), dt) {
			aim = aim.Adjust(s.dAngle, s.dSpeed, a.rules)
		}
	}
	return aim
}
