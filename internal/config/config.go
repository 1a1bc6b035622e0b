// Package config provides YAML-based rule configuration for Gorillas:
// arena geometry, physics constants, explosion and debris tuning, turn rules
// and wind presets.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// GorillasConfig contains every tunable rule of the game.
type GorillasConfig struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Wind      WindConfig      `yaml:"wind"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Debris    DebrisConfig    `yaml:"debris"`
	Rules     RulesConfig     `yaml:"rules"`
	Players   PlayersConfig   `yaml:"players"`
}

// ArenaConfig defines world dimensions in world units.
type ArenaConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BuildingWidth float64 `yaml:"building_width"`
	BrickWidth    float64 `yaml:"brick_width"`
	BrickHeight   float64 `yaml:"brick_height"`
	GorillaWidth  float64 `yaml:"gorilla_width"`
	GorillaHeight float64 `yaml:"gorilla_height"`
	BananaSize    float64 `yaml:"banana_size"`
}

// PhysicsConfig defines the integrator.
type PhysicsConfig struct {
	TickHz    int     `yaml:"tick_hz"`
	Gravity   float64 `yaml:"gravity"`    // vertical acceleration, negative is down
	UnitScale float64 `yaml:"unit_scale"` // throw speed units to world units per second
	SpinRate  float64 `yaml:"spin_rate"`  // banana spin, radians per second
}

// WindConfig defines how wind is drawn.
type WindConfig struct {
	Min   int     `yaml:"min"` // inclusive
	Max   int     `yaml:"max"` // exclusive
	Scale float64 `yaml:"scale"`
}

// ExplosionConfig defines the shockwave.
type ExplosionConfig struct {
	StartRadius float64 `yaml:"start_radius"`
	Speed       float64 `yaml:"speed"`
	MaxScale    float64 `yaml:"max_scale"`
}

// DebrisConfig defines ranges for knocked-out bricks.
type DebrisConfig struct {
	VelXMin     float64 `yaml:"vel_x_min"`
	VelXMax     float64 `yaml:"vel_x_max"`
	VelYMin     float64 `yaml:"vel_y_min"`
	VelYMax     float64 `yaml:"vel_y_max"`
	FadeStepMin float64 `yaml:"fade_step_min"`
	FadeStepMax float64 `yaml:"fade_step_max"`
}

// RulesConfig defines turn flow and aiming.
type RulesConfig struct {
	ReleaseDistance float64       `yaml:"release_distance"`
	RepeatDelay     time.Duration `yaml:"repeat_delay"`
	AngleMin        int           `yaml:"angle_min"`
	AngleMax        int           `yaml:"angle_max"`
	SpeedMin        int           `yaml:"speed_min"`
	SpeedMax        int           `yaml:"speed_max"`
	DefaultAngle    int           `yaml:"default_angle"`
	DefaultSpeed    int           `yaml:"default_speed"`
}

// PlayersConfig holds display names.
type PlayersConfig struct {
	One string `yaml:"one"`
	Two string `yaml:"two"`
}

// NumBuildings returns how many buildings tile the arena width.
func (a ArenaConfig) NumBuildings() int {
	if a.BuildingWidth <= 0 {
		return 0
	}
	return int(math.Round(a.Width / a.BuildingWidth))
}

// Tiles reports whether the buildings exactly cover the arena width.
func (a ArenaConfig) Tiles() bool {
	n := a.NumBuildings()
	return n >= 2 && float64(n)*a.BuildingWidth == a.Width
}

// TickDuration returns the fixed simulation step in seconds.
func (p PhysicsConfig) TickDuration() float64 {
	return 1 / float64(p.TickHz)
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the invariants the simulation depends on.
func (c GorillasConfig) Validate() error {
	a := c.Arena
	switch {
	case a.Width <= 0 || a.Height <= 0:
		return fmt.Errorf("%w: arena size %vx%v", ErrInvalidConfig, a.Width, a.Height)
	case a.BuildingWidth <= 0 || a.BrickWidth <= 0 || a.BrickHeight <= 0:
		return fmt.Errorf("%w: building and brick sizes must be positive", ErrInvalidConfig)
	case !a.Tiles():
		return fmt.Errorf("%w: %d buildings of width %v do not tile arena width %v",
			ErrInvalidConfig, a.NumBuildings(), a.BuildingWidth, a.Width)
	case a.GorillaWidth <= 0 || a.GorillaHeight <= 0 || a.BananaSize <= 0:
		return fmt.Errorf("%w: gorilla and banana sizes must be positive", ErrInvalidConfig)
	case c.Physics.TickHz <= 0:
		return fmt.Errorf("%w: physics.tick_hz must be > 0, got %d", ErrInvalidConfig, c.Physics.TickHz)
	case c.Wind.Max < c.Wind.Min:
		return fmt.Errorf("%w: wind range [%d,%d)", ErrInvalidConfig, c.Wind.Min, c.Wind.Max)
	case c.Explosion.StartRadius <= 0 || c.Explosion.MaxScale < 1:
		return fmt.Errorf("%w: explosion radius and max scale", ErrInvalidConfig)
	case c.Explosion.Speed <= 0:
		return fmt.Errorf("%w: explosion.speed must be > 0, got %v", ErrInvalidConfig, c.Explosion.Speed)
	case c.Debris.FadeStepMin <= 0 || c.Debris.FadeStepMax < c.Debris.FadeStepMin:
		return fmt.Errorf("%w: debris fade step range", ErrInvalidConfig)
	case c.Rules.AngleMin > c.Rules.AngleMax || c.Rules.SpeedMin > c.Rules.SpeedMax:
		return fmt.Errorf("%w: aim bounds", ErrInvalidConfig)
	case c.Rules.ReleaseDistance < 0 || c.Rules.RepeatDelay < 0:
		return fmt.Errorf("%w: release distance and repeat delay must not be negative", ErrInvalidConfig)
	}
	return nil
}
