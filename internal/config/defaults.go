package config

import (
	_ "embed"
	"math"
	"time"
)

//go:embed defaults/gorillas.yaml
var defaultGorillasYAML []byte

// DefaultGorillasConfig returns the built-in rules.
func DefaultGorillasConfig() GorillasConfig {
	return GorillasConfig{
		Arena: ArenaConfig{
			Width:         1280,
			Height:        720,
			BuildingWidth: 160,
			BrickWidth:    32,
			BrickHeight:   8,
			GorillaWidth:  32,
			GorillaHeight: 64,
			BananaSize:    32,
		},
		Physics: PhysicsConfig{
			TickHz:    60,
			Gravity:   -9.8 * 10,
			UnitScale: 10 / 1.5,
			SpinRate:  math.Pi,
		},
		Wind: WindConfig{
			Min:   -20,
			Max:   20,
			Scale: 1.0,
		},
		Explosion: ExplosionConfig{
			StartRadius: 16,
			Speed:       2.0,
			MaxScale:    3.0,
		},
		Debris: DebrisConfig{
			VelXMin:     -150,
			VelXMax:     150,
			VelYMin:     50,
			VelYMax:     250,
			FadeStepMin: 0.01,
			FadeStepMax: 0.04,
		},
		Rules: RulesConfig{
			ReleaseDistance: 50,
			RepeatDelay:     150 * time.Millisecond,
			AngleMin:        0,
			AngleMax:        230,
			SpeedMin:        10,
			SpeedMax:        200,
			DefaultAngle:    45,
			DefaultSpeed:    30,
		},
		Players: PlayersConfig{
			One: "Player 1",
			Two: "Player 2",
		},
	}
}
