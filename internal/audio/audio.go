// Package audio plays the synthesized explosion sound when a banana hits.
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// ExplosionDuration is the length of one explosion sound.
const ExplosionDuration = 450 * time.Millisecond

// Player mixes fire-and-forget sound effects onto the speaker.
// Until Init succeeds every method is a no-op.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	seed        int64
}

// NewPlayer creates a player with volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
		seed:   time.Now().UnixNano(),
	}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Ready reports whether sounds will be heard.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Explosion plays one explosion.
func (p *Player) Explosion() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.seed++
	s := ExplosionSound(sampleRate, p.seed)
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

// Close silences the mixer.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// ExplosionSound is a burst of low-passed noise over a falling thump,
// decaying to silence over ExplosionDuration.
func ExplosionSound(rate beep.SampleRate, seed int64) beep.Streamer {
	return beep.Take(rate.N(ExplosionDuration), &boom{
		rate:  float64(rate),
		total: rate.N(ExplosionDuration),
		rng:   rand.New(rand.NewSource(seed)), //#nosec G404 -- noise source
	})
}

type boom struct {
	rate  float64
	total int
	pos   int
	phase float64
	lp    float64
	rng   *rand.Rand
}

func (b *boom) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / b.rate
		env := math.Exp(-7 * t)

		// noise smoothed by a one-pole low-pass
		b.lp += 0.15 * (b.rng.Float64()*2 - 1 - b.lp)

		// thump sweeping down from 110Hz
		freq := 40 + 70*math.Exp(-10*t)
		b.phase += 2 * math.Pi * freq / b.rate
		thump := math.Sin(b.phase)

		v := env * (0.6*b.lp + 0.4*thump)
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *boom) Err() error { return nil }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
