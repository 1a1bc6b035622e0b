package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

func TestExplosionSoundLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := ExplosionSound(rate, 1)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d out of range or not mono: %v", total-n+i, buf[i])
			}
		}
		if !ok {
			break
		}
		if total > rate.N(ExplosionDuration)*2 {
			t.Fatal("explosion sound never ended")
		}
	}
	if total != rate.N(ExplosionDuration) {
		t.Errorf("streamed %d samples, expected %d", total, rate.N(ExplosionDuration))
	}
}

func TestExplosionSoundDecays(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := ExplosionSound(rate, 2)

	buf := make([][2]float64, rate.N(ExplosionDuration))
	n, _ := s.Stream(buf)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, v := range buf[from:to] {
			m = math.Max(m, math.Abs(v[0]))
		}
		return m
	}
	head, tail := peak(0, n/10), peak(n-n/10, n)
	if tail >= head {
		t.Errorf("sound should fade out: head %v tail %v", head, tail)
	}
}

func TestPlayerWithoutDevice(t *testing.T) {
	p := NewPlayer(0.5)
	if p.Ready() {
		t.Fatal("player should not be ready before Init")
	}
	// must be safe without a speaker
	p.Explosion()
	p.Close()
}
