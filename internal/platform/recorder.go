// Package platform holds what every Gorillas frontend shares: reacting to
// game events with sound and saving finished rounds.
package platform

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas"
	"github.com/vovakirdan/tui-gorillas/internal/storage"
)

// Sound plays effects. Implementations must not block.
type Sound interface {
	Explosion()
}

// RoundSaver persists finished rounds.
type RoundSaver interface {
	SaveRound(r storage.Round) (int64, error)
}

// Recorder turns game events into side effects.
// Any of store and sound may be nil.
type Recorder struct {
	store  RoundSaver
	sound  Sound
	source string
	log    *log.Logger
	saved  int
}

// NewRecorder creates a recorder tagging saved rounds with source.
func NewRecorder(store RoundSaver, sound Sound, source string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, sound: sound, source: source, log: logger}
}

// Handle reacts to the events of one update.
func (r *Recorder) Handle(g *gorillas.Game, res gorillas.Result) {
	for _, e := range res.Events {
		switch e.Kind {
		case gorillas.EventCollision:
			if r.sound != nil {
				r.sound.Explosion()
			}
		case gorillas.EventRoundOver:
			r.save(g.Summary())
		}
	}
}

// Saved returns how many rounds were stored.
func (r *Recorder) Saved() int { return r.saved }

func (r *Recorder) save(s gorillas.RoundSummary) {
	if r.store == nil {
		return
	}
	id, err := r.store.SaveRound(RoundFromSummary(s, r.source))
	if err != nil {
		// the match goes on without a record
		r.log.Warn("failed to save round", "round", s.Round, "err", err)
		return
	}
	r.saved++
	r.log.Debug("round saved", "id", id, "winner", s.WinnerName)
}

// RoundFromSummary converts a finished round to its stored form.
func RoundFromSummary(s gorillas.RoundSummary, source string) storage.Round {
	return storage.Round{
		Winner:     s.WinnerName,
		Loser:      s.LoserName,
		WinnerSlot: int(s.Winner),
		Throws:     s.Throws,
		Wind:       s.Wind,
		Ticks:      s.Ticks,
		Seed:       s.Seed,
		Source:     source,
	}
}
