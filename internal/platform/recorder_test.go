package platform

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas"
	"github.com/vovakirdan/tui-gorillas/internal/storage"
)

type fakeStore struct {
	rounds []storage.Round
	err    error
}

func (f *fakeStore) SaveRound(r storage.Round) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.rounds = append(f.rounds, r)
	return int64(len(f.rounds)), nil
}

type countingSound struct{ n int }

func (c *countingSound) Explosion() { c.n++ }

func TestRoundFromSummary(t *testing.T) {
	r := RoundFromSummary(gorillas.RoundSummary{
		Winner:     core.Player2,
		WinnerName: "Bonzo",
		LoserName:  "Kong",
		Throws:     4,
		Wind:       -7,
		Ticks:      300,
		Seed:       9,
	}, "ssh")

	want := storage.Round{Winner: "Bonzo", Loser: "Kong", WinnerSlot: 2, Throws: 4, Wind: -7, Ticks: 300, Seed: 9, Source: "ssh"}
	if r != want {
		t.Errorf("RoundFromSummary = %+v, expected %+v", r, want)
	}
}

func TestRecorderPlaysSoundOnCollision(t *testing.T) {
	sound := &countingSound{}
	rec := NewRecorder(nil, sound, "local", nil)

	rec.Handle(nil, gorillas.Result{Events: []gorillas.Event{
		{Kind: gorillas.EventThrow},
		{Kind: gorillas.EventCollision},
		{Kind: gorillas.EventMiss},
	}})

	if sound.n != 1 {
		t.Errorf("explosions played = %d, expected 1", sound.n)
	}
}

func TestRecorderSaveFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	rec := NewRecorder(store, nil, "local", nil)

	rec.save(gorillas.RoundSummary{Winner: core.Player1, WinnerName: "a", LoserName: "b"})
	if rec.Saved() != 0 {
		t.Errorf("saved = %d after failure", rec.Saved())
	}

	store.err = nil
	rec.save(gorillas.RoundSummary{Winner: core.Player1, WinnerName: "a", LoserName: "b"})
	if rec.Saved() != 1 || len(store.rounds) != 1 || store.rounds[0].Source != "local" {
		t.Errorf("saved = %d, rounds = %+v", rec.Saved(), store.rounds)
	}
}
