package engine

import (
	"errors"
	"testing"

	"github.com/expenses/snowy/internal/domain"
)

var replayMap = []string{
	".....",
	".#e..",
	".....",
}

func TestPlayback_ReproducesSession(t *testing.T) {
	data := buildMapJSON(t, replayMap...)
	checksum := MapChecksum(data)

	// Живая партия
	live := bootMap(t, [2]int{0, 0}, replayMap...)
	session := &domain.ReplaySession{MapChecksum: checksum}
	for _, dir := range []domain.Direction{domain.Right, domain.Down, domain.Right, domain.StandStill, domain.Up, domain.DownRight} {
		session.Record(live.Turn(), dir)
		live.Step(dir)
	}

	// Повтор
	replayed := bootMap(t, [2]int{0, 0}, replayMap...)
	res, err := Playback(replayed, checksum, session)
	if err != nil {
		t.Fatalf("Playback: %v", err)
	}

	if replayed.PlayerPos() != live.PlayerPos() || replayed.Turn() != live.Turn() {
		t.Errorf("replay ended at %v turn %d, live at %v turn %d",
			replayed.PlayerPos(), replayed.Turn(), live.PlayerPos(), live.Turn())
	}
	// Down в стену и Up за край карты отклонены
	if res.Accepted != 4 || res.Rejected != 2 {
		t.Errorf("result %+v does not cover all actions", res)
	}
	if res.Turn != live.Turn() {
		t.Errorf("result turn = %d, want %d", res.Turn, live.Turn())
	}
}

func TestPlayback_ChecksumMismatch(t *testing.T) {
	sim := bootMap(t, [2]int{0, 0}, replayMap...)
	_, err := Playback(sim, 1, &domain.ReplaySession{MapChecksum: 2})
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestPlayback_Desync(t *testing.T) {
	sim := bootMap(t, [2]int{0, 0}, replayMap...)
	session := &domain.ReplaySession{MapChecksum: 7}
	session.Record(1, domain.Right)
	session.Record(5, domain.Right) // на самом деле будет ход 2

	_, err := Playback(sim, 7, session)
	if !errors.Is(err, ErrReplayDesync) {
		t.Errorf("expected ErrReplayDesync, got %v", err)
	}
}
