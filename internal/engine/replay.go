package engine

import (
	"errors"
	"fmt"

	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/pkg/logger"
	"github.com/sirupsen/logrus"
)

var (
	ErrChecksumMismatch = errors.New("replay was recorded on a different map")
	ErrReplayDesync     = errors.New("replay desync")
)

// PlaybackResult - итог прогона записанной партии.
type PlaybackResult struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Turn     int `json:"turn"`
}

// Playback заново проигрывает попытки игрока на свежей симуляции.
// Номер хода перед каждой попыткой обязан совпасть с записанным,
// иначе симуляция разошлась с оригиналом.
func Playback(sim *Simulation, mapChecksum uint32, session *domain.ReplaySession) (PlaybackResult, error) {
	var res PlaybackResult

	if session.MapChecksum != mapChecksum {
		return res, fmt.Errorf("%w: file %08x, map %08x", ErrChecksumMismatch, session.MapChecksum, mapChecksum)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"component": "replay",
		"actions":   len(session.Actions),
	})
	log.Info("Playback started")

	for i, act := range session.Actions {
		if sim.Turn() != act.Turn {
			return res, fmt.Errorf("%w at action %d: turn %d, recorded %d", ErrReplayDesync, i, sim.Turn(), act.Turn)
		}
		if sim.Step(act.Direction) {
			res.Accepted++
		} else {
			res.Rejected++
		}
	}

	res.Turn = sim.Turn()
	log.WithFields(logrus.Fields{
		"accepted": res.Accepted,
		"rejected": res.Rejected,
		"turn":     res.Turn,
		"player":   sim.PlayerPos(),
	}).Info("Playback finished")

	return res, nil
}
