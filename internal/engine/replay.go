package engine

import (
	"errors"
	"fmt"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/pkg/api"
	"github.com/daimeng/gloamwood/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrReplayDiverged - записанная команда не воспроизводится на той же партии.
var ErrReplayDiverged = errors.New("replay diverged")

// Replay возвращает копию записи текущей партии.
func (s *Session) Replay() *domain.ReplaySession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := *s.record
	out.Actions = append([]domain.ReplayAction(nil), s.record.Actions...)
	return &out
}

// NewSessionFromReplay собирает партию по записи и прогоняет все команды.
// Генерация детерминирована сидом, поэтому итог совпадает с оригиналом.
func NewSessionFromReplay(rec *domain.ReplaySession) (*Session, error) {
	cfg := Config{
		Seed:     rec.Seed,
		Width:    rec.Width,
		Height:   rec.Height,
		Mines:    rec.Mines,
		Fissures: rec.Fissures,
	}
	s, err := NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	for i, act := range rec.Actions {
		if s.game.Turn != act.Turn {
			return nil, fmt.Errorf("%w: action %d expected turn %d, got %d", ErrReplayDiverged, i, act.Turn, s.game.Turn)
		}
		cmd := api.Command{Action: act.Action.String(), Payload: act.Payload}
		if _, err := s.Dispatch(cmd); err != nil {
			return nil, fmt.Errorf("%w: action %d: %w", ErrReplayDiverged, i, err)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"seed":      rec.Seed,
		"actions":   len(rec.Actions),
		"turn":      s.game.Turn,
	}).Info("Replay restored.")
	return s, nil
}
