package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/pkg/api"
)

func TestSession_ReplayRestoresGame(t *testing.T) {
	s := newTestSession(t)

	cmds := []api.Command{
		mustCommand(t, "OPEN", api.PositionPayload{X: 6, Y: 5}),
		mustCommand(t, "FLAG", api.FlagPayload{X: 0, Y: 0, Value: 3}),
		mustCommand(t, "WAIT", nil),
		mustCommand(t, "CHORD", api.PositionPayload{X: 6, Y: 5}),
		mustCommand(t, "OPEN", api.PositionPayload{X: 11, Y: 9}),
	}
	for _, cmd := range cmds {
		if _, err := s.Dispatch(cmd); err != nil {
			t.Fatalf("Dispatch %s: %v", cmd.Action, err)
		}
	}
	// Отклонённая команда в запись не попадает.
	if _, err := s.Dispatch(api.Command{Action: "FLAG"}); err == nil {
		t.Fatal("FLAG without payload should fail")
	}

	rec := s.Replay()
	if len(rec.Actions) != len(cmds) {
		t.Fatalf("recorded %d actions, want %d", len(rec.Actions), len(cmds))
	}
	if rec.Seed != s.Seed() || rec.Width != 12 || rec.Height != 10 {
		t.Errorf("record header = %+v", rec)
	}

	restored, err := NewSessionFromReplay(rec)
	if err != nil {
		t.Fatalf("NewSessionFromReplay: %v", err)
	}

	want, got := s.View(), restored.View()
	if got.Turn != want.Turn || got.Status != want.Status {
		t.Errorf("turn/status = %d/%s, want %d/%s", got.Turn, got.Status, want.Turn, want.Status)
	}
	if !reflect.DeepEqual(got.Hero, want.Hero) {
		t.Errorf("hero = %+v, want %+v", got.Hero, want.Hero)
	}
	if !reflect.DeepEqual(got.Tiles, want.Tiles) {
		t.Error("restored board differs from the original")
	}
}

func TestSession_ReplayDiverged(t *testing.T) {
	rec := &domain.ReplaySession{
		Seed: 5, Width: 12, Height: 10, Mines: 15, Fissures: 100,
		Actions: []domain.ReplayAction{
			{Turn: 3, Action: domain.ActionWait},
		},
	}
	if _, err := NewSessionFromReplay(rec); !errors.Is(err, ErrReplayDiverged) {
		t.Errorf("err = %v, want ErrReplayDiverged", err)
	}

	bad := &domain.ReplaySession{Seed: 1, Width: 0, Height: 10}
	if _, err := NewSessionFromReplay(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestSession_RestartResetsRecord(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.Dispatch(mustCommand(t, "WAIT", nil)); err != nil {
		t.Fatalf("WAIT: %v", err)
	}
	if err := s.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	rec := s.Replay()
	if len(rec.Actions) != 0 || rec.Seed != s.Seed() {
		t.Errorf("record after restart = %+v", rec)
	}
}
