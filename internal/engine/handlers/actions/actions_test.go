package actions

import (
	"encoding/json"
	"testing"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/internal/engine/handlers"
	"github.com/daimeng/gloamwood/pkg/api"
)

// fakeGame записывает вызовы вместо настоящей партии.
type fakeGame struct {
	status domain.GameStatus
	calls  []string
	opened bool
	chord  int
}

func (f *fakeGame) OpenTile(x, y int) bool { f.calls = append(f.calls, "open"); return f.opened }
func (f *fakeGame) FlagTile(x, y, n int) { f.calls = append(f.calls, "flag") }
func (f *fakeGame) FlagTileCycle(x, y int) { f.calls = append(f.calls, "cycle") }
func (f *fakeGame) ChordTile(x, y int) int { f.calls = append(f.calls, "chord"); return f.chord }
func (f *fakeGame) Wait() { f.calls = append(f.calls, "wait") }
func (f *fakeGame) Status() domain.GameStatus {
	return f.status
}

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestRegistry(t *testing.T) {
	world := domain.NewGameWorld(4, 4, domain.Entity{HP: 10, MaxHP: 10})
	world.SetMonster(1, 1, domain.HeroID)
	world.Open[2][2] = true

	tests := []struct {
		name        string
		action      domain.ActionType
		payload     json.RawMessage
		status      domain.GameStatus
		wantCalls   int
		wantChanged bool
	}{
		{"open", domain.ActionOpen, raw(t, api.PositionPayload{X: 0, Y: 0}), domain.StatusInProgress, 1, false},
		{"open out of bounds", domain.ActionOpen, raw(t, api.PositionPayload{X: 9, Y: 0}), domain.StatusInProgress, 0, false},
		{"flag", domain.ActionFlag, raw(t, api.FlagPayload{X: 3, Y: 3, Value: 2}), domain.StatusInProgress, 1, true},
		{"flag on open tile", domain.ActionFlag, raw(t, api.FlagPayload{X: 2, Y: 2, Value: 2}), domain.StatusInProgress, 0, false},
		{"cycle after game over", domain.ActionCycleFlag, raw(t, api.PositionPayload{X: 3, Y: 3}), domain.StatusLost, 0, false},
		{"chord opens nothing", domain.ActionChord, raw(t, api.PositionPayload{X: 2, Y: 2}), domain.StatusInProgress, 1, false},
		{"wait", domain.ActionWait, nil, domain.StatusInProgress, 1, true},
		{"wait after win", domain.ActionWait, nil, domain.StatusWon, 0, false},
	}

	registry := Registry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &fakeGame{status: tt.status}
			handler, ok := registry[tt.action]
			if !ok {
				t.Fatalf("No handler for %s", tt.action)
			}

			res, err := handler(handlers.Context{Game: game, World: world}, tt.payload)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(game.calls) != tt.wantCalls {
				t.Errorf("Expected %d calls, got %v", tt.wantCalls, game.calls)
			}
			if res.Changed != tt.wantChanged {
				t.Errorf("Expected changed=%v, got %v", tt.wantChanged, res.Changed)
			}
		})
	}
}

func TestHandleChord_Message(t *testing.T) {
	game := &fakeGame{chord: 4}
	res, err := HandleChord(handlers.Context{Game: game}, api.PositionPayload{X: 1, Y: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Changed || res.Msg == "" || res.MsgType != "INFO" {
		t.Errorf("Unexpected result %+v", res)
	}
}
