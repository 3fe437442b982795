package api

import (
	"encoding/json"
	"testing"
)

func TestFlagPayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload FlagPayload
		wantErr bool
	}{
		{"clear", FlagPayload{X: 1, Y: 1, Value: 0}, false},
		{"max", FlagPayload{X: 1, Y: 1, Value: MaxFlag}, false},
		{"out of map is fine", FlagPayload{X: -5, Y: 100, Value: 3}, false},
		{"negative", FlagPayload{Value: -1}, true},
		{"too big", FlagPayload{Value: MaxFlag + 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCommand(t *testing.T) {
	cmd, err := NewCommand("FLAG", FlagPayload{X: 2, Y: 3, Value: 5})
	if err != nil {
		t.Fatalf("NewCommand: %v", err)
	}
	if cmd.Action != "FLAG" {
		t.Errorf("Action = %q", cmd.Action)
	}
	var p FlagPayload
	if err := json.Unmarshal(cmd.Payload, &p); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if p != (FlagPayload{X: 2, Y: 3, Value: 5}) {
		t.Errorf("payload = %+v", p)
	}

	wait, err := NewCommand("WAIT", nil)
	if err != nil || len(wait.Payload) != 0 {
		t.Errorf("WAIT should carry no payload, got %s err=%v", wait.Payload, err)
	}

	if _, err := NewCommand("OPEN", make(chan int)); err == nil {
		t.Error("unmarshalable payload should fail")
	}
}

func TestWorldViewTile(t *testing.T) {
	v := &WorldView{
		Grid:  GridMeta{Width: 3, Height: 2},
		Tiles: make([]TileView, 6),
	}
	for i := range v.Tiles {
		v.Tiles[i].X, v.Tiles[i].Y = i%3, i/3
	}

	if tile := v.Tile(2, 1); tile == nil || tile.X != 2 || tile.Y != 1 {
		t.Errorf("Tile(2,1) = %+v", tile)
	}
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, 2}} {
		if v.Tile(p[0], p[1]) != nil {
			t.Errorf("Tile(%d,%d) should be nil", p[0], p[1])
		}
	}

	for status, over := range map[string]bool{"IN_PROGRESS": false, "WON": true, "LOST": true} {
		v.Status = status
		if v.IsOver() != over {
			t.Errorf("IsOver(%s) = %v", status, !over)
		}
	}
}
