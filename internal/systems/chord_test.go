package systems

import (
	"testing"

	"github.com/daimeng/gloamwood/internal/domain"
)

// chordBoard: волк в углу (0,0), открыта клетка (1,1) с аурой 1.
func chordBoard() *domain.GameWorld {
	w := newTestWorld(5, 5)
	placeMonster(w, 0, 0, domain.BreedWolf)
	OpenCell(w, domain.Position{X: 1, Y: 1})
	return w
}

func TestChord(t *testing.T) {
	tests := []struct {
		name       string
		prepare    func(w *domain.GameWorld)
		wantOpened int
	}{
		{
			name:       "exact flag opens the rest",
			prepare:    func(w *domain.GameWorld) { w.Flag[0][0] = 1 },
			wantOpened: 23,
		},
		{
			name:       "flag too high",
			prepare:    func(w *domain.GameWorld) { w.Flag[0][0] = 2 },
			wantOpened: 0,
		},
		{
			name:       "no flags",
			prepare:    func(w *domain.GameWorld) {},
			wantOpened: 0,
		},
		{
			name: "open monster counts by level",
			prepare: func(w *domain.GameWorld) {
				OpenCell(w, domain.Position{X: 0, Y: 0})
			},
			wantOpened: 23,
		},
		{
			name: "clouds block chording",
			prepare: func(w *domain.GameWorld) {
				w.Flag[0][0] = 1
				w.Terrain[1][1] = domain.TerrainClouds
			},
			wantOpened: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := chordBoard()
			tt.prepare(w)

			opened := Chord(w, 1, 1)
			if opened != tt.wantOpened {
				t.Errorf("Expected %d opened, got %d", tt.wantOpened, opened)
			}
			mustInvariants(t, w)
		})
	}
}

func TestChord_ZeroAuraTile(t *testing.T) {
	w := newTestWorld(5, 5)
	OpenCell(w, domain.Position{X: 3, Y: 3})
	if CanChord(w, 3, 3) {
		t.Error("Tile with zero aura must not be chordable")
	}
	if opened := Chord(w, 3, 3); opened != 0 {
		t.Errorf("Expected 0 opened, got %d", opened)
	}
}

func TestChordSum_MixesFlagsAndLevels(t *testing.T) {
	w := newTestWorld(3, 3)
	placeMonster(w, 0, 0, domain.BreedBoney)
	placeMonster(w, 2, 2, domain.BreedSaurian)
	OpenCell(w, domain.Position{X: 1, Y: 1})
	OpenCell(w, domain.Position{X: 2, Y: 2})
	w.Flag[0][0] = 2
	w.Flag[0][2] = 1

	if sum := ChordSum(w, 1, 1); sum != 2+1+3 {
		t.Errorf("Expected sum 6, got %d", sum)
	}
}
