package systems

import (
	"testing"

	"github.com/daimeng/gloamwood/internal/domain"
)

func TestStepToward(t *testing.T) {
	tests := []struct {
		name     string
		blockers []domain.Position
		from     domain.Position
		target   domain.Position
		want     domain.Position
		moved    bool
	}{
		{
			name:   "diagonal approach",
			from:   domain.Position{X: 0, Y: 0},
			target: domain.Position{X: 4, Y: 4},
			want:   domain.Position{X: 1, Y: 1},
			moved:  true,
		},
		{
			name:   "straight approach",
			from:   domain.Position{X: 2, Y: 4},
			target: domain.Position{X: 2, Y: 0},
			want:   domain.Position{X: 2, Y: 3},
			moved:  true,
		},
		{
			name:     "tie goes to first neighbor in order",
			blockers: []domain.Position{{X: 2, Y: 3}},
			from:     domain.Position{X: 2, Y: 2},
			target:   domain.Position{X: 2, Y: 4},
			want:     domain.Position{X: 1, Y: 3},
			moved:    true,
		},
		{
			name:     "already adjacent",
			blockers: []domain.Position{{X: 2, Y: 3}},
			from:     domain.Position{X: 2, Y: 2},
			target:   domain.Position{X: 2, Y: 3},
			want:     domain.Position{X: 2, Y: 2},
			moved:    false,
		},
		{
			name: "boxed in",
			blockers: []domain.Position{
				{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
			},
			from:   domain.Position{X: 0, Y: 0},
			target: domain.Position{X: 4, Y: 4},
			want:   domain.Position{X: 0, Y: 0},
			moved:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(5, 5)
			for _, b := range tt.blockers {
				placeMonster(w, b.X, b.Y, domain.BreedBoney)
			}

			got, moved := StepToward(w, tt.from, tt.target)
			if got != tt.want || moved != tt.moved {
				t.Errorf("Expected %v (moved=%v), got %v (moved=%v)", tt.want, tt.moved, got, moved)
			}
		})
	}
}

func TestMoveEntity(t *testing.T) {
	w := newTestWorld(5, 5)
	id := placeMonster(w, 0, 0, domain.BreedSaurian)
	w.Flag[1][1] = 4

	MoveEntity(w, domain.Position{X: 0, Y: 0}, domain.Position{X: 1, Y: 1})

	if w.EntityRef[0][0] != domain.NoneID || w.EntityRef[1][1] != id {
		t.Fatal("Entity did not move")
	}
	if !w.Open[1][1] || w.Flag[1][1] != 0 {
		t.Error("Destination should be opened and unflagged")
	}
	if w.Aura[0][0] != 3 || w.Aura[3][3] != 0 || w.Aura[2][2] != 3 {
		t.Errorf("Aura not shifted: (0,0)=%d (2,2)=%d (3,3)=%d", w.Aura[0][0], w.Aura[2][2], w.Aura[3][3])
	}
	mustInvariants(t, w)
}
