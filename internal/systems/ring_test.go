package systems

import (
	"testing"

	"github.com/daimeng/gloamwood/internal/domain"
)

func TestRingWalk_FirstRingOrder(t *testing.T) {
	w := newTestWorld(5, 5)
	got := NewRingWalk(w, domain.Position{X: 2, Y: 2}).Positions()[:8]

	want := []domain.Position{
		{X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 2},
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestRingWalk_Coverage(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		center domain.Position
	}{
		{"center", 5, 5, domain.Position{X: 2, Y: 2}},
		{"corner", 6, 4, domain.Position{X: 0, Y: 0}},
		{"edge", 7, 3, domain.Position{X: 6, Y: 1}},
		{"single row", 9, 1, domain.Position{X: 4, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(tt.w, tt.h)
			seen := make(map[domain.Position]bool)
			for _, p := range NewRingWalk(w, tt.center).Positions() {
				if !w.InBounds(p.X, p.Y) {
					t.Fatalf("visited out of bounds %v", p)
				}
				if p == tt.center {
					t.Fatalf("center %v must not be visited", p)
				}
				if seen[p] {
					t.Fatalf("visited %v twice", p)
				}
				seen[p] = true
			}
			if len(seen) != tt.w*tt.h-1 {
				t.Errorf("expected %d tiles, got %d", tt.w*tt.h-1, len(seen))
			}
		})
	}
}

func TestRingWalk_RingsGrowOutward(t *testing.T) {
	w := newTestWorld(9, 9)
	center := domain.Position{X: 3, Y: 5}
	last := 0
	for _, p := range NewRingWalk(w, center).Positions() {
		d := p.ChebyshevTo(center)
		if d < last {
			t.Fatalf("ring %d visited after ring %d at %v", d, last, p)
		}
		last = d
	}
}

func TestRingWalk_Stop(t *testing.T) {
	w := newTestWorld(5, 5)
	visited := 0
	NewRingWalk(w, domain.Position{X: 2, Y: 2}).Each(func(p domain.Position) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("expected walk to stop after 3 tiles, got %d", visited)
	}
}
