package systems

import (
	"os"
	"testing"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/pkg/dungeon"
	"github.com/daimeng/gloamwood/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// newTestWorld - пустая равнина без монстров.
func newTestWorld(width, height int) *domain.GameWorld {
	w := dungeon.NewWorld(width, height)
	w.Terrain = dungeon.GenerateSurface(width, height, domain.TerrainPlain)
	return w
}

// placeMonster ставит монстра породы b и учитывает его в Counts.
func placeMonster(w *domain.GameWorld, x, y int, b domain.Breed) domain.EntityID {
	id := w.AddEntity(dungeon.SpawnMonster(b))
	w.SetMonster(x, y, id)
	w.Counts[b]++
	return id
}

func placeHero(w *domain.GameWorld, x, y int) {
	w.SetMonster(x, y, domain.HeroID)
	w.Open[y][x] = true
}

func mustInvariants(t *testing.T, w *domain.GameWorld) {
	t.Helper()
	if err := w.CheckInvariants(); err != nil {
		t.Fatalf("invariants broken: %v", err)
	}
}

func countOpen(w *domain.GameWorld) int {
	n := 0
	for y := range w.Open {
		for _, o := range w.Open[y] {
			if o {
				n++
			}
		}
	}
	return n
}
