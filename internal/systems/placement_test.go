package systems

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/pkg/dungeon"
)

func generatedWorld(seed int64) (*domain.GameWorld, *rand.Rand) {
	rng := rand.New(rand.NewSource(seed))
	lvl := dungeon.NewLevel(rng).WithSize(30, 16).WithFissures(200).Build()
	w := dungeon.NewWorld(lvl.Width, lvl.Height)
	w.Terrain = lvl.Terrain
	return w, rng
}

func TestPopulate(t *testing.T) {
	w, rng := generatedWorld(7)
	pool := Populate(w, 120, rng)

	if got := w.EvilCount(); got != 120 {
		t.Errorf("Expected 120 monsters, got %d", got)
	}
	if pool.Mines != 120 || pool.Remaining() != 30*16-120 {
		t.Errorf("Unexpected pool state: mines %d, remaining %d", pool.Mines, pool.Remaining())
	}
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			e := w.EntityAt(x, y)
			if !e.IsMonster() {
				continue
			}
			if !slices.Contains(dungeon.SpawnList(w.Terrain[y][x]), e.Breed) {
				t.Errorf("%s at (%d,%d) cannot spawn on %s", e.Breed, x, y, w.Terrain[y][x])
			}
			if e.Active {
				t.Errorf("Freshly placed %s at (%d,%d) should be inactive", e.Breed, x, y)
			}
		}
	}
	mustInvariants(t, w)
}

func TestPopulate_Deterministic(t *testing.T) {
	a, rngA := generatedWorld(42)
	b, rngB := generatedWorld(42)
	Populate(a, 60, rngA)
	Populate(b, 60, rngB)

	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.EntityAt(x, y).Breed != b.EntityAt(x, y).Breed {
				t.Fatalf("Layouts differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestPopulate_MoreMinesThanTiles(t *testing.T) {
	w := newTestWorld(3, 3)
	pool := Populate(w, 50, rand.New(rand.NewSource(1)))
	if pool.Mines != 9 || w.EvilCount() != 9 {
		t.Errorf("Expected mines clamped to 9, got pool %d, count %d", pool.Mines, w.EvilCount())
	}
	mustInvariants(t, w)
}

func TestSampleSpawn_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 1; n <= 8; n++ {
		for balance := -maxBalance; balance <= maxBalance; balance++ {
			for i := 0; i < 200; i++ {
				idx := SampleSpawn(n, balance, rng)
				if idx < 1 || idx > n {
					t.Fatalf("SampleSpawn(%d, %d) = %d out of range", n, balance, idx)
				}
			}
		}
	}
}

func TestDangerBalance_Correction(t *testing.T) {
	var b dangerBalance
	if c := b.correction(); c != 0 {
		t.Errorf("Empty balance should not correct, got %d", c)
	}
	for i := 0; i < 10; i++ {
		b.record(1, 8)
	}
	if c := b.correction(); c <= 0 {
		t.Errorf("Too many weak spawns should push up, got %d", c)
	}
	for i := 0; i < 30; i++ {
		b.record(8, 8)
	}
	if c := b.correction(); c >= 0 || c < -maxBalance {
		t.Errorf("Too many strong spawns should push down within limit, got %d", c)
	}
}

func TestRemine_ClearsWindow(t *testing.T) {
	w, rng := generatedWorld(11)
	pool := Populate(w, 120, rng)
	before := w.EvilCount()

	relocated, dropped := Remine(w, pool, 10, 8)
	if dropped != 0 {
		t.Errorf("Pool is large enough, nothing should be dropped, got %d", dropped)
	}
	if w.EvilCount() != before {
		t.Errorf("Expected %d monsters after remine, got %d", before, w.EvilCount())
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if w.EntityAt(10+dx, 8+dy).IsMonster() {
				t.Errorf("Monster left at (%d,%d)", 10+dx, 8+dy)
			}
		}
	}
	if w.Aura[8][10] != 0 {
		t.Errorf("Expected zero aura at the safe tile, got %d", w.Aura[8][10])
	}
	t.Logf("relocated %d monsters", relocated)
	mustInvariants(t, w)
}

func TestRemine_PoolExhausted(t *testing.T) {
	w := newTestWorld(3, 3)
	pool := Populate(w, 9, rand.New(rand.NewSource(5)))

	relocated, dropped := Remine(w, pool, 1, 1)
	if relocated != 0 || dropped != 9 {
		t.Errorf("Expected 0 relocated and 9 dropped, got %d and %d", relocated, dropped)
	}
	if w.EvilCount() != 0 {
		t.Errorf("Expected empty board, got %d monsters", w.EvilCount())
	}
	mustInvariants(t, w)
}
