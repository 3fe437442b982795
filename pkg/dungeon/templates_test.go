package dungeon

import (
	"testing"

	"github.com/daimeng/gloamwood/internal/domain"
)

func TestMonsters_Tiers(t *testing.T) {
	for i := 1; i < domain.BreedCount; i++ {
		tmpl := Monsters[i]
		if tmpl.Breed != domain.Breed(i) {
			t.Errorf("Monsters[%d].Breed = %v", i, tmpl.Breed)
		}
		if tmpl.Level != i || tmpl.HP != i {
			t.Errorf("%s: level=%d hp=%d, want %d/%d", tmpl.Breed, tmpl.Level, tmpl.HP, i, i)
		}
		if len(tmpl.Effects) == 0 || len(tmpl.Effects) > domain.EffectSlots {
			t.Errorf("%s carries %d effects", tmpl.Breed, len(tmpl.Effects))
		}
	}
	if Monsters[0].Breed != domain.BreedHero || Monsters[0].Level != 0 {
		t.Errorf("slot 0 must be the hero, got %+v", Monsters[0])
	}
}

func TestSpawn_CopiesEffects(t *testing.T) {
	a := SpawnMonster(domain.BreedVampire)
	b := SpawnMonster(domain.BreedVampire)

	a.Effects.Add(domain.Vamp)
	if b.Effects.Has(domain.EffectVamp) {
		t.Error("spawned entities share an effect list")
	}
	if Vampire.Effects[0] != domain.Claw(2) || len(Vampire.Effects) != 2 {
		t.Error("catalog entry mutated by a spawned copy")
	}
	if a.MaxHP != a.HP || a.Active {
		t.Errorf("fresh spawn = %+v", a)
	}

	if none := SpawnMonster(domain.BreedNone); none.Breed != domain.BreedNone {
		t.Errorf("SpawnMonster(none) = %v", none.Breed)
	}
}

func TestSpawns_Table(t *testing.T) {
	for id, list := range Spawns {
		terrain := domain.TerrainID(id)
		if len(list) == 0 {
			t.Errorf("%s has no spawns", terrain)
		}
		for i, b := range list {
			if b < domain.BreedWolf || b > domain.BreedDragon {
				t.Errorf("%s lists invalid breed %d", terrain, b)
			}
			if i > 0 && list[i-1] >= b {
				t.Errorf("%s spawn list not ascending: %v", terrain, list)
			}
		}
	}

	if got := SpawnList(domain.TerrainLava); len(got) != 3 || got[2] != domain.BreedDragon {
		t.Errorf("lava spawns = %v", got)
	}
	if got := SpawnList(domain.TerrainID(99)); len(got) != len(Spawns[domain.TerrainDeep]) {
		t.Errorf("unknown terrain should fall back to deep, got %v", got)
	}
}

func TestCreateHero(t *testing.T) {
	h := CreateHero(domain.Sword(3))
	if h.HP != Hero.HP || h.MaxHP != Hero.HP || !h.Active {
		t.Errorf("hero = %+v", h)
	}
	if !h.Effects.Has(domain.EffectDagger) || !h.Effects.Has(domain.EffectSword) {
		t.Errorf("hero effects = %v", h.Effects.List())
	}

	w := NewWorld(3, 3)
	if w.Hero().HP != Hero.HP {
		t.Errorf("world hero hp = %d", w.Hero().HP)
	}
}
