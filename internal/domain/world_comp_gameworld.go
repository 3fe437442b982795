package domain

import (
	"fmt"
)

func (w *GameWorld) GetIndex(x, y int) int {
	return y*w.Width + x
}

// InBounds проверяет, что координаты внутри сетки.
func (w *GameWorld) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// Entity возвращает запись хранилища по ID.
// Невалидный ID - ошибка программиста, а не игрока, поэтому паника.
func (w *GameWorld) Entity(id EntityID) *Entity {
	if int(id) >= len(w.Entities) {
		panic(fmt.Sprintf("domain: entity id %v out of store range %d", id, len(w.Entities)))
	}
	return &w.Entities[id]
}

// EntityAt возвращает сущность в клетке (страж NoneEntity, если пусто или вне карты).
func (w *GameWorld) EntityAt(x, y int) *Entity {
	if !w.InBounds(x, y) {
		return w.Entity(NoneID)
	}
	return w.Entity(w.EntityRef[y][x])
}

// Hero возвращает героя.
func (w *GameWorld) Hero() *Entity {
	return w.Entity(HeroID)
}

// AddEntity добавляет сущность в хранилище и возвращает её ID.
func (w *GameWorld) AddEntity(e Entity) EntityID {
	w.Entities = append(w.Entities, e)
	return EntityID(len(w.Entities) - 1)
}

// SetMonster ставит сущность в клетку и применяет дельту уровня к ауре соседей.
// Аура никогда не пересчитывается целиком.
func (w *GameWorld) SetMonster(x, y int, id EntityID) {
	old := w.EntityRef[y][x]
	w.EntityRef[y][x] = id

	if id == HeroID {
		w.HeroPos = Position{X: x, Y: y}
		w.HeroPlaced = true
	}

	delta := int16(w.Entity(id).Level - w.Entity(old).Level)
	if delta == 0 {
		return
	}
	w.EachNeighbor(x, y, func(n Position) {
		w.Aura[n.Y][n.X] += delta
	})
}

// EachNeighbor обходит соседей клетки в порядке NeighborOffsets, пропуская края.
func (w *GameWorld) EachNeighbor(x, y int, fn func(n Position)) {
	for _, off := range NeighborOffsets {
		nx, ny := x+off.X, y+off.Y
		if w.InBounds(nx, ny) {
			fn(Position{X: nx, Y: ny})
		}
	}
}

// EachInRadius обходит квадрат (2r+1)x(2r+1) вокруг клетки без самой клетки.
func (w *GameWorld) EachInRadius(x, y, r int, fn func(n Position)) {
	for ny := y - r; ny <= y+r; ny++ {
		for nx := x - r; nx <= x+r; nx++ {
			if (nx == x && ny == y) || !w.InBounds(nx, ny) {
				continue
			}
			fn(Position{X: nx, Y: ny})
		}
	}
}

// BruteForceAura считает ауру полным обходом соседей. Используется как оракул в тестах.
func (w *GameWorld) BruteForceAura(x, y int) int16 {
	var sum int16
	w.EachNeighbor(x, y, func(n Position) {
		sum += int16(w.EntityAt(n.X, n.Y).Level)
	})
	return sum
}

// EvilCount - сколько монстров осталось на сетке.
func (w *GameWorld) EvilCount() int {
	total := 0
	for _, c := range w.Counts {
		total += c
	}
	return total
}

// CheckInvariants проверяет инварианты сетки целиком.
func (w *GameWorld) CheckInvariants() error {
	if len(w.Entities) < 2 || w.Entities[NoneID].Breed != BreedNone || w.Entities[HeroID].Breed != BreedHero {
		return fmt.Errorf("entity store lost its reserved records")
	}

	heroes := 0
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			id := w.EntityRef[y][x]
			if int(id) >= len(w.Entities) {
				return fmt.Errorf("tile (%d,%d) refers to missing entity %v", x, y, id)
			}
			if id == HeroID {
				heroes++
			}
			if got, want := w.Aura[y][x], w.BruteForceAura(x, y); got != want {
				return fmt.Errorf("aura at (%d,%d) = %d, brute force %d", x, y, got, want)
			}
			if w.Open[y][x] && w.Flag[y][x] != 0 {
				return fmt.Errorf("open tile (%d,%d) carries flag %d", x, y, w.Flag[y][x])
			}
		}
	}

	wantHeroes := 0
	if w.HeroPlaced {
		wantHeroes = 1
	}
	if heroes != wantHeroes {
		return fmt.Errorf("found %d hero tiles, want %d", heroes, wantHeroes)
	}
	if w.HeroPlaced && w.EntityRef[w.HeroPos.Y][w.HeroPos.X] != HeroID {
		return fmt.Errorf("hero position %v is stale", w.HeroPos)
	}

	var counts [BreedCount]int
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if e := w.EntityAt(x, y); e.IsMonster() {
				counts[e.Breed]++
			}
		}
	}
	if counts != w.Counts {
		return fmt.Errorf("counts %v do not match grid %v", w.Counts, counts)
	}
	return nil
}
