package systems

import (
	"math"
	"math/rand"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/pkg/dungeon"
	"github.com/daimeng/gloamwood/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// DangerTarget - желаемая средняя доля idx/len по всем расставленным монстрам.
const DangerTarget = 0.4

// maxBalance ограничивает корректирующий сдвиг индекса.
const maxBalance = 2

// MinePool - перемешанный список всех клеток. Первые Mines позиций заняты
// монстрами, остальные расходуются последовательно при remine.
type MinePool struct {
	Cells []domain.Position
	Mines int
	next  int
}

// NewMinePool перемешивает все координаты сетки.
func NewMinePool(w *domain.GameWorld, rng *rand.Rand) *MinePool {
	perm := rng.Perm(w.Width * w.Height)
	cells := make([]domain.Position, len(perm))
	for i, idx := range perm {
		cells[i] = domain.Position{X: idx % w.Width, Y: idx / w.Width}
	}
	return &MinePool{Cells: cells}
}

// Remaining - сколько запасных позиций ещё не израсходовано.
func (p *MinePool) Remaining() int {
	return len(p.Cells) - p.next
}

// take выдаёт следующую позицию вне запретной зоны. false - пул исчерпан.
func (p *MinePool) take(w *domain.GameWorld, zone mapset.Set[domain.Position]) (domain.Position, bool) {
	for p.next < len(p.Cells) {
		c := p.Cells[p.next]
		p.next++
		if zone.Has(c) || w.EntityRef[c.Y][c.X] != domain.NoneID {
			continue
		}
		return c, true
	}
	return domain.Position{}, false
}

// dangerBalance держит суммарную "опасность" пропорциональной числу
// расставленных монстров, чтобы не было серий одних слабых или сильных.
type dangerBalance struct {
	placed int
	danger float64
}

func (b *dangerBalance) correction() int {
	if b.placed == 0 {
		return 0
	}
	deficit := DangerTarget*float64(b.placed) - b.danger
	c := int(math.Round(deficit))
	return max(-maxBalance, min(maxBalance, c))
}

func (b *dangerBalance) record(idx, n int) {
	b.placed++
	b.danger += float64(idx) / float64(n)
}

// SampleSpawn возвращает индекс 1..n в списке спавна.
// Сумма двух равномерных величин из [-n, n] по модулю смещена к малым
// значениям; balance сдвигает результат вверх или вниз.
func SampleSpawn(n, balance int, rng *rand.Rand) int {
	draw := rng.Intn(2*n+1) - n + rng.Intn(2*n+1) - n
	if draw < 0 {
		draw = -draw
	}
	idx := draw/2 + 1 + balance
	return max(1, min(n, idx))
}

// Populate расставляет mineCount монстров по первым позициям пула.
// Порода берётся из таблицы спавна рельефа клетки.
func Populate(w *domain.GameWorld, mineCount int, rng *rand.Rand) *MinePool {
	pool := NewMinePool(w, rng)
	mines := max(0, min(mineCount, len(pool.Cells)))

	var bal dangerBalance
	for i := 0; i < mines; i++ {
		p := pool.Cells[i]
		list := dungeon.SpawnList(w.Terrain[p.Y][p.X])
		idx := SampleSpawn(len(list), bal.correction(), rng)
		bal.record(idx, len(list))

		breed := list[idx-1]
		id := w.AddEntity(dungeon.SpawnMonster(breed))
		w.SetMonster(p.X, p.Y, id)
		w.Counts[breed]++
	}
	pool.Mines = mines
	pool.next = mines

	logger.Log.WithFields(logrus.Fields{
		"component": "placement",
		"mines":     mines,
		"danger":    bal.danger,
		"counts":    w.Counts,
	}).Debug("Monsters placed.")
	return pool
}

// Remine убирает монстров из клетки (x,y) и её 8 соседей и переносит живых
// на следующие позиции пула вне окна |dx| < 2 && |dy| < 2.
// Если пул исчерпан, монстр просто пропадает.
func Remine(w *domain.GameWorld, pool *MinePool, x, y int) (relocated, dropped int) {
	zone := mapset.New[domain.Position]()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			zone.Put(domain.Position{X: x + dx, Y: y + dy})
		}
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			px, py := x+dx, y+dy
			if !w.InBounds(px, py) {
				continue
			}
			id := w.EntityRef[py][px]
			e := w.Entity(id)
			if !e.IsMonster() {
				continue
			}

			w.SetMonster(px, py, domain.NoneID)
			if e.IsDead() || e.Level <= 0 {
				w.Counts[e.Breed]--
				continue
			}

			target, ok := pool.take(w, zone)
			if !ok {
				w.Counts[e.Breed]--
				dropped++
				continue
			}
			w.SetMonster(target.X, target.Y, id)
			relocated++
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "placement",
		"x":         x,
		"y":         y,
		"relocated": relocated,
		"dropped":   dropped,
	}).Debug("Remine finished.")
	return relocated, dropped
}
