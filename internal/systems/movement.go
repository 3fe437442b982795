package systems

import (
	"github.com/daimeng/gloamwood/internal/domain"
)

// StepToward вычисляет жадный шаг: свободная соседняя клетка, строго
// уменьшающая квадрат расстояния до цели. Не меняет состояние мира!
// При равенстве побеждает первая клетка в порядке domain.NeighborOffsets.
func StepToward(w *domain.GameWorld, from, target domain.Position) (domain.Position, bool) {
	best := from
	bestDist := from.DistanceSquaredTo(target)
	moved := false

	w.EachNeighbor(from.X, from.Y, func(n domain.Position) {
		if w.EntityRef[n.Y][n.X] != domain.NoneID {
			return
		}
		if d := n.DistanceSquaredTo(target); d < bestDist {
			best, bestDist, moved = n, d, true
		}
	})
	return best, moved
}

// MoveEntity переносит жильца клетки from в пустую клетку to через SetMonster,
// так что аура остаётся согласованной. Клетка назначения открывается без заливки.
func MoveEntity(w *domain.GameWorld, from, to domain.Position) {
	id := w.EntityRef[from.Y][from.X]
	w.SetMonster(from.X, from.Y, domain.NoneID)
	w.SetMonster(to.X, to.Y, id)
	OpenCell(w, to)
}
