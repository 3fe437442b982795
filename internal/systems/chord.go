package systems

import (
	"github.com/daimeng/gloamwood/internal/domain"
)

// ChordSum - сумма по соседям: флаг у закрытой клетки, уровень жильца у открытой.
// Смешение намеренное: уже разрешённые бои тоже идут в счёт.
func ChordSum(w *domain.GameWorld, x, y int) int {
	sum := 0
	w.EachNeighbor(x, y, func(n domain.Position) {
		if w.Open[n.Y][n.X] {
			sum += w.EntityAt(n.X, n.Y).Level
		} else {
			sum += int(w.Flag[n.Y][n.X])
		}
	})
	return sum
}

// CanChord - открыта, аура >= 1, рельеф не скрыт облаками.
func CanChord(w *domain.GameWorld, x, y int) bool {
	return w.InBounds(x, y) &&
		w.Open[y][x] &&
		w.Aura[y][x] >= 1 &&
		!w.Terrain[y][x].IsObscured()
}

// Chord открывает все незакрытые флагом соседние клетки, если сумма
// ровно равна ауре. Ход не запускает. Возвращает число открытых клеток.
func Chord(w *domain.GameWorld, x, y int) int {
	if !CanChord(w, x, y) || ChordSum(w, x, y) != int(w.Aura[y][x]) {
		return 0
	}

	opened := 0
	w.EachNeighbor(x, y, func(n domain.Position) {
		if !w.Open[n.Y][n.X] && w.Flag[n.Y][n.X] == 0 {
			opened += Reveal(w, n.X, n.Y)
		}
	})
	return opened
}
