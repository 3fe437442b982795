package systems

import (
	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Reveal - примитив открытия, не запускающий ход. Итеративная заливка
// на заранее выделенном стеке мира. Возвращает число впервые открытых клеток.
//
// Каскад идёт только из клеток с нулевой аурой, где нет монстра.
// Клетка с ненулевой аурой открывается, но становится границей:
// ей и её соседям ставится ShowHint.
func Reveal(w *domain.GameWorld, x, y int) int {
	if !w.InBounds(x, y) || w.Open[y][x] {
		return 0
	}

	// Каждая клетка кладётся в стек не больше одного раза, поэтому
	// стек никогда не превышает Width*Height и не реаллоцируется.
	pushed := mapset.New[int]()
	stack := w.SearchBuffer[:0]
	stack = append(stack, domain.Position{X: x, Y: y})
	pushed.Put(w.GetIndex(x, y))

	opened := 0
	woken := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if w.Open[p.Y][p.X] {
			continue
		}
		if OpenCell(w, p) {
			woken++
		}
		opened++

		if w.Aura[p.Y][p.X] != 0 || w.EntityAt(p.X, p.Y).Level > 0 {
			markHint(w, p)
			continue
		}

		w.EachNeighbor(p.X, p.Y, func(n domain.Position) {
			idx := w.GetIndex(n.X, n.Y)
			if w.Open[n.Y][n.X] || pushed.Has(idx) {
				return
			}
			pushed.Put(idx)
			stack = append(stack, n)
		})
	}
	w.SearchBuffer = stack[:0]

	logger.Log.WithFields(logrus.Fields{
		"component": "reveal",
		"x":         x,
		"y":         y,
		"opened":    opened,
		"woken":     woken,
	}).Debug("Flood fill finished.")
	return opened
}

// OpenCell открывает одну клетку без заливки: снимает флаг и будит жильца.
// Возвращает true, если проснулся монстр.
func OpenCell(w *domain.GameWorld, p domain.Position) bool {
	w.Open[p.Y][p.X] = true
	w.Flag[p.Y][p.X] = 0

	id := w.EntityRef[p.Y][p.X]
	if id == domain.NoneID {
		return false
	}
	e := w.Entity(id)
	wasActive := e.Active
	e.Activate()
	return !wasActive && e.IsMonster()
}

func markHint(w *domain.GameWorld, p domain.Position) {
	w.ShowHint[p.Y][p.X] = true
	w.EachNeighbor(p.X, p.Y, func(n domain.Position) {
		w.ShowHint[n.Y][n.X] = true
	})
}
