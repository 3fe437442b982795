package systems

import (
	"github.com/daimeng/gloamwood/internal/domain"
)

// RingWalk обходит периметры концентрических квадратов вокруг центра:
// радиус 1, 2, 3... до дальнего края карты. Сам центр не посещается.
//
// Порядок на каждом кольце (строка 0 - верх экрана):
// низ справа налево, левый край снизу вверх, верх слева направо,
// правый край сверху вниз. Каждый угол посещается ровно один раз.
type RingWalk struct {
	center domain.Position
	width  int
	height int
}

func NewRingWalk(w *domain.GameWorld, center domain.Position) RingWalk {
	return RingWalk{center: center, width: w.Width, height: w.Height}
}

// MaxRadius - радиус кольца, которое касается самого дальнего края.
func (r RingWalk) MaxRadius() int {
	return max(r.center.X, r.width-1-r.center.X, r.center.Y, r.height-1-r.center.Y)
}

// Each посещает клетки кольцо за кольцом. fn возвращает false, чтобы остановить обход.
func (r RingWalk) Each(fn func(p domain.Position) bool) {
	for radius := 1; radius <= r.MaxRadius(); radius++ {
		if !r.Ring(radius, fn) {
			return
		}
	}
}

// Ring посещает клетки одного кольца в пределах карты.
func (r RingWalk) Ring(radius int, fn func(p domain.Position) bool) bool {
	cx, cy := r.center.X, r.center.Y
	if radius == 0 {
		return r.visit(cx, cy, fn)
	}

	for x := cx + radius; x > cx-radius; x-- {
		if !r.visit(x, cy+radius, fn) {
			return false
		}
	}
	for y := cy + radius; y > cy-radius; y-- {
		if !r.visit(cx-radius, y, fn) {
			return false
		}
	}
	for x := cx - radius; x < cx+radius; x++ {
		if !r.visit(x, cy-radius, fn) {
			return false
		}
	}
	for y := cy - radius; y < cy+radius; y++ {
		if !r.visit(cx+radius, y, fn) {
			return false
		}
	}
	return true
}

// Positions собирает весь обход в срез (для тестов и отладки).
func (r RingWalk) Positions() []domain.Position {
	out := make([]domain.Position, 0, r.width*r.height)
	r.Each(func(p domain.Position) bool {
		out = append(out, p)
		return true
	})
	return out
}

func (r RingWalk) visit(x, y int, fn func(p domain.Position) bool) bool {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return true
	}
	return fn(domain.Position{X: x, Y: y})
}
