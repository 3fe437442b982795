package domain

// NeighborOffsets - фиксированный порядок обхода соседей (построчно, без центра).
// Этот порядок - тай-брейк для движения монстров и поиска цели кинжалом.
var NeighborOffsets = [8]Position{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// ChebyshevTo - "королевское" расстояние: 1 для всех 8 соседей, 2 для кольца 5x5.
func (p Position) ChebyshevTo(other Position) int {
	return max(abs(p.X-other.X), abs(p.Y-other.Y))
}

// IsAdjacent возвращает true, если цель в соседней клетке (включая диагональ)
func (p Position) IsAdjacent(other Position) bool {
	return p != other && p.ChebyshevTo(other) <= 1
}

// Shift возвращает новую позицию со смещением, не меняя текущую.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Add складывает позицию со смещением.
func (p Position) Add(offset Position) Position {
	return p.Shift(offset.X, offset.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
