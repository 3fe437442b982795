package dungeon

import (
	"math"
	"math/rand"

	"github.com/daimeng/gloamwood/internal/domain"
)

// Константы генерации
const (
	MapWidth  = 30
	MapHeight = 16
	MapMines  = 120

	// DefaultFissures - сколько линий разлома накладывается на карту.
	DefaultFissures = 1000
)

// Параметры квантования высоты в TerrainID:
// id = round((max(v, QuantizeFloor) + QuantizeOffset) * QuantizeScale), в пределах [0, 10].
const (
	QuantizeFloor  = -0.06
	QuantizeOffset = 0.06
	QuantizeScale  = 60.0
)

// GenerateFissures строит карту высот наложением случайных разломов.
// Каждая линия поднимает клетки с одной стороны и опускает с другой,
// в конце всё делится на число линий, значения лежат в [-1, 1].
func GenerateFissures(width, height, times int, rng *rand.Rand) [][]float64 {
	terrain := make([][]float64, height)
	for y := range terrain {
		terrain[y] = make([]float64, width)
	}
	if times <= 0 || width*height < 2 {
		return terrain
	}

	for t := 0; t < times; t++ {
		x1, y1 := rng.Intn(width), rng.Intn(height)
		x2, y2 := x1, y1
		for x1 == x2 && y1 == y2 {
			x2, y2 = rng.Intn(width), rng.Intn(height)
		}
		applyFissure(terrain, x1, y1, x2, y2)
	}

	for y := range terrain {
		for x := range terrain[y] {
			terrain[y][x] /= float64(times)
		}
	}
	return terrain
}

// applyFissure проводит одну линию через (x1,y1)-(x2,y2).
// Крутая линия обходится по строкам, пологая - по столбцам;
// знак зависит от порядка точек.
func applyFissure(terrain [][]float64, x1, y1, x2, y2 int) {
	h := len(terrain)
	w := len(terrain[0])
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)

	if math.Abs(dy) > math.Abs(dx) {
		// x = m*y + b
		m := dx / dy
		b := float64(x1) - m*float64(y1)
		sign := 1.0
		if y1 > y2 {
			sign = -1.0
		}
		for y := 0; y < h; y++ {
			split := clampInt(int(math.Round(m*float64(y)+b)), 0, w)
			for x := 0; x < split; x++ {
				terrain[y][x] -= sign
			}
			for x := split; x < w; x++ {
				terrain[y][x] += sign
			}
		}
		return
	}

	// y = m*x + b
	m := dy / dx
	b := float64(y1) - m*float64(x1)
	sign := 1.0
	if x1 > x2 {
		sign = -1.0
	}
	for x := 0; x < w; x++ {
		split := clampInt(int(math.Round(m*float64(x)+b)), 0, h)
		for y := 0; y < split; y++ {
			terrain[y][x] -= sign
		}
		for y := split; y < h; y++ {
			terrain[y][x] += sign
		}
	}
}

// Quantize переводит нормированную высоту в класс рельефа.
func Quantize(v float64) domain.TerrainID {
	id := math.Round((math.Max(v, QuantizeFloor) + QuantizeOffset) * QuantizeScale)
	return domain.TerrainID(clampInt(int(id), 0, domain.TerrainCount-1))
}

// QuantizeGrid квантует всю карту высот.
func QuantizeGrid(heights [][]float64) [][]domain.TerrainID {
	out := make([][]domain.TerrainID, len(heights))
	for y, row := range heights {
		out[y] = make([]domain.TerrainID, len(row))
		for x, v := range row {
			out[y][x] = Quantize(v)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
