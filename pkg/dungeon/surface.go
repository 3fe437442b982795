package dungeon

import "github.com/daimeng/gloamwood/internal/domain"

// GenerateSurface создаёт ровную карту одного класса рельефа.
// Используется для маленьких полей и сценариев, где разломы не нужны.
func GenerateSurface(width, height int, t domain.TerrainID) [][]domain.TerrainID {
	out := make([][]domain.TerrainID, height)
	for y := range out {
		row := make([]domain.TerrainID, width)
		for x := range row {
			row[x] = t
		}
		out[y] = row
	}
	return out
}
