package dungeon

import "github.com/daimeng/gloamwood/internal/domain"

// Spawns - какие породы могут появиться на каждом классе рельефа.
// Список упорядочен от слабых к сильным: сэмплер смещён к началу.
var Spawns = [domain.TerrainCount][]domain.Breed{
	domain.TerrainDeep:       breeds(3, 4, 6, 9),
	domain.TerrainShallow:    breeds(2, 3, 4, 6),
	domain.TerrainSwamp:      breeds(1, 2, 3, 4, 6, 8),
	domain.TerrainPlain:      breeds(1, 2, 3, 6),
	domain.TerrainForest:     breeds(1, 2, 3, 4, 5, 6, 8),
	domain.TerrainDarkForest: breeds(1, 2, 3, 4, 5, 6, 8),
	domain.TerrainHill:       breeds(1, 2, 3, 4, 5, 6, 7),
	domain.TerrainMountain:   breeds(1, 2, 4, 5, 6, 7, 8, 9),
	domain.TerrainClouds:     breeds(1, 2, 4, 5, 6, 7, 8, 9),
	domain.TerrainPeak:       breeds(1, 2, 4, 6, 7, 8, 9),
	domain.TerrainLava:       breeds(6, 7, 9),
}

// SpawnList возвращает список пород для рельефа. Неизвестный рельеф считается глубокой водой.
func SpawnList(t domain.TerrainID) []domain.Breed {
	if !t.Valid() {
		return Spawns[domain.TerrainDeep]
	}
	return Spawns[t]
}

func breeds(ids ...int) []domain.Breed {
	out := make([]domain.Breed, len(ids))
	for i, id := range ids {
		out[i] = domain.Breed(id)
	}
	return out
}
