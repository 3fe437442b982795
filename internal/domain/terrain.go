package domain

// TerrainID - класс биома/высоты. Неизменен после генерации.
type TerrainID int16

const (
	TerrainDeep TerrainID = iota
	TerrainShallow
	TerrainSwamp
	TerrainPlain
	TerrainForest
	TerrainDarkForest
	TerrainHill
	TerrainMountain
	TerrainClouds
	TerrainPeak
	TerrainLava
)

// TerrainCount - число классов рельефа (0..10).
const TerrainCount = 11

var terrainToString = [TerrainCount]string{
	"deep", "shallow", "swamp", "plain", "forest", "darkforest",
	"hill", "mountain", "clouds", "peak", "lava",
}

func (t TerrainID) String() string {
	if t.Valid() {
		return terrainToString[t]
	}
	return "void"
}

func (t TerrainID) Valid() bool {
	return t >= 0 && t < TerrainCount
}

// IsObscured - облака скрывают соседей, аккорд на них не работает.
func (t TerrainID) IsObscured() bool {
	return t == TerrainClouds
}
