package dungeon

import (
	"math/rand"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Level - результат генерации: карта высот и её квантованный рельеф.
type Level struct {
	Width   int
	Height  int
	Heights [][]float64
	Terrain [][]domain.TerrainID
}

// LevelBuilder предоставляет fluent API для создания рельефа
type LevelBuilder struct {
	width    int
	height   int
	fissures int
	flat     *domain.TerrainID
	rng      *rand.Rand
}

// NewLevel создает новый builder с размерами по умолчанию
func NewLevel(rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		width:    MapWidth,
		height:   MapHeight,
		fissures: DefaultFissures,
		rng:      rng,
	}
}

// WithSize устанавливает размер карты
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

// WithFissures задаёт число разломов. 0 даёт плоскую карту высот.
func (b *LevelBuilder) WithFissures(n int) *LevelBuilder {
	b.fissures = n
	return b
}

// Flat заменяет генерацию ровным рельефом одного класса.
func (b *LevelBuilder) Flat(t domain.TerrainID) *LevelBuilder {
	b.flat = &t
	return b
}

// Build собирает и возвращает готовый рельеф
func (b *LevelBuilder) Build() Level {
	lvl := Level{Width: b.width, Height: b.height}

	if b.flat != nil {
		lvl.Terrain = GenerateSurface(b.width, b.height, *b.flat)
		return lvl
	}

	lvl.Heights = GenerateFissures(b.width, b.height, b.fissures, b.rng)
	lvl.Terrain = QuantizeGrid(lvl.Heights)

	logger.Log.WithFields(logrus.Fields{
		"component": "terrain_generator",
		"width":     b.width,
		"height":    b.height,
		"fissures":  b.fissures,
	}).Debug("Terrain generated.")
	return lvl
}
