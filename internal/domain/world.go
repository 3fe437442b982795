package domain

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GameWorld - сетка мира. Каждый факт о тайле хранится отдельным плотным
// массивом [row][col]; все массивы одного размера Width x Height.
type GameWorld struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Terrain   [][]TerrainID `json:"terrain"`
	EntityRef [][]EntityID  `json:"entityRef"` // 0 - пусто, 1 - герой
	Aura      [][]int16     `json:"aura"`      // сумма Level соседей, без самой клетки
	Open      [][]bool      `json:"open"`
	Flag      [][]int8      `json:"flag"`     // метка игрока 0..MaxFlag, только на закрытых
	ShowHint  [][]bool      `json:"showHint"` // косметика: показывать рельеф

	// Entities - хранилище сущностей (только добавление). Индекс = EntityID.
	Entities []Entity `json:"-"`

	// Counts - сколько монстров каждой породы ещё стоит на сетке.
	Counts [BreedCount]int `json:"counts"`

	HeroPos    Position `json:"heroPos"`
	HeroPlaced bool     `json:"heroPlaced"`

	// SearchBuffer - заранее выделенный стек заливки (Width*Height), чтобы не было реаллокаций.
	SearchBuffer []Position `json:"-"`
}

// NewGameWorld выделяет все массивы и кладёт в хранилище стража (0) и героя (1).
func NewGameWorld(width, height int, hero Entity) *GameWorld {
	w := &GameWorld{
		Width:        width,
		Height:       height,
		Terrain:      newGrid[TerrainID](width, height),
		EntityRef:    newGrid[EntityID](width, height),
		Aura:         newGrid[int16](width, height),
		Open:         newGrid[bool](width, height),
		Flag:         newGrid[int8](width, height),
		ShowHint:     newGrid[bool](width, height),
		Entities:     make([]Entity, 0, 2+width*height/4),
		SearchBuffer: make([]Position, 0, width*height),
	}
	w.Entities = append(w.Entities, NoneEntity)
	hero.Breed = BreedHero
	hero.Level = 0
	w.Entities = append(w.Entities, hero)
	return w
}

func newGrid[T any](width, height int) [][]T {
	g := make([][]T, height)
	for y := range g {
		g[y] = make([]T, width)
	}
	return g
}
