package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/internal/systems"
	"github.com/daimeng/gloamwood/pkg/api"
	"github.com/daimeng/gloamwood/pkg/dungeon"
	"github.com/daimeng/gloamwood/pkg/logger"
	"github.com/daimeng/gloamwood/pkg/utils"

	"github.com/sirupsen/logrus"
)

// ErrTerrainSize возвращается, если рельеф не совпадает по размеру с сеткой.
var ErrTerrainSize = errors.New("terrain size mismatch")

// GameEngine владеет сеткой мира одной партии и реализует все её операции.
// Не потокобезопасен: конкурентный доступ идёт через Session.
type GameEngine struct {
	ID    string
	Seed  int64
	World *domain.GameWorld
	Rng   *rand.Rand

	Turn int
	Logs []api.LogEntry

	status      domain.GameStatus
	initialized bool // первый open_tile уже был (remine + герой)
	pool        *systems.MinePool
	logSeq      int
}

// New выделяет пустую сетку с героем. rng используется при Init.
func New(width, height int, rng *rand.Rand) *GameEngine {
	return &GameEngine{
		ID:    utils.GenerateID(),
		World: dungeon.NewWorld(width, height),
		Rng:   rng,
		Logs:  []api.LogEntry{},
	}
}

// NewGame собирает партию целиком: рельеф разломами, затем монстры.
func NewGame(cfg Config) (*GameEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := utils.NewRand(cfg.Seed)
	lvl := dungeon.NewLevel(rng).
		WithSize(cfg.Width, cfg.Height).
		WithFissures(cfg.Fissures).
		Build()

	g := New(cfg.Width, cfg.Height, rng)
	g.Seed = cfg.Seed
	if err := g.SetTerrain(lvl.Terrain); err != nil {
		return nil, fmt.Errorf("install terrain: %w", err)
	}
	g.Init(cfg.Mines)

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"session":   utils.ShortID(g.ID),
		"seed":      cfg.Seed,
		"width":     cfg.Width,
		"height":    cfg.Height,
		"mines":     g.World.EvilCount(),
	}).Info("New game created.")
	return g, nil
}

// SetTerrain устанавливает рельеф и пересчитывает подсказки рельефа.
func (g *GameEngine) SetTerrain(terrain [][]domain.TerrainID) error {
	w := g.World
	if len(terrain) != w.Height {
		return fmt.Errorf("%w: %d rows, want %d", ErrTerrainSize, len(terrain), w.Height)
	}
	for y, row := range terrain {
		if len(row) != w.Width {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrTerrainSize, y, len(row), w.Width)
		}
		copy(w.Terrain[y], row)
		for x := range row {
			w.ShowHint[y][x] = w.Open[y][x]
		}
	}
	return nil
}

// Init расставляет mineCount монстров по таблице спавна.
func (g *GameEngine) Init(mineCount int) {
	g.pool = systems.Populate(g.World, mineCount, g.Rng)
}

// OpenTile - ход игрока "открыть клетку". Возвращает true, если открылась хотя бы одна новая клетка.
//
// Первый вызов переносит монстров из окрестности (remine) и ставит туда героя.
// Открытая пустая клетка рядом с героем означает шаг героя.
// Любое действие, изменившее поле, завершается полным ходом (Step).
func (g *GameEngine) OpenTile(x, y int) bool {
	w := g.World
	if g.status.IsOver() || !w.InBounds(x, y) {
		return false
	}

	if !g.initialized {
		g.initialized = true
		if g.pool != nil {
			systems.Remine(w, g.pool, x, y)
		}
		if w.EntityRef[y][x] == domain.NoneID {
			w.SetMonster(x, y, domain.HeroID)
		}
	}

	if w.Open[y][x] {
		if g.walkTo(domain.Position{X: x, Y: y}) {
			g.Step()
		}
		return false
	}

	woke := w.EntityAt(x, y).IsMonster()
	opened := systems.Reveal(w, x, y)
	if woke {
		g.AddLog(fmt.Sprintf("Из темноты выходит %s.", systems.DisplayName(w.EntityAt(x, y))), "COMBAT")
	}
	if opened > 0 {
		g.Step()
	}
	return opened > 0
}

// walkTo передвигает героя на открытую пустую соседнюю клетку.
func (g *GameEngine) walkTo(to domain.Position) bool {
	w := g.World
	if !w.HeroPlaced || w.EntityRef[to.Y][to.X] != domain.NoneID || !w.HeroPos.IsAdjacent(to) {
		return false
	}
	systems.MoveEntity(w, w.HeroPos, to)
	return true
}

// FlagTile ставит метку n (0..9) на закрытую клетку.
func (g *GameEngine) FlagTile(x, y, n int) {
	w := g.World
	if g.status.IsOver() || !w.InBounds(x, y) || w.Open[y][x] {
		return
	}
	if n < 0 || n > domain.MaxFlag {
		return
	}
	w.Flag[y][x] = int8(n)
}

// FlagTileCycle переключает метку 0 -> 1 -> ... -> 9 -> 0.
func (g *GameEngine) FlagTileCycle(x, y int) {
	w := g.World
	if g.status.IsOver() || !w.InBounds(x, y) || w.Open[y][x] {
		return
	}
	w.Flag[y][x] = (w.Flag[y][x] + 1) % (domain.MaxFlag + 1)
}

// ChordTile открывает соседей, если метки и уровни сходятся с аурой.
// Возвращает число открытых клеток.
func (g *GameEngine) ChordTile(x, y int) int {
	if g.status.IsOver() || !g.initialized {
		return 0
	}
	opened := systems.Chord(g.World, x, y)
	if opened > 0 {
		g.Step()
	}
	return opened
}

// Wait пропускает ход героя.
func (g *GameEngine) Wait() {
	if g.status.IsOver() || !g.World.HeroPlaced {
		return
	}
	g.AddLog("Вы выжидаете.", "INFO")
	g.Step()
}

// --- Чтение состояния для рендера ---

func (g *GameEngine) Hero() *domain.Entity {
	return g.World.Hero()
}

func (g *GameEngine) EntityAt(x, y int) *domain.Entity {
	return g.World.EntityAt(x, y)
}

func (g *GameEngine) Status() domain.GameStatus {
	return g.status
}

// Counts - оставшиеся монстры по породам.
func (g *GameEngine) Counts() [domain.BreedCount]int {
	return g.World.Counts
}

// HeroHP возвращает текущее и максимальное здоровье героя.
func (g *GameEngine) HeroHP() (int, int) {
	h := g.World.Hero()
	return h.HP, h.MaxHP
}

// Initialized - был ли уже первый ход.
func (g *GameEngine) Initialized() bool {
	return g.initialized
}
