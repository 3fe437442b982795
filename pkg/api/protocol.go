package api

import (
	"encoding/json"
	"fmt"
)

// --- ЯДРО -> РЕНДЕР ---

// WorldView это неизменяемый "снимок" мира, который получает слой отрисовки.
// Строится заново после каждой команды; рендер никогда не держит ссылок на сетку.
type WorldView struct {
	// SessionID идентификатор текущей партии (меняется при рестарте).
	SessionID string `json:"sessionId"`
	Seed      int64  `json:"seed"`

	// Turn число завершённых ходов.
	Turn int `json:"turn"`

	// Status IN_PROGRESS, WON или LOST.
	Status string `json:"status"`

	Grid GridMeta `json:"grid"`

	// Tiles все клетки построчно: индекс = y*Width + x.
	Tiles []TileView `json:"tiles"`

	Hero HeroView `json:"hero"`

	// Counts оставшиеся монстры по породам (только ненулевые).
	Counts    []BreedCount `json:"counts"`
	EvilCount int          `json:"evilCount"`

	// Logs последние записи игрового лога.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит размеры карты.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одной клетки.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Terrain string `json:"terrain"`

	// IsOpen true, если клетка открыта. Жилец закрытой клетки не раскрывается.
	IsOpen bool `json:"isOpen"`

	// Flag метка игрока 0..9 (только на закрытых).
	Flag int `json:"flag,omitempty"`

	// Aura число опасности: сумма уровней соседей.
	Aura int `json:"aura"`

	// ShowHint показывать рельеф (косметика).
	ShowHint bool `json:"showHint"`

	// Entity жилец открытой клетки.
	Entity *EntityView `json:"entity,omitempty"`
}

// EntityView это DTO для видимой сущности.
type EntityView struct {
	ID      string   `json:"id"`
	Breed   string   `json:"breed"`
	Name    string   `json:"name"`
	Glyph   string   `json:"glyph"`
	Level   int      `json:"level"`
	HP      int      `json:"hp"`
	MaxHP   int      `json:"maxHp"`
	Active  bool     `json:"active"`
	Effects []string `json:"effects,omitempty"`
}

// HeroView - состояние героя для HUD.
type HeroView struct {
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Placed  bool     `json:"placed"`
	HP      int      `json:"hp"`
	MaxHP   int      `json:"maxHp"`
	Effects []string `json:"effects,omitempty"`
}

// BreedCount - сколько монстров породы осталось на карте.
type BreedCount struct {
	Breed string `json:"breed"`
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Level int    `json:"level"`
	Count int    `json:"count"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Turn      int    `json:"turn"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// Tile возвращает клетку (x, y) или nil вне карты.
func (v *WorldView) Tile(x, y int) *TileView {
	if x < 0 || y < 0 || x >= v.Grid.Width || y >= v.Grid.Height {
		return nil
	}
	return &v.Tiles[y*v.Grid.Width+x]
}

// IsOver - партия закончена.
func (v *WorldView) IsOver() bool {
	return v.Status == "WON" || v.Status == "LOST"
}

// --- ВВОД -> ЯДРО ---

// Command это корневой объект для всех команд игрока.
type Command struct {
	// Action название действия: OPEN, FLAG, CYCLE_FLAG, CHORD, WAIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewCommand упаковывает payload в команду.
func NewCommand(action string, payload any) (Command, error) {
	if payload == nil {
		return Command{Action: action}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Command{}, fmt.Errorf("marshal %s payload: %w", action, err)
	}
	return Command{Action: action, Payload: raw}, nil
}

// --- Payloads ---

// PositionPayload используется для действий над клеткой (OPEN, CYCLE_FLAG, CHORD).
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// FlagPayload ставит метку с конкретным значением.
type FlagPayload struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Value int `json:"value"`
}
