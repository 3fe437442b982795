package handlers

import (
	"encoding/json"
	"errors"

	"github.com/daimeng/gloamwood/internal/domain"
)

// ErrUnknownAction возвращается для команды, у которой нет хендлера.
var ErrUnknownAction = errors.New("unknown action")

// Game описывает операции партии, доступные хендлерам.
// engine.GameEngine неявно реализует этот интерфейс.
type Game interface {
	OpenTile(x, y int) bool
	FlagTile(x, y, n int)
	FlagTileCycle(x, y int)
	ChordTile(x, y int) int
	Wait()
	Status() domain.GameStatus
}

// Context передает хендлеру партию и её сетку.
type Context struct {
	Game  Game
	World *domain.GameWorld
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в лог партии напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, ERROR)
	Changed bool   // изменилось ли поле
}

// HandlerFunc - это контракт для любой команды (OPEN, FLAG, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
