package actions

import (
	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/internal/engine/handlers"
)

// Registry возвращает таблицу хендлеров для всех команд игрока.
func Registry() map[domain.ActionType]handlers.HandlerFunc {
	return map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionOpen:      handlers.WithPayload(HandleOpen),
		domain.ActionFlag:      handlers.WithPayload(HandleFlag),
		domain.ActionCycleFlag: handlers.WithPayload(HandleCycleFlag),
		domain.ActionChord:     handlers.WithPayload(HandleChord),
		domain.ActionWait:      handlers.WithEmptyPayload(HandleWait),
	}
}
