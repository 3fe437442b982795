package domain

import "strings"

// ActionType - Внутренний числовой идентификатор команды игрока
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionOpen
	ActionFlag
	ActionCycleFlag
	ActionChord
	ActionWait
)

// Маппинг для конвертации строки команды -> Domain
var actionStringToCmd = map[string]ActionType{
	"OPEN":       ActionOpen,
	"FLAG":       ActionFlag,
	"CYCLE_FLAG": ActionCycleFlag,
	"CHORD":      ActionChord,
	"WAIT":       ActionWait,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionOpen:      "OPEN",
	ActionFlag:      "FLAG",
	ActionCycleFlag: "CYCLE_FLAG",
	ActionChord:     "CHORD",
	ActionWait:      "WAIT",
}

// ParseAction конвертирует строку в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
