package domain

import "encoding/json"

// ReplayAction - одна принятая команда игрока.
type ReplayAction struct {
	Turn    int             // номер хода, на котором команда пришла
	Action  ActionType
	Payload json.RawMessage // исходный JSON команды
}

// ReplaySession - всё, что нужно для точного повтора партии:
// параметры генерации и последовательность команд.
type ReplaySession struct {
	Seed      int64
	Timestamp int64
	Width     int
	Height    int
	Mines     int
	Fissures  int
	Actions   []ReplayAction
}
