package domain

// GameStatus - терминальное состояние сессии: идёт / победа / поражение.
type GameStatus uint8

const (
	StatusInProgress GameStatus = iota
	StatusWon
	StatusLost
)

var statusToString = map[GameStatus]string{
	StatusInProgress: "IN_PROGRESS",
	StatusWon:        "WON",
	StatusLost:       "LOST",
}

func (s GameStatus) String() string {
	if val, ok := statusToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsOver - игра закончена (победой или поражением).
func (s GameStatus) IsOver() bool {
	return s != StatusInProgress
}
