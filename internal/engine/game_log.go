package engine

import (
	"fmt"
	"time"

	"github.com/daimeng/gloamwood/pkg/api"
	"github.com/daimeng/gloamwood/pkg/logger"
	"github.com/daimeng/gloamwood/pkg/utils"

	"github.com/sirupsen/logrus"
)

// MaxLogEntries - сколько записей игрового лога хранится до сброса.
const MaxLogEntries = 200

// AddLog добавляет запись в игровой лог партии
func (g *GameEngine) AddLog(text, logType string) {
	g.logSeq++
	g.Logs = append(g.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%s_%d", utils.ShortID(g.ID), g.logSeq),
		Turn:      g.Turn,
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	if over := len(g.Logs) - MaxLogEntries; over > 0 {
		g.Logs = append(g.Logs[:0], g.Logs[over:]...)
	}

	logger.Log.WithFields(logrus.Fields{
		"session":   utils.ShortID(g.ID),
		"component": "game_log",
		"log_type":  logType,
		"turn":      g.Turn,
	}).Debug(text)
}

// DrainLogs отдаёт накопленные записи и очищает лог.
func (g *GameEngine) DrainLogs() []api.LogEntry {
	out := g.Logs
	g.Logs = []api.LogEntry{}
	return out
}
