package engine

import (
	"fmt"
	"time"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/internal/engine/handlers"
	"github.com/daimeng/gloamwood/internal/engine/handlers/actions"
	"github.com/daimeng/gloamwood/pkg/api"
	"github.com/daimeng/gloamwood/pkg/logger"
	"github.com/daimeng/gloamwood/pkg/utils"

	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Session - единственный владелец партии. Каждая операция над сеткой
// выполняется под одним мьютексом, поэтому рендер и ввод из разных
// горутин видят только завершённые ходы.
type Session struct {
	mu deadlock.Mutex

	cfg      Config
	game     *GameEngine
	handlers map[domain.ActionType]handlers.HandlerFunc
	record   *domain.ReplaySession
}

// NewSession создает партию по конфигу.
func NewSession(cfg Config) (*Session, error) {
	game, err := NewGame(cfg)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return &Session{
		cfg:      cfg,
		game:     game,
		handlers: actions.Registry(),
		record:   newRecord(cfg),
	}, nil
}

func newRecord(cfg Config) *domain.ReplaySession {
	return &domain.ReplaySession{
		Seed:      cfg.Seed,
		Timestamp: time.Now().Unix(),
		Width:     cfg.Width,
		Height:    cfg.Height,
		Mines:     cfg.Mines,
		Fissures:  cfg.Fissures,
	}
}

// Dispatch выполняет команду игрока. Возвращает true, если поле изменилось.
func (s *Session) Dispatch(cmd api.Command) (bool, error) {
	actionType := domain.ParseAction(cmd.Action)
	handler, ok := s.handlers[actionType]
	if !ok {
		return false, fmt.Errorf("%w: %q", handlers.ErrUnknownAction, cmd.Action)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := handlers.Context{
		Game:  s.game,
		World: s.game.World,
	}

	turn := s.game.Turn
	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"session":   utils.ShortID(s.game.ID),
			"action":    actionType.String(),
		}).WithError(err).Warn("Command rejected.")
		return false, fmt.Errorf("%s: %w", actionType, err)
	}

	// В запись попадают только принятые команды.
	s.record.Actions = append(s.record.Actions, domain.ReplayAction{
		Turn:    turn,
		Action:  actionType,
		Payload: append([]byte(nil), cmd.Payload...),
	})

	// Логирование результата
	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.game.AddLog(result.Msg, msgType)
	}
	return result.Changed, nil
}

// View возвращает снимок партии для рендера.
func (s *Session) View() *api.WorldView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.BuildView()
}

// DrainLogs забирает накопленные записи игрового лога.
func (s *Session) DrainLogs() []api.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.DrainLogs()
}

// Restart выбрасывает партию и собирает новую с новым сидом.
func (s *Session) Restart() error {
	cfg := s.cfg
	cfg.Seed = utils.NewSeed()

	game, err := NewGame(cfg)
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.game = game
	s.record = newRecord(cfg)
	game.AddLog("Новая партия. Лес снова полон теней.", "INFO")
	return nil
}

// Status - состояние партии.
func (s *Session) Status() domain.GameStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Status()
}

// Seed - зерно текущей партии.
func (s *Session) Seed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Seed
}
