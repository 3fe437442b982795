package engine

import (
	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/internal/systems"
	"github.com/daimeng/gloamwood/pkg/logger"
	"github.com/daimeng/gloamwood/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Step разрешает один полный ход после действия героя.
//
// Порядок фаз фиксирован:
//  1. эффекты хода героя (Regen);
//  2. движение: монстры по кольцам вокруг героя (Vamp снимается в начале фазы);
//  3. реакции после движения (VampAura, Howl);
//  4. действие героя (Sword);
//  5. атаки: сначала герой (Dagger, Missile), затем монстры по кольцам;
//  6. бонусное действие героя (Axe);
//  7. проверка конца партии.
func (g *GameEngine) Step() {
	w := g.World
	if g.status.IsOver() || !w.HeroPlaced {
		return
	}
	g.Turn++

	turnLogger := logger.Log.WithFields(logrus.Fields{
		"component": "turn_engine",
		"session":   utils.ShortID(g.ID),
		"turn":      g.Turn,
	})

	// 1. Ход героя
	g.resolve(w.HeroPos, systems.PhaseTurn)

	// 2. Движение
	cleared := systems.ClearVamp(w)
	moved := g.movePhase()
	turnLogger.WithFields(logrus.Fields{
		"moved":        moved,
		"vamp_cleared": cleared,
	}).Debug("Move phase finished.")

	// 3. Реакции
	g.eachHostile(func(p domain.Position) {
		g.resolve(p, systems.PhasePostMove)
	})

	// 4. Действие героя
	g.resolve(w.HeroPos, systems.PhaseHeroAction)

	// 5. Атаки
	g.resolve(w.HeroPos, systems.PhaseAttack)
	g.eachHostile(func(p domain.Position) {
		g.resolve(p, systems.PhaseAttack)
	})

	// 6. Бонусное действие
	g.resolve(w.HeroPos, systems.PhaseBonus)

	// 7. Конец партии
	g.checkGameOver()

	hp, maxHP := g.HeroHP()
	turnLogger.WithFields(logrus.Fields{
		"hero_hp":    hp,
		"hero_maxhp": maxHP,
		"evil":       w.EvilCount(),
		"status":     g.status.String(),
	}).Debug("Turn resolved.")
}

// movePhase сдвигает каждого активного монстра на шаг к герою.
// Монстр, уже сходивший в этой фазе, повторно не ходит, даже если
// переместился на ещё не пройденное кольцо.
func (g *GameEngine) movePhase() int {
	w := g.World
	acted := mapset.New[domain.EntityID]()
	moved := 0

	for _, p := range systems.NewRingWalk(w, w.HeroPos).Positions() {
		id := w.EntityRef[p.Y][p.X]
		if id == domain.NoneID || id == domain.HeroID || acted.Has(id) {
			continue
		}
		if !w.Entity(id).IsHostile() {
			continue
		}
		acted.Put(id)

		g.resolve(p, systems.PhaseTurn)
		if next, ok := systems.StepToward(w, p, w.HeroPos); ok {
			systems.MoveEntity(w, p, next)
			moved++
		}
	}
	return moved
}

// eachHostile обходит кольца вокруг героя и вызывает fn для каждого
// живого активного монстра. Позиция проверяется в момент посещения.
func (g *GameEngine) eachHostile(fn func(p domain.Position)) {
	w := g.World
	systems.NewRingWalk(w, w.HeroPos).Each(func(p domain.Position) bool {
		if w.EntityAt(p.X, p.Y).IsHostile() {
			fn(p)
		}
		return true
	})
}

// resolve применяет эффекты фазы и переносит результат в игровой лог.
func (g *GameEngine) resolve(p domain.Position, phase systems.Phase) {
	out := systems.ResolveEffects(g.World, p, phase)
	for _, note := range out.Notes {
		g.AddLog(note, "INFO")
	}
	for _, a := range out.Attacks {
		if a.Msg != "" {
			g.AddLog(a.Msg, "COMBAT")
		}
	}
}

// checkGameOver: смерть героя важнее победы.
func (g *GameEngine) checkGameOver() {
	w := g.World
	switch {
	case w.Hero().IsDead():
		g.status = domain.StatusLost
		g.AddLog("Странник пал. Лес забирает своё.", "ERROR")
	case w.EvilCount() == 0:
		g.status = domain.StatusWon
		g.AddLog("Лес очищен. Победа!", "INFO")
	default:
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "turn_engine",
		"session":   utils.ShortID(g.ID),
		"turn":      g.Turn,
		"status":    g.status.String(),
	}).Info("Game over.")
}
