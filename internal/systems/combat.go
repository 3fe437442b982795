package systems

import (
	"fmt"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/pkg/dungeon"
	"github.com/daimeng/gloamwood/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AttackResult - итог одного удара.
type AttackResult struct {
	Attacker domain.EntityID
	Target   domain.EntityID
	Source   domain.EffectKind
	Dealt    int
	Healed   int
	Died     bool
	HeroHit  bool
	Msg      string
}

// ApplyAttack наносит удар по жильцу клетки target.
// Убитый монстр снимается с сетки (SetMonster(..., 0)); герой остаётся на
// месте, поражение определяет движок в конце хода.
func ApplyAttack(w *domain.GameWorld, attackerID domain.EntityID, target domain.Position, damage int, source domain.EffectKind) AttackResult {
	targetID := w.EntityRef[target.Y][target.X]
	res := AttackResult{Attacker: attackerID, Target: targetID, Source: source}
	if targetID == domain.NoneID {
		return res
	}

	attacker := w.Entity(attackerID)
	victim := w.Entity(targetID)

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attackerID,
		"attacker_name": DisplayName(attacker),
		"target_id":     targetID,
		"target_name":   DisplayName(victim),
		"effect":        source.String(),
	})

	if victim.IsDead() {
		combatLogger.Info("Attack ineffective: target is already dead.")
		return res
	}

	hpBefore := victim.HP
	res.Died = victim.TakeDamage(damage)
	res.Dealt = hpBefore - max(victim.HP, 0)
	res.HeroHit = targetID == domain.HeroID

	// Вампиризм: удар лечит атакующего на нанесённый урон.
	if attackerID != domain.HeroID && attackerID != targetID && isVamp(attacker) {
		res.Healed = attacker.Heal(res.Dealt)
	}

	if res.Died && targetID != domain.HeroID {
		Kill(w, target)
	}

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"dealt":       res.Dealt,
		"healed":      res.Healed,
		"hp_before":   hpBefore,
		"hp_after":    victim.HP,
		"target_died": res.Died,
	}).Info("Attack resolved.")

	res.Msg = fmt.Sprintf("%s наносит %d урона по %s (%s).",
		DisplayName(attacker), res.Dealt, DisplayName(victim), source)
	if res.Healed > 0 {
		res.Msg += fmt.Sprintf(" Восстанавливает %d.", res.Healed)
	}
	if res.Died {
		res.Msg += fmt.Sprintf(" %s погибает.", DisplayName(victim))
	}
	return res
}

// Kill снимает жильца клетки с сетки. Запись в хранилище остаётся инертной.
func Kill(w *domain.GameWorld, p domain.Position) {
	e := w.EntityAt(p.X, p.Y)
	w.SetMonster(p.X, p.Y, domain.NoneID)
	if e.IsMonster() {
		w.Counts[e.Breed]--
	}
}

// DisplayName - имя породы из каталога.
func DisplayName(e *domain.Entity) string {
	if t, ok := dungeon.Template(e.Breed); ok {
		return t.Name
	}
	return e.Name()
}

func isVamp(e *domain.Entity) bool {
	return e.Effects.Has(domain.EffectVamp) || e.Effects.Has(domain.EffectVampAura)
}
