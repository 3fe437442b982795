package systems

import (
	"fmt"

	"github.com/daimeng/gloamwood/internal/domain"
	"github.com/daimeng/gloamwood/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Phase - фаза хода, в которой срабатывает эффект.
type Phase uint8

const (
	PhaseNone       Phase = iota // пассивные маркеры (Vamp)
	PhaseTurn                    // собственный ход сущности
	PhasePostMove                // реакции после движения
	PhaseHeroAction              // действие героя
	PhaseAttack                  // атаки
	PhaseBonus                   // бонусное действие героя
)

var phaseToString = map[Phase]string{
	PhaseNone:       "NONE",
	PhaseTurn:       "TURN",
	PhasePostMove:   "POST_MOVE",
	PhaseHeroAction: "HERO_ACTION",
	PhaseAttack:     "ATTACK",
	PhaseBonus:      "BONUS",
}

func (p Phase) String() string {
	if s, ok := phaseToString[p]; ok {
		return s
	}
	return "UNKNOWN"
}

// EffectPhase - в какой фазе срабатывает вариант эффекта.
func EffectPhase(k domain.EffectKind) Phase {
	switch k {
	case domain.EffectRegen:
		return PhaseTurn
	case domain.EffectVampAura, domain.EffectHowl:
		return PhasePostMove
	case domain.EffectSword:
		return PhaseHeroAction
	case domain.EffectAxe:
		return PhaseBonus
	case domain.EffectDagger, domain.EffectMissile, domain.EffectImmolate,
		domain.EffectClaw, domain.EffectSpear, domain.EffectWail, domain.EffectRaze:
		return PhaseAttack
	}
	return PhaseNone
}

// Outcome - всё, что произошло за один вызов интерпретатора.
type Outcome struct {
	Attacks []AttackResult
	Notes   []string // не-боевые события: лечение, вой, вампиризм
}

// ResolveEffects применяет эффекты жильца клетки pos, относящиеся к фазе.
// Эффекты - чистые данные, всё поведение здесь, в одном switch.
func ResolveEffects(w *domain.GameWorld, pos domain.Position, phase Phase) Outcome {
	var out Outcome
	id := w.EntityRef[pos.Y][pos.X]
	if id == domain.NoneID {
		return out
	}

	// Копия списка: эффекты могут меняться по ходу (выдача Vamp соседям).
	actor := w.Entity(id)
	for _, eff := range actor.Effects.List() {
		if EffectPhase(eff.Kind) != phase {
			continue
		}
		// Жилец мог погибнуть от собственного удара (Wail, Immolate по соседу-вампиру).
		if actor.IsDead() || w.EntityRef[pos.Y][pos.X] != id {
			break
		}
		applyEffect(w, id, pos, eff, &out)
	}

	if len(out.Attacks) > 0 || len(out.Notes) > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "effects",
			"actor":     id,
			"phase":     phase.String(),
			"attacks":   len(out.Attacks),
		}).Debug("Effects resolved.")
	}
	return out
}

func applyEffect(w *domain.GameWorld, id domain.EntityID, pos domain.Position, eff domain.Effect, out *Outcome) {
	actor := w.Entity(id)
	isHero := id == domain.HeroID
	hero := w.HeroPos

	switch eff.Kind {
	case domain.EffectRegen:
		if healed := actor.Heal(eff.Value); healed > 0 {
			out.Notes = append(out.Notes, fmt.Sprintf("%s восстанавливает %d здоровья.", DisplayName(actor), healed))
		}

	case domain.EffectVampAura:
		w.EachNeighbor(pos.X, pos.Y, func(n domain.Position) {
			t := w.EntityAt(n.X, n.Y)
			if !t.IsMonster() || t.IsDead() || t.Effects.Has(domain.EffectVamp) {
				return
			}
			if t.Effects.Add(domain.Vamp) {
				out.Notes = append(out.Notes, fmt.Sprintf("%s жаждет крови.", DisplayName(t)))
			}
		})

	case domain.EffectHowl:
		w.EachInRadius(pos.X, pos.Y, domain.WideRadius, func(n domain.Position) {
			t := w.EntityAt(n.X, n.Y)
			if t.IsMonster() && !t.Active && !t.IsDead() {
				t.Activate()
				out.Notes = append(out.Notes, fmt.Sprintf("%s просыпается от воя.", DisplayName(t)))
			}
		})

	case domain.EffectSword, domain.EffectAxe:
		w.EachNeighbor(pos.X, pos.Y, func(n domain.Position) {
			if w.Open[n.Y][n.X] && w.EntityAt(n.X, n.Y).Level > 0 {
				out.Attacks = append(out.Attacks, ApplyAttack(w, id, n, eff.Value, eff.Kind))
			}
		})

	case domain.EffectDagger:
		for _, off := range domain.NeighborOffsets {
			n := pos.Add(off)
			if !w.InBounds(n.X, n.Y) || !w.Open[n.Y][n.X] || w.EntityAt(n.X, n.Y).Level <= 0 {
				continue
			}
			out.Attacks = append(out.Attacks, ApplyAttack(w, id, n, eff.Value, eff.Kind))
			break
		}

	case domain.EffectMissile:
		if isHero {
			if target, ok := nearestOpenMonster(w, pos, domain.MissileRangeSq); ok {
				out.Attacks = append(out.Attacks, ApplyAttack(w, id, target, eff.Value, eff.Kind))
			}
			return
		}
		if w.HeroPlaced && pos.DistanceSquaredTo(hero) <= domain.MissileRangeSq {
			out.Attacks = append(out.Attacks, ApplyAttack(w, id, hero, eff.Value, eff.Kind))
		}

	case domain.EffectClaw, domain.EffectSpear:
		if !isHero && w.HeroPlaced && pos.DistanceSquaredTo(hero) <= domain.MeleeRangeSq {
			out.Attacks = append(out.Attacks, ApplyAttack(w, id, hero, eff.Value, eff.Kind))
		}

	case domain.EffectWail:
		// Герой (порода 0) и все, у кого нечётный уровень, в квадрате 5x5.
		w.EachInRadius(pos.X, pos.Y, domain.WideRadius, func(n domain.Position) {
			tid := w.EntityRef[n.Y][n.X]
			t := w.Entity(tid)
			if tid == domain.HeroID || (t.IsMonster() && t.Level%2 == 1) {
				out.Attacks = append(out.Attacks, ApplyAttack(w, id, n, eff.Value, eff.Kind))
			}
		})

	case domain.EffectRaze:
		if !isHero && w.HeroPlaced && pos.ChebyshevTo(hero) <= domain.WideRadius {
			out.Attacks = append(out.Attacks, ApplyAttack(w, id, hero, actor.Damage, eff.Kind))
		}

	case domain.EffectImmolate:
		w.EachNeighbor(pos.X, pos.Y, func(n domain.Position) {
			if w.EntityRef[n.Y][n.X] != domain.NoneID {
				out.Attacks = append(out.Attacks, ApplyAttack(w, id, n, eff.Value, eff.Kind))
			}
		})

	case domain.EffectVamp, domain.EffectNone:
		// пассивный маркер
	}
}

// nearestOpenMonster ищет первую открытую живую цель в порядке колец в пределах дальности.
func nearestOpenMonster(w *domain.GameWorld, from domain.Position, rangeSq int) (domain.Position, bool) {
	var found domain.Position
	ok := false
	NewRingWalk(w, from).Each(func(p domain.Position) bool {
		if p.ChebyshevTo(from)*p.ChebyshevTo(from) > rangeSq {
			return false
		}
		t := w.EntityAt(p.X, p.Y)
		if w.Open[p.Y][p.X] && t.IsMonster() && !t.IsDead() && p.DistanceSquaredTo(from) <= rangeSq {
			found, ok = p, true
			return false
		}
		return true
	})
	return found, ok
}

// ClearVamp снимает выданные на прошлом ходу маркеры Vamp со всех сущностей.
func ClearVamp(w *domain.GameWorld) int {
	cleared := 0
	for i := range w.Entities {
		cleared += w.Entities[i].Effects.Remove(domain.EffectVamp)
	}
	return cleared
}
