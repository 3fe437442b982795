package domain

import (
	"fmt"
	"strings"
)

// EffectKind - закрытый набор вариантов эффекта. Поведение живёт в
// интерпретаторе эффектов (systems), здесь только данные.
type EffectKind uint8

const (
	EffectNone EffectKind = iota
	// только герой
	EffectDagger
	EffectSword
	EffectAxe
	// общие
	EffectMissile
	EffectImmolate
	EffectRegen
	// только монстры
	EffectClaw
	EffectHowl
	EffectSpear
	EffectWail
	EffectRaze
	EffectVamp
	EffectVampAura
)

// EffectSlots - ёмкость списка эффектов сущности.
const EffectSlots = 4

var effectKindToString = map[EffectKind]string{
	EffectDagger:   "DAGGER",
	EffectSword:    "SWORD",
	EffectAxe:      "AXE",
	EffectMissile:  "MISSILE",
	EffectImmolate: "IMMOLATE",
	EffectRegen:    "REGEN",
	EffectClaw:     "CLAW",
	EffectHowl:     "HOWL",
	EffectSpear:    "SPEAR",
	EffectWail:     "WAIL",
	EffectRaze:     "RAZE",
	EffectVamp:     "VAMP",
	EffectVampAura: "VAMP_AURA",
}

var stringToEffectKind = func() map[string]EffectKind {
	m := make(map[string]EffectKind, len(effectKindToString))
	for k, s := range effectKindToString {
		m[s] = k
	}
	return m
}()

// ParseEffectKind конвертирует строку в EffectKind (без учёта регистра).
func ParseEffectKind(s string) EffectKind {
	if k, ok := stringToEffectKind[strings.ToUpper(s)]; ok {
		return k
	}
	return EffectNone
}

func (k EffectKind) String() string {
	if s, ok := effectKindToString[k]; ok {
		return s
	}
	return "NONE"
}

// HasValue - несёт ли вариант числовой параметр (урон или лечение).
func (k EffectKind) HasValue() bool {
	switch k {
	case EffectHowl, EffectRaze, EffectVamp, EffectVampAura, EffectNone:
		return false
	}
	return true
}

// Effect - помеченный вариант с параметром.
type Effect struct {
	Kind  EffectKind `json:"kind"`
	Value int        `json:"value,omitempty"`
}

func (e Effect) String() string {
	if e.Kind.HasValue() {
		return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
	}
	return e.Kind.String()
}

func Dagger(dmg int) Effect   { return Effect{Kind: EffectDagger, Value: dmg} }
func Sword(dmg int) Effect    { return Effect{Kind: EffectSword, Value: dmg} }
func Axe(dmg int) Effect      { return Effect{Kind: EffectAxe, Value: dmg} }
func Missile(dmg int) Effect  { return Effect{Kind: EffectMissile, Value: dmg} }
func Immolate(dmg int) Effect { return Effect{Kind: EffectImmolate, Value: dmg} }
func Regen(n int) Effect      { return Effect{Kind: EffectRegen, Value: n} }
func Claw(dmg int) Effect     { return Effect{Kind: EffectClaw, Value: dmg} }
func Spear(dmg int) Effect    { return Effect{Kind: EffectSpear, Value: dmg} }
func Wail(dmg int) Effect     { return Effect{Kind: EffectWail, Value: dmg} }

var (
	Howl     = Effect{Kind: EffectHowl}
	Raze     = Effect{Kind: EffectRaze}
	Vamp     = Effect{Kind: EffectVamp}
	VampAura = Effect{Kind: EffectVampAura}
)

// Effects - список фиксированной ёмкости; пустой слот имеет Kind == EffectNone.
type Effects [EffectSlots]Effect

// NewEffects собирает список из не более чем EffectSlots эффектов.
func NewEffects(list ...Effect) Effects {
	var out Effects
	for _, e := range list {
		out.Add(e)
	}
	return out
}

// Add кладёт эффект в первый пустой слот. false - если места нет.
func (es *Effects) Add(e Effect) bool {
	for i := range es {
		if es[i].Kind == EffectNone {
			es[i] = e
			return true
		}
	}
	return false
}

// Find возвращает первый эффект данного вида.
func (es *Effects) Find(kind EffectKind) (Effect, bool) {
	for _, e := range es {
		if e.Kind == kind {
			return e, true
		}
	}
	return Effect{}, false
}

func (es *Effects) Has(kind EffectKind) bool {
	_, ok := es.Find(kind)
	return ok
}

// Remove очищает все слоты данного вида и возвращает их количество.
func (es *Effects) Remove(kind EffectKind) int {
	n := 0
	for i := range es {
		if es[i].Kind == kind {
			es[i] = Effect{}
			n++
		}
	}
	return n
}

// List возвращает непустые эффекты по порядку слотов.
func (es *Effects) List() []Effect {
	out := make([]Effect, 0, EffectSlots)
	for _, e := range es {
		if e.Kind != EffectNone {
			out = append(out, e)
		}
	}
	return out
}
