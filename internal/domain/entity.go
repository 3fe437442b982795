package domain

import "strings"

// Breed - идентификатор архетипа: -1 пусто, 0 герой, 1..9 ярусы монстров.
type Breed int16

const (
	BreedNone Breed = iota - 1
	BreedHero
	BreedWolf
	BreedBoney
	BreedSaurian
	BreedVampire
	BreedDweomer
	BreedBanshee
	BreedGoyle
	BreedLich
	BreedDragon
)

// BreedCount - размер таблицы пород без стража (0..9).
const BreedCount = 10

var breedToString = map[Breed]string{
	BreedNone:    "gloamling",
	BreedHero:    "hero",
	BreedWolf:    "wolf",
	BreedBoney:   "boney",
	BreedSaurian: "saurian",
	BreedVampire: "vampire",
	BreedDweomer: "dweomer",
	BreedBanshee: "banshee",
	BreedGoyle:   "goyle",
	BreedLich:    "lich",
	BreedDragon:  "dragon",
}

var stringToBreed = func() map[string]Breed {
	m := make(map[string]Breed, len(breedToString))
	for b, s := range breedToString {
		m[s] = b
	}
	return m
}()

// ParseBreed конвертирует имя породы в Breed. Неизвестное имя - BreedNone.
func ParseBreed(s string) Breed {
	if b, ok := stringToBreed[strings.ToLower(s)]; ok {
		return b
	}
	return BreedNone
}

func (b Breed) String() string {
	if s, ok := breedToString[b]; ok {
		return s
	}
	return "unknown"
}

// Entity - запись хранилища. Копируется из каталога при спавне.
type Entity struct {
	Breed   Breed   `json:"breed"`
	Level   int     `json:"level"` // вклад в ауру
	HP      int     `json:"hp"`
	MaxHP   int     `json:"maxHp"`
	Damage  int     `json:"damage"`
	Active  bool    `json:"active"` // true с первого открытия клетки, обратно не сбрасывается
	Effects Effects `json:"effects"`
}

// NoneEntity - страж пустой клетки (ID 0).
var NoneEntity = Entity{
	Breed: BreedNone,
	Level: 0,
	HP:    999,
	MaxHP: 999,
}

// IsMonster - монстр (порода 1..9), а не герой и не страж.
func (e *Entity) IsMonster() bool {
	return e.Breed > BreedHero
}

// IsHostile - монстр, который может действовать (открыт и жив).
func (e *Entity) IsHostile() bool {
	return e.IsMonster() && e.Active && e.Level > 0 && e.HP >= 1
}

// Activate помечает сущность активной. Монотонно.
func (e *Entity) Activate() {
	e.Active = true
}

// Name - имя породы для логов.
func (e *Entity) Name() string {
	return e.Breed.String()
}
