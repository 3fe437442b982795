package dungeon

import (
	"github.com/daimeng/gloamwood/internal/domain"
)

// EntityTemplate определяет архетип сущности в каталоге
type EntityTemplate struct {
	Breed       domain.Breed
	Name        string
	Glyph       rune
	Level       int
	HP          int
	Damage      int
	Effects     []domain.Effect
	Description string
}

// Spawn копирует шаблон в новую запись хранилища (вместе со списком эффектов).
func (t EntityTemplate) Spawn() domain.Entity {
	return domain.Entity{
		Breed:   t.Breed,
		Level:   t.Level,
		HP:      t.HP,
		MaxHP:   t.HP,
		Damage:  t.Damage,
		Effects: domain.NewEffects(t.Effects...),
	}
}

// --- ГЕРОЙ ---

var Hero = EntityTemplate{
	Breed:       domain.BreedHero,
	Name:        "Странник",
	Glyph:       '@',
	Level:       0,
	HP:          30,
	Damage:      2,
	Effects:     []domain.Effect{domain.Dagger(2), domain.Regen(1)},
	Description: "Путник с кинжалом, забредший в сумеречный лес.",
}

// --- МОНСТРЫ ---
// Ярус i: уровень i, здоровье i.

var Wolf = EntityTemplate{
	Breed: domain.BreedWolf, Name: "Волк", Glyph: 'w',
	Level: 1, HP: 1, Damage: 1,
	Effects:     []domain.Effect{domain.Claw(1), domain.Howl},
	Description: "Воет и будит стаю.",
}

var Boney = EntityTemplate{
	Breed: domain.BreedBoney, Name: "Костяк", Glyph: 'b',
	Level: 2, HP: 2, Damage: 1,
	Effects:     []domain.Effect{domain.Spear(1)},
	Description: "Скелет с ржавым копьём.",
}

var Saurian = EntityTemplate{
	Breed: domain.BreedSaurian, Name: "Ящер", Glyph: 's',
	Level: 3, HP: 3, Damage: 2,
	Effects:     []domain.Effect{domain.Claw(2)},
	Description: "Болотный ящер.",
}

var Vampire = EntityTemplate{
	Breed: domain.BreedVampire, Name: "Вампир", Glyph: 'v',
	Level: 4, HP: 4, Damage: 2,
	Effects:     []domain.Effect{domain.Claw(2), domain.VampAura},
	Description: "Делится жаждой крови с соседями.",
}

var Dweomer = EntityTemplate{
	Breed: domain.BreedDweomer, Name: "Чародей", Glyph: 'd',
	Level: 5, HP: 5, Damage: 2,
	Effects:     []domain.Effect{domain.Missile(2), domain.Regen(1)},
	Description: "Бьёт издалека и затягивает раны.",
}

var Banshee = EntityTemplate{
	Breed: domain.BreedBanshee, Name: "Банши", Glyph: 'B',
	Level: 6, HP: 6, Damage: 3,
	Effects:     []domain.Effect{domain.Wail(3)},
	Description: "Её вопль ранит героя и всех нечётных.",
}

var Goyle = EntityTemplate{
	Breed: domain.BreedGoyle, Name: "Гойл", Glyph: 'G',
	Level: 7, HP: 7, Damage: 3,
	Effects:     []domain.Effect{domain.Claw(3), domain.Regen(1)},
	Description: "Каменная горгулья.",
}

var Lich = EntityTemplate{
	Breed: domain.BreedLich, Name: "Лич", Glyph: 'L',
	Level: 8, HP: 8, Damage: 4,
	Effects:     []domain.Effect{domain.Missile(4), domain.VampAura, domain.Howl},
	Description: "Поднимает мёртвых и пьёт чужую жизнь.",
}

var Dragon = EntityTemplate{
	Breed: domain.BreedDragon, Name: "Дракон", Glyph: 'D',
	Level: 9, HP: 9, Damage: 5,
	Effects:     []domain.Effect{domain.Claw(5), domain.Immolate(2), domain.Raze},
	Description: "Выжигает всё в пяти шагах.",
}

// Monsters - каталог, индекс = порода (0 - герой).
var Monsters = [domain.BreedCount]EntityTemplate{
	Hero, Wolf, Boney, Saurian, Vampire, Dweomer, Banshee, Goyle, Lich, Dragon,
}

// Template возвращает шаблон породы. ok == false для стража и неизвестных пород.
func Template(b domain.Breed) (EntityTemplate, bool) {
	if b < domain.BreedHero || int(b) >= len(Monsters) {
		return EntityTemplate{}, false
	}
	return Monsters[b], true
}

// SpawnMonster создаёт монстра породы b. Для неизвестной породы - страж.
func SpawnMonster(b domain.Breed) domain.Entity {
	t, ok := Template(b)
	if !ok {
		return domain.NoneEntity
	}
	return t.Spawn()
}
