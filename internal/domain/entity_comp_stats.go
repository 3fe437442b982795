package domain

// TakeDamage наносит урон. Возвращает true, если цель погибла этим ударом.
func (e *Entity) TakeDamage(amount int) bool {
	if e.HP < 1 {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	e.HP -= amount
	return e.HP < 1
}

// Heal лечит сущность, не выше MaxHP. Возвращает сколько реально вылечено.
func (e *Entity) Heal(amount int) int {
	if e.HP < 1 || amount <= 0 {
		return 0 // Не лечим трупы!
	}
	before := e.HP
	e.HP += amount
	if e.HP > e.MaxHP {
		e.HP = e.MaxHP
	}
	return e.HP - before
}

// IsDead - hp < 1.
func (e *Entity) IsDead() bool {
	return e.HP < 1
}
