package dungeon

import (
	"github.com/daimeng/gloamwood/internal/domain"
)

// CreateHero создаёт героя со стартовым снаряжением.
// Дополнительные эффекты (Sword, Axe) кладутся в свободные слоты.
func CreateHero(extra ...domain.Effect) domain.Entity {
	h := Hero.Spawn()
	h.Active = true
	for _, e := range extra {
		h.Effects.Add(e)
	}
	return h
}

// NewWorld выделяет сетку с героем из каталога.
func NewWorld(width, height int) *domain.GameWorld {
	return domain.NewGameWorld(width, height, CreateHero())
}
