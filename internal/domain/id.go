package domain

import "strconv"

// EntityID - индекс в хранилище сущностей. Сетка держит только эти
// невладеющие ручки; хранилище владеет всеми записями.
type EntityID uint32

// Зарезервированные записи хранилища. Никогда не переназначаются.
const (
	NoneID EntityID = 0
	HeroID EntityID = 1
)

// String для логов: #12
func (id EntityID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}
