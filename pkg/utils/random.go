package utils

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GenerateID создает уникальный идентификатор сессии.
func GenerateID() string {
	return uuid.NewString()
}

// ShortID возвращает первые 8 символов ID для логов и подписей.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// NewSeed возвращает зерно от настенных часов.
func NewSeed() int64 {
	return time.Now().UnixNano()
}

// NewRand создает детерминированный генератор для заданного зерна.
// Тесты передают фиксированное зерно, чтобы раскладка монстров повторялась.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
