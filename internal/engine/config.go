package engine

import (
	"errors"
	"fmt"

	"github.com/daimeng/gloamwood/pkg/dungeon"
	"github.com/daimeng/gloamwood/pkg/utils"
)

// ErrInvalidConfig возвращается, если параметры партии невозможны.
var ErrInvalidConfig = errors.New("invalid config")

// Config хранит параметры запуска партии
type Config struct {
	// Seed - мастер-зерно. От него зависят рельеф и расстановка монстров.
	Seed     int64
	Width    int
	Height   int
	Mines    int
	Fissures int
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:     utils.NewSeed(),
		Width:    dungeon.MapWidth,
		Height:   dungeon.MapHeight,
		Mines:    dungeon.MapMines,
		Fissures: dungeon.DefaultFissures,
	}
}

// Validate проверяет размеры поля и число мин.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Mines < 0 || c.Mines > c.Width*c.Height {
		return fmt.Errorf("%w: %d mines on %d tiles", ErrInvalidConfig, c.Mines, c.Width*c.Height)
	}
	if c.Fissures < 0 {
		return fmt.Errorf("%w: negative fissure count %d", ErrInvalidConfig, c.Fissures)
	}
	return nil
}
