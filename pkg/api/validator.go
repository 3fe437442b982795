package api

import "errors"

// MaxFlag - максимальное значение метки игрока.
const MaxFlag = 9

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

// Координаты вне карты не ошибка: ядро молча игнорирует их.
func (p FlagPayload) Validate() error {
	if p.Value < 0 || p.Value > MaxFlag {
		return errors.New("flag value must be within 0..9")
	}
	return nil
}
