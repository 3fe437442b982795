package domain

// Метки игрока
const (
	MaxFlag = 9
)

// Дальности атак (квадрат евклидова расстояния) и радиусы областей (Чебышев)
const (
	MeleeRangeSq   = 2 // соседняя клетка, включая диагональ
	MissileRangeSq = 9
	WideRadius     = 2 // квадрат 5x5: вой, рёв, сожжение
)
