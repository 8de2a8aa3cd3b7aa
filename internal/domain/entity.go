package domain

import "github.com/expenses/snowy/internal/grid"

// EntityID - порядковый номер динамической сущности, уникален в пределах мира.
type EntityID uint32

// DynamicEntity - предмет или опасность на карте (например, яйцо).
// Живёт в мире, пока счётчик не дойдёт до нуля.
type DynamicEntity struct {
	ID             EntityID   `json:"id"`
	Pos            grid.Coord `json:"pos"`
	Image          Image      `json:"image"`
	BlocksMovement bool       `json:"blocksMovement"`
	Counter        uint8      `json:"counter"` // ходов до исчезновения
}

// NewEgg создает яйцо с полным сроком жизни. Через яйцо нельзя пройти.
func NewEgg(id EntityID, pos grid.Coord) DynamicEntity {
	return DynamicEntity{
		ID:             id,
		Pos:            pos,
		Image:          ImageEgg,
		BlocksMovement: true,
		Counter:        EggLifetime,
	}
}

// Tick уменьшает счётчик. Возвращает true, если сущность пора убрать.
func (e *DynamicEntity) Tick() bool {
	if e.Counter == 0 {
		return true
	}
	e.Counter--
	return e.Counter == 0
}

// Occupies - занимает ли сущность клетку для проверки движения
func (e *DynamicEntity) Occupies(c grid.Coord) bool {
	return e.BlocksMovement && e.Pos == c
}
