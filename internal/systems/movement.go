package systems

import (
	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/grid"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewPos      grid.Coord
	Accepted    bool                  // Ход засчитан (шаг или пропуск хода)
	OutOfBounds bool                  // Шаг за край карты
	IsWall      bool                  // Поверхность непроходима
	BlockedBy   *domain.DynamicEntity // Если врезались в сущность
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
func CalculateMove(pos grid.Coord, dir domain.Direction, tiles *grid.Grid[domain.Tile], entities []domain.DynamicEntity) MovementResult {
	// Пропуск хода разрешен всегда
	if dir == domain.StandStill {
		return MovementResult{NewPos: pos, Accepted: true}
	}
	if !dir.Valid() {
		return MovementResult{NewPos: pos}
	}

	target := pos.Add(dir.Delta())
	res := MovementResult{NewPos: target}

	// 1. Проверка границ
	tile, ok := tiles.Get(target)
	if !ok {
		res.OutOfBounds = true
		return res
	}

	// 2. Проверка поверхности
	if tile.Tag.BlocksMovement() {
		res.IsWall = true
		return res
	}

	// 3. Проверка сущностей (линейный проход, сущностей мало)
	for i := range entities {
		if entities[i].Occupies(target) {
			res.BlockedBy = &entities[i]
			return res
		}
	}

	res.Accepted = true
	return res
}
