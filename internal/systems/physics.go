package systems

import (
	"iter"

	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/grid"
)

// HasLineOfSight проверяет прямую видимость между двумя точками.
// Проверяются клетки строго между from и to, ИСКЛЮЧАЯ стартовую и конечную:
// стена под наблюдателем не прячет его собственную клетку.
// Обе точки должны лежать в сетке, тогда и весь отрезок в ней.
func HasLineOfSight(tiles *grid.Grid[domain.Tile], from, to grid.Coord) bool {
	first := true
	for c := range Line(from, to) {
		if first {
			first = false
			continue
		}
		if c == to {
			break
		}
		if tiles.GetChecked(c).Tag.BlocksSight() {
			return false
		}
	}
	return true
}

// Line растеризует отрезок по Брезенхему, включая оба конца.
// Все точки лежат в прямоугольнике между from и to.
func Line(from, to grid.Coord) iter.Seq[grid.Coord] {
	return func(yield func(grid.Coord) bool) {
		dx := abs(to.X - from.X)
		dy := -abs(to.Y - from.Y)
		sx, sy := 1, 1
		if from.X > to.X {
			sx = -1
		}
		if from.Y > to.Y {
			sy = -1
		}

		err := dx + dy
		x, y := from.X, from.Y
		for {
			if !yield(grid.Coord{X: x, Y: y}) {
				return
			}
			if x == to.X && y == to.Y {
				return
			}
			e2 := 2 * err
			if e2 >= dy {
				err += dy
				x += sx
			}
			if e2 <= dx {
				err += dx
				y += sy
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
