package grid

import "fmt"

// Coord - целочисленная координата клетки. Границ не знает,
// валидность проверяет конкретная сетка.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add возвращает сумму координат (сдвиг на вектор).
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Distance2 возвращает квадрат евклидова расстояния, чтобы сравнивать без корней
func (c Coord) Distance2(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	return dx*dx + dy*dy
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
