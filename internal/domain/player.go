package domain

import "github.com/expenses/snowy/internal/grid"

// Player - единственный персонаж, которым управляет человек.
type Player struct {
	Pos grid.Coord `json:"pos"`
}

// Vec2 - точка в мировых (дробных) координатах.
type Vec2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Camera - состояние для отрисовки. Ядро его не проверяет, только хранит.
type Camera struct {
	Position Vec2    `json:"position"`
	Zoom     float32 `json:"zoom"` // пикселей на клетку
}

// NewCamera создает камеру в начале координат.
func NewCamera(zoom float32) Camera {
	return Camera{Zoom: zoom}
}

func (c *Camera) ZoomIn() {
	c.Zoom *= CameraZoomStep
}

func (c *Camera) ZoomOut() {
	c.Zoom /= CameraZoomStep
}

// Pan сдвигает камеру на один шаг. Чем крупнее масштаб, тем короче шаг.
func (c *Camera) Pan(dir Direction) {
	if c.Zoom == 0 {
		return
	}
	speed := CameraPanSpeed / c.Zoom
	d := dir.Delta()
	c.Position.X += float32(d.X) * speed
	c.Position.Y += float32(d.Y) * speed
}
