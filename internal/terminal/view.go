package terminal

import (
	"math"

	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/grid"
	"github.com/expenses/snowy/internal/render"
)

// Frame - содержимое экрана в ячейках, построчно
type Frame struct {
	Width, Height int
	Cells         []Glyph
}

func newFrame(w, h int) *Frame {
	cells := make([]Glyph, w*h)
	for i := range cells {
		cells[i] = GlyphEmpty
	}
	return &Frame{Width: w, Height: h, Cells: cells}
}

func (f *Frame) At(x, y int) Glyph {
	return f.Cells[y*f.Width+x]
}

func (f *Frame) set(x, y int, g Glyph) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Cells[y*f.Width+x] = g
}

// Viewport переводит клетки мира в ячейки экрана. Центр экрана - позиция камеры.
// Одна ячейка - одна клетка при масштабе по умолчанию; масштаб меняет шаг.
type Viewport struct {
	Width, Height int
	Camera        domain.Camera
}

func (v Viewport) scale() float64 {
	if v.Camera.Zoom <= 0 {
		return 1
	}
	return float64(v.Camera.Zoom) / float64(domain.DefaultCameraZoom)
}

// ToScreen возвращает ячейку экрана для клетки мира
func (v Viewport) ToScreen(c grid.Coord) (int, int) {
	s := v.scale()
	sx := (float64(c.X)-float64(v.Camera.Position.X))*s + float64(v.Width/2)
	sy := (float64(c.Y)-float64(v.Camera.Position.Y))*s + float64(v.Height/2)
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// Compose рисует сцену в кадр в том же порядке слоев, что и render.DrawScene:
// карта, предметы на видимых клетках, игрок.
func Compose(scene render.Scene, w, h int) *Frame {
	f := newFrame(w, h)
	vp := Viewport{Width: w, Height: h, Camera: scene.Camera()}
	vis := scene.Visibility()

	// 1. Карта
	for c, tile := range scene.Tiles().All() {
		x, y := vp.ToScreen(c)
		f.set(x, y, TerrainGlyph(tile.Tag, vis.GetChecked(c)))
	}

	// 2. Предметы
	for e := range scene.Entities() {
		if vis.GetChecked(e.Pos) != domain.Visible {
			continue
		}
		x, y := vp.ToScreen(e.Pos)
		f.set(x, y, EntityGlyph(e.Image))
	}

	// 3. Игрок
	x, y := vp.ToScreen(scene.PlayerPos())
	f.set(x, y, GlyphPlayer)

	return f
}
