package render

import (
	"math"

	"github.com/expenses/snowy/internal/domain"
)

// Instance - один квадрат спрайта для инстансной отрисовки.
// Координаты уже в пространстве экрана (пиксели от центра окна).
type Instance struct {
	Center     [2]float32 `json:"center"`
	Dimensions [2]float32 `json:"dimensions"` // половина стороны квадрата
	Rotation   float32    `json:"rotation"`   // радианы
	UVTopLeft  [2]float32 `json:"uvTopLeft"`
	Overlay    [4]float32 `json:"overlay"` // RGBA затемнения
}

// BufferRenderer копит инструкции отрисовки за кадр.
// Потребитель забирает их одной пачкой через Flush на границе кадра.
type BufferRenderer struct {
	instances []Instance
}

func NewBufferRenderer() *BufferRenderer {
	return &BufferRenderer{instances: make([]Instance, 0, 256)}
}

// Render добавляет спрайт img в клетку tile с учетом камеры.
func (b *BufferRenderer) Render(tile domain.Vec2, rotationDeg float32, img domain.Image, cam domain.Camera, overlay [4]float32) {
	b.instances = append(b.instances, Project(tile, rotationDeg, img, cam, overlay))
}

// Project переводит клетку мира в экранный инстанс.
// Ось X экрана смотрит в ту же сторону, что и в мире, ось Y - в обратную.
func Project(tile domain.Vec2, rotationDeg float32, img domain.Image, cam domain.Camera, overlay [4]float32) Instance {
	u, v := img.AtlasCoords()
	return Instance{
		Center: [2]float32{
			-(cam.Position.X - tile.X) * cam.Zoom,
			(cam.Position.Y - tile.Y) * cam.Zoom,
		},
		Dimensions: [2]float32{0.5 * cam.Zoom, 0.5 * cam.Zoom},
		Rotation:   rotationDeg * math.Pi / 180,
		UVTopLeft:  [2]float32{float32(u) / domain.AtlasSize, float32(v) / domain.AtlasSize},
		Overlay:    overlay,
	}
}

// Len - сколько инструкций накоплено с последнего Flush.
func (b *BufferRenderer) Len() int {
	return len(b.instances)
}

// Flush отдает накопленный кадр и очищает буфер.
// Возвращаемый слайс принадлежит вызывающему.
func (b *BufferRenderer) Flush() []Instance {
	out := make([]Instance, len(b.instances))
	copy(out, b.instances)
	b.instances = b.instances[:0]
	return out
}
