package render

import (
	"iter"

	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/grid"
)

// Scene - всё, что рендер читает из мира. Только чтение.
type Scene interface {
	Tiles() *grid.Grid[domain.Tile]
	Visibility() *grid.Grid[domain.Visibility]
	Camera() domain.Camera
	PlayerPos() grid.Coord
	Entities() iter.Seq[domain.DynamicEntity]
}

// DrawScene рисует кадр в фиксированном порядке: карта, предметы, игрок.
func DrawScene(scene Scene, b *BufferRenderer) {
	cam := scene.Camera()
	RenderMap(scene.Tiles(), scene.Visibility(), cam, b)
	RenderItems(scene.Entities(), scene.Visibility(), cam, b)
	RenderPlayer(scene.PlayerPos(), cam, b)
}

// RenderMap рисует все клетки, которые хоть раз видели, с затемнением по видимости.
func RenderMap(tiles *grid.Grid[domain.Tile], vis *grid.Grid[domain.Visibility], cam domain.Camera, b *BufferRenderer) {
	for c, tile := range tiles.All() {
		v := vis.GetChecked(c)
		if v == domain.Invisible {
			continue
		}
		b.Render(toVec(c), tile.Rotation.Degrees(), tile.Tag.Image(), cam, v.Overlay())
	}
}

// RenderItems рисует сущности только на клетках, видимых прямо сейчас.
func RenderItems(entities iter.Seq[domain.DynamicEntity], vis *grid.Grid[domain.Visibility], cam domain.Camera, b *BufferRenderer) {
	for e := range entities {
		v := vis.GetChecked(e.Pos)
		if v != domain.Visible {
			continue
		}
		b.Render(toVec(e.Pos), 0, e.Image, cam, v.Overlay())
	}
}

func RenderPlayer(pos grid.Coord, cam domain.Camera, b *BufferRenderer) {
	b.Render(toVec(pos), 0, domain.ImagePerson, cam, [4]float32{})
}

func toVec(c grid.Coord) domain.Vec2 {
	return domain.Vec2{X: float32(c.X), Y: float32(c.Y)}
}
