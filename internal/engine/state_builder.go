package engine

import (
	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/render"
	"github.com/expenses/snowy/pkg/api"
)

// Типы сообщений сервера
const (
	MsgTypeInit   = "INIT"
	MsgTypeUpdate = "UPDATE"
)

// BuildState создает "снимок" мира для клиента: исследованные тайлы,
// сущности на видимых клетках и готовый кадр из буфера отрисовки.
func BuildState(sim *Simulation, buf *render.BufferRenderer, msgType string, accepted bool) *api.ServerResponse {
	tiles := sim.Tiles()
	vis := sim.Visibility()

	// 1. Карта: только то, что игрок когда-либо видел
	var mapDTO []api.TileView
	for c, v := range vis.All() {
		if !v.Explored() {
			continue
		}
		tile := tiles.GetChecked(c)
		mapDTO = append(mapDTO, api.TileView{
			X:          c.X,
			Y:          c.Y,
			Terrain:    tile.Tag.String(),
			Rotation:   tile.Rotation.Degrees(),
			IsWall:     tile.Tag.BlocksMovement(),
			IsVisible:  *v == domain.Visible,
			IsExplored: true,
		})
	}

	// 2. Сущности: только на видимых сейчас клетках
	var viewEntities []api.EntityView
	for e := range sim.Entities() {
		if vis.GetChecked(e.Pos) != domain.Visible {
			continue
		}
		viewEntities = append(viewEntities, toEntityView(e))
	}

	// 3. Кадр
	render.DrawScene(sim, buf)
	frame := buf.Flush()
	draw := make([]api.DrawInstance, len(frame))
	for i, inst := range frame {
		draw[i] = api.DrawInstance{
			Center:     inst.Center,
			Dimensions: inst.Dimensions,
			Rotation:   inst.Rotation,
			UV:         inst.UVTopLeft,
			Overlay:    inst.Overlay,
		}
	}

	cam := sim.Camera()
	pos := sim.PlayerPos()

	return &api.ServerResponse{
		Type:     msgType,
		Turn:     sim.Turn(),
		Accepted: accepted,
		Grid:     &api.GridMeta{Width: tiles.Width(), Height: tiles.Height()},
		Map:      mapDTO,
		Entities: viewEntities,
		Player:   api.PositionView{X: pos.X, Y: pos.Y},
		Camera:   api.CameraView{X: cam.Position.X, Y: cam.Position.Y, Zoom: cam.Zoom},
		Draw:     draw,
	}
}

// toEntityView конвертирует доменную сущность в DTO для отправки клиенту.
func toEntityView(e domain.DynamicEntity) api.EntityView {
	return api.EntityView{
		ID:      uint32(e.ID),
		Image:   e.Image.String(),
		Pos:     api.PositionView{X: e.Pos.X, Y: e.Pos.Y},
		Counter: int(e.Counter),
	}
}
