package actions

import (
	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/engine/handlers"
	"github.com/expenses/snowy/pkg/api"
)

// HandleZoom меняет масштаб. Камера ход не двигает.
func HandleZoom(ctx handlers.Context, p api.ZoomPayload) (handlers.Result, error) {
	ctx.World.ZoomCamera(p.In)
	return handlers.EmptyResult(), nil
}

// HandlePan двигает камеру на один шаг.
func HandlePan(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	ctx.World.PanCamera(domain.ParseDirection(p.Direction))
	return handlers.EmptyResult(), nil
}
