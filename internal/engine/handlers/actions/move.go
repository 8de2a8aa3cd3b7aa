package actions

import (
	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/engine/handlers"
	"github.com/expenses/snowy/pkg/api"
)

// HandleMove пробует сдвинуть игрока. Ход прогоняется только при успехе,
// отклоненный шаг мир не меняет.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	dir := domain.ParseDirection(p.Direction)

	if !ctx.World.TryToMovePlayer(dir) {
		return handlers.Result{Direction: dir}, nil
	}

	ctx.World.RunTurn()
	return handlers.Result{Accepted: true, TurnAdvanced: true, Direction: dir}, nil
}
