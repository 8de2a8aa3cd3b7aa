package actions

import (
	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/engine/handlers"
)

// HandleWait - пропуск хода. Игрок стоит, мир стареет на один ход.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	ctx.World.TryToMovePlayer(domain.StandStill)
	ctx.World.RunTurn()

	return handlers.Result{
		Accepted:     true,
		TurnAdvanced: true,
		Direction:    domain.StandStill,
	}, nil
}
