package actions

import (
	"github.com/expenses/snowy/internal/engine/handlers"
)

// HandleInit ничего не меняет: клиенту просто нужен полный снимок мира.
func HandleInit(_ handlers.Context) (handlers.Result, error) {
	return handlers.Result{Accepted: true, Msg: "Welcome to the snow."}, nil
}
