package handlers

import (
	"encoding/json"

	"github.com/expenses/snowy/internal/domain"
)

// WorldController описывает операции над миром, доступные хендлерам.
// Simulation неявно реализует этот интерфейс.
type WorldController interface {
	TryToMovePlayer(dir domain.Direction) bool
	RunTurn()
	ZoomCamera(in bool)
	PanCamera(dir domain.Direction)
}

// Context передает хендлеру мир и того, кто прислал команду.
type Context struct {
	World   WorldController
	Session string
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Accepted     bool             // команда принята (для шага: игрок сдвинулся или стоял)
	TurnAdvanced bool             // был прогнан конвейер хода
	Direction    domain.Direction // попытка шага, для записи реплея
	Msg          string           // Текст лога
}

// HandlerFunc - это контракт для любой команды (MOVE, ZOOM, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{Accepted: true}
}
