package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/expenses/snowy/pkg/api"
)

// ErrMissingPayload - команда MOVE/ZOOM/PAN пришла без тела
var ErrMissingPayload = errors.New("command payload is missing")

// TypedHandlerFunc работает с уже разобранным телом команды.
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - для команд без тела (INIT, WAIT).
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload разбирает тело команды в T и, если T умеет, проверяет его
// через api.Validator. До симуляции доходят только корректные команды.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		if len(raw) == 0 || string(raw) == "null" {
			return Result{}, ErrMissingPayload
		}

		var payload T
		if err := json.Unmarshal(raw, &payload); err != nil {
			return Result{}, fmt.Errorf("decode %T: %w", payload, err)
		}

		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("bad %T: %w", payload, err)
			}
		}

		return handler(ctx, payload)
	}
}

// WithEmptyPayload игнорирует тело: шум в payload для INIT/WAIT не ошибка.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}
