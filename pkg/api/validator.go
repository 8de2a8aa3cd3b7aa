package api

import (
	"errors"
	"fmt"

	"github.com/expenses/snowy/internal/domain"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Direction == "" {
		return errors.New("direction is required")
	}
	if domain.ParseDirection(p.Direction) == domain.DirectionUnknown {
		return fmt.Errorf("unknown direction %q", p.Direction)
	}
	return nil
}
