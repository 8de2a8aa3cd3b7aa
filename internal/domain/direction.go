package domain

import (
	"strings"

	"github.com/expenses/snowy/internal/grid"
)

// Direction - направление шага игрока. StandStill - пропуск хода.
type Direction uint8

const (
	DirectionUnknown Direction = iota
	Up
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
	StandStill
)

// Маппинг для конвертации JSON -> Domain
var directionStringToDir = map[string]Direction{
	"UP":          Up,
	"DOWN":        Down,
	"LEFT":        Left,
	"RIGHT":       Right,
	"UP_LEFT":     UpLeft,
	"UP_RIGHT":    UpRight,
	"DOWN_LEFT":   DownLeft,
	"DOWN_RIGHT":  DownRight,
	"STAND_STILL": StandStill,
}

// Маппинг для логов Domain -> String
var directionDirToString = map[Direction]string{
	Up:         "UP",
	Down:       "DOWN",
	Left:       "LEFT",
	Right:      "RIGHT",
	UpLeft:     "UP_LEFT",
	UpRight:    "UP_RIGHT",
	DownLeft:   "DOWN_LEFT",
	DownRight:  "DOWN_RIGHT",
	StandStill: "STAND_STILL",
}

// ParseDirection конвертирует строку из JSON в Direction
func ParseDirection(s string) Direction {
	upper := strings.ToUpper(s)
	if val, ok := directionStringToDir[upper]; ok {
		return val
	}
	return DirectionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (d Direction) String() string {
	if val, ok := directionDirToString[d]; ok {
		return val
	}
	return "UNKNOWN"
}

// Delta возвращает единичный (или нулевой) сдвиг. Ось Y смотрит вниз.
func (d Direction) Delta() grid.Coord {
	switch d {
	case Up:
		return grid.Coord{X: 0, Y: -1}
	case Down:
		return grid.Coord{X: 0, Y: 1}
	case Left:
		return grid.Coord{X: -1, Y: 0}
	case Right:
		return grid.Coord{X: 1, Y: 0}
	case UpLeft:
		return grid.Coord{X: -1, Y: -1}
	case UpRight:
		return grid.Coord{X: 1, Y: -1}
	case DownLeft:
		return grid.Coord{X: -1, Y: 1}
	case DownRight:
		return grid.Coord{X: 1, Y: 1}
	default:
		return grid.Coord{}
	}
}

// Valid - одно из девяти известных направлений.
func (d Direction) Valid() bool {
	return d >= Up && d <= StandStill
}
