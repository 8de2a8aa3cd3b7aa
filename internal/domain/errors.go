package domain

import "errors"

var (
	// ErrUnknownTerrain - метка клетки не из известного набора.
	ErrUnknownTerrain = errors.New("unknown terrain label")
	// ErrMalformedMap - файл карты не разбирается или сетка не прямоугольная.
	ErrMalformedMap = errors.New("malformed world map")
)
