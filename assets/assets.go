// Package assets хранит данные, вшитые в бинарник при сборке.
package assets

import _ "embed"

// WorldMap - карта по умолчанию. Формат описан схемой из cmd/mapschema.
//
//go:embed world.json
var WorldMap []byte
