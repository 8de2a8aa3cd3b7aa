package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/grid"
)

// DecodeMap разбирает встроенный файл карты в сетку меток.
// Любая ошибка тут фатальна: карта зашита в бинарник при сборке.
func DecodeMap(data []byte) (*grid.Grid[domain.TileLabel], error) {
	var file domain.MapFile

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedMap, err)
	}
	// После корневого объекта допускаются только пробелы
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after map object", domain.ErrMalformedMap)
	}

	if file.Size.Width <= 0 || file.Size.Height <= 0 {
		return nil, fmt.Errorf("%w: empty map %dx%d", domain.ErrMalformedMap, file.Size.Width, file.Size.Height)
	}

	labels, err := grid.FromCells(file.Size.Width, file.Size.Height, file.Cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedMap, err)
	}
	return labels, nil
}

// LoadWorld превращает сетку меток в сетку тайлов за один проход.
// Метка "egg" по ходу дела регистрирует яйцо и дает под ним слизь.
// Неизвестная метка прерывает загрузку: частично собранный мир выбрасывается.
func LoadWorld(labels *grid.Grid[domain.TileLabel]) (*grid.Grid[domain.Tile], []domain.DynamicEntity, error) {
	var entities []domain.DynamicEntity
	var loadErr error

	tiles := grid.MapWithCoord(labels, func(c grid.Coord, label *domain.TileLabel) domain.Tile {
		if loadErr != nil {
			return domain.Tile{}
		}

		if label.Label == domain.LabelEgg {
			id := domain.EntityID(len(entities) + 1)
			entities = append(entities, domain.NewEgg(id, c))
			return domain.Tile{Tag: domain.TerrainGoop, Rotation: label.Rotation}
		}

		tag, ok := domain.ParseTerrainLabel(label.Label)
		if !ok {
			loadErr = fmt.Errorf("%w %q at %v", domain.ErrUnknownTerrain, label.Label, c)
			return domain.Tile{}
		}
		return domain.Tile{Tag: tag, Rotation: label.Rotation}
	})

	if loadErr != nil {
		return nil, nil, loadErr
	}
	return tiles, entities, nil
}

// MapChecksum - отпечаток файла карты, чтобы реплей не проигрывался на чужой карте.
func MapChecksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
