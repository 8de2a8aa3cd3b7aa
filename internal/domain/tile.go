package domain

// Tile - неизменяемая запись клетки после загрузки мира.
type Tile struct {
	Tag      TerrainTag `json:"tag"`
	Rotation Rotation   `json:"rotation"`
}

// TileLabel - клетка в сериализованном виде, как она лежит в файле карты.
type TileLabel struct {
	Label      string    `json:"label" jsonschema:"title=Terrain label,description=One of the recognised terrain labels or egg"`
	Rotation   Rotation  `json:"rotation,omitempty" jsonschema:"type=string,enum=Normal,enum=Minus90,enum=Plus90,enum=Opposite,default=Normal,description=Sprite rotation"`
	Subsection [2]uint32 `json:"subsection,omitempty" jsonschema:"description=Atlas subsection of the sprite (defaults to [0 0])"`
}

// MapSize - размеры сетки в файле карты.
type MapSize struct {
	Width  int `json:"width" jsonschema:"minimum=1"`
	Height int `json:"height" jsonschema:"minimum=1"`
}

// MapFile - корневой объект встроенного файла карты. Клетки идут построчно.
type MapFile struct {
	Size  MapSize     `json:"size"`
	Cells []TileLabel `json:"cells" jsonschema:"description=Row-major cells; length must equal width*height"`
}
