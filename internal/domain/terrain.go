package domain

// TerrainTag - тип поверхности клетки. Закрытый набор значений.
type TerrainTag uint8

const (
	TerrainGround TerrainTag = iota
	TerrainRocks
	TerrainCaveEntrance
	TerrainCave
	TerrainCaveWall
	TerrainGoop
	TerrainSnowyGround
	TerrainWaterCorner
	TerrainWaterEdge
	TerrainWater
	TerrainWaterInnerCorner
)

// Метки в файле карты. Написание "cave_enterance" унаследовано от ассетов.
const (
	LabelGround           = "ground"
	LabelRocks            = "rocks"
	LabelCaveEntrance     = "cave_enterance"
	LabelCave             = "cave"
	LabelCaveWall         = "cave_wall"
	LabelGoop             = "goop"
	LabelEgg              = "egg"
	LabelSnowyGround      = "snowy_ground"
	LabelWaterCorner      = "water_corner"
	LabelWaterEdge        = "water_edge"
	LabelWater            = "water"
	LabelWaterInnerCorner = "water_inner_corner"
)

// Маппинг метка -> тег. Яйцо сюда не входит: это сущность поверх слизи,
// его разбирает загрузчик мира.
var terrainLabels = map[string]TerrainTag{
	LabelGround:           TerrainGround,
	LabelRocks:            TerrainRocks,
	LabelCaveEntrance:     TerrainCaveEntrance,
	LabelCave:             TerrainCave,
	LabelCaveWall:         TerrainCaveWall,
	LabelGoop:             TerrainGoop,
	LabelSnowyGround:      TerrainSnowyGround,
	LabelWaterCorner:      TerrainWaterCorner,
	LabelWaterEdge:        TerrainWaterEdge,
	LabelWater:            TerrainWater,
	LabelWaterInnerCorner: TerrainWaterInnerCorner,
}

// ParseTerrainLabel ищет тег по точному совпадению (регистр важен).
func ParseTerrainLabel(label string) (TerrainTag, bool) {
	tag, ok := terrainLabels[label]
	return tag, ok
}

// KnownLabels возвращает все метки, которые понимает загрузчик (включая egg).
func KnownLabels() []string {
	return []string{
		LabelGround, LabelRocks, LabelCaveEntrance, LabelCave, LabelCaveWall, LabelGoop,
		LabelEgg, LabelSnowyGround, LabelWaterCorner, LabelWaterEdge, LabelWater, LabelWaterInnerCorner,
	}
}

// BlocksSight - сквозь стены пещеры не видно. Больше ничего взгляд не закрывает.
func (t TerrainTag) BlocksSight() bool {
	return t == TerrainCaveWall
}

// BlocksMovement - стены, вода всех видов и камни непроходимы.
func (t TerrainTag) BlocksMovement() bool {
	switch t {
	case TerrainCaveWall, TerrainWaterCorner, TerrainWaterEdge, TerrainWater, TerrainWaterInnerCorner, TerrainRocks:
		return true
	default:
		return false
	}
}

// Image - картинка в атласе для этого типа поверхности.
func (t TerrainTag) Image() Image {
	switch t {
	case TerrainGround:
		return ImageGround
	case TerrainRocks:
		return ImageRocks
	case TerrainCaveEntrance:
		return ImageCaveEntrance
	case TerrainCave:
		return ImageCave
	case TerrainCaveWall:
		return ImageCaveWall
	case TerrainGoop:
		return ImageGoop
	case TerrainSnowyGround:
		return ImageSnowyGround
	case TerrainWaterCorner:
		return ImageWaterCorner
	case TerrainWaterEdge:
		return ImageWaterEdge
	case TerrainWater:
		return ImageWater
	case TerrainWaterInnerCorner:
		return ImageWaterInnerCorner
	default:
		panic("domain: unknown terrain tag")
	}
}

// String реализует интерфейс Stringer (для логов)
func (t TerrainTag) String() string {
	switch t {
	case TerrainGround:
		return "Ground"
	case TerrainRocks:
		return "Rocks"
	case TerrainCaveEntrance:
		return "CaveEntrance"
	case TerrainCave:
		return "Cave"
	case TerrainCaveWall:
		return "CaveWall"
	case TerrainGoop:
		return "Goop"
	case TerrainSnowyGround:
		return "SnowyGround"
	case TerrainWaterCorner:
		return "WaterCorner"
	case TerrainWaterEdge:
		return "WaterEdge"
	case TerrainWater:
		return "Water"
	case TerrainWaterInnerCorner:
		return "WaterInnerCorner"
	default:
		return "UNKNOWN"
	}
}
