package domain

// Image - ссылка на спрайт в текстурном атласе 4x4.
type Image uint8

const (
	ImageGround Image = iota
	ImageRocks
	ImageCaveEntrance
	ImageCave
	ImageCaveWall
	ImageGoop
	ImageSnowyGround
	ImageWaterCorner
	ImageWaterEdge
	ImageWater
	ImageWaterInnerCorner
	ImageEgg
	ImagePerson
)

// AtlasSize - атлас квадратный, AtlasSize x AtlasSize спрайтов.
const AtlasSize = 4

// AtlasCoords возвращает (колонка, строка) спрайта в атласе.
func (i Image) AtlasCoords() (uint32, uint32) {
	switch i {
	case ImageGround:
		return 0, 0
	case ImageRocks:
		return 1, 0
	case ImageCaveEntrance:
		return 2, 0
	case ImageCave:
		return 3, 0
	case ImageGoop:
		return 0, 1
	case ImageEgg:
		return 1, 1
	case ImagePerson:
		return 2, 1
	case ImageCaveWall:
		return 3, 1
	case ImageSnowyGround:
		return 0, 2
	case ImageWaterCorner:
		return 1, 2
	case ImageWaterEdge:
		return 2, 2
	case ImageWater:
		return 3, 2
	case ImageWaterInnerCorner:
		return 0, 3
	default:
		panic("domain: unknown image")
	}
}

var imageNames = map[Image]string{
	ImageGround:           "ground",
	ImageRocks:            "rocks",
	ImageCaveEntrance:     "cave_entrance",
	ImageCave:             "cave",
	ImageCaveWall:         "cave_wall",
	ImageGoop:             "goop",
	ImageSnowyGround:      "snowy_ground",
	ImageWaterCorner:      "water_corner",
	ImageWaterEdge:        "water_edge",
	ImageWater:            "water",
	ImageWaterInnerCorner: "water_inner_corner",
	ImageEgg:              "egg",
	ImagePerson:           "person",
}

func (i Image) String() string {
	if name, ok := imageNames[i]; ok {
		return name
	}
	return "unknown"
}
