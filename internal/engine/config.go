package engine

import (
	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/grid"
)

// Config хранит параметры запуска движка
type Config struct {
	VisionRadius int        // радиус обзора игрока в клетках
	PlayerStart  grid.Coord // где игрок появляется после загрузки
	CameraZoom   float32    // начальный масштаб камеры
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		VisionRadius: domain.VisionRadius,
		PlayerStart:  grid.Coord{X: 2, Y: 2},
		CameraZoom:   domain.DefaultCameraZoom,
	}
}
