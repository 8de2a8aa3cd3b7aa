package systems

import (
	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/grid"
	"github.com/expenses/snowy/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ResetVisibility переводит всё, что было видно на прошлом ходу, в "уже видели".
// Невидимые и уже исследованные клетки не трогаются.
func ResetVisibility(vis *grid.Grid[domain.Visibility]) {
	for v := range vis.Values() {
		if *v == domain.Visible {
			*v = domain.PreviouslyVisible
		}
	}
}

// UpdateVisibility отмечает видимыми клетки в круге радиуса radius вокруг center,
// до которых ничего не закрывает обзор. Остальные клетки не меняются,
// так что память об исследованном никогда не стирается.
// Возвращает число клеток, ставших видимыми.
func UpdateVisibility(tiles *grid.Grid[domain.Tile], vis *grid.Grid[domain.Visibility], center grid.Coord, radius int) int {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":  "visibility_system",
		"center_pos": center,
	})

	if radius < 0 {
		fovLogger.Warn("Visibility update skipped for negative radius.")
		return 0
	}

	radiusSq := radius * radius
	visibleCount := 0

	for x := center.X - radius; x <= center.X+radius; x++ {
		for y := center.Y - radius; y <= center.Y+radius; y++ {
			c := grid.Coord{X: x, Y: y}
			cell := vis.GetMut(c)
			if cell == nil {
				continue
			}
			if c.Distance2(center) > radiusSq {
				continue
			}
			if HasLineOfSight(tiles, c, center) {
				*cell = domain.Visible
				visibleCount++
			}
		}
	}

	fovLogger.WithFields(logrus.Fields{
		"radius":        radius,
		"visible_tiles": visibleCount,
	}).Debug("Visibility update complete.")

	return visibleCount
}
