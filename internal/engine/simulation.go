package engine

import (
	"fmt"
	"iter"
	"slices"

	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/grid"
	"github.com/expenses/snowy/internal/systems"
	"github.com/expenses/snowy/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Simulation - все состояние мира. Единственный владелец мутирует его
// между кадрами, поэтому внутри нет блокировок.
type Simulation struct {
	cfg Config

	tiles    *grid.Grid[domain.Tile]
	vis      *grid.Grid[domain.Visibility]
	entities []domain.DynamicEntity

	player domain.Player
	cam    domain.Camera
	turn   int
}

// NewSimulation собирает мир из сетки меток. Ход еще не прогнан:
// вся карта невидима, пока не вызван RunTurn (см. Boot).
func NewSimulation(cfg Config, labels *grid.Grid[domain.TileLabel]) (*Simulation, error) {
	tiles, entities, err := LoadWorld(labels)
	if err != nil {
		return nil, err
	}

	if !tiles.Contains(cfg.PlayerStart) {
		return nil, fmt.Errorf("player start %v outside %dx%d map", cfg.PlayerStart, tiles.Width(), tiles.Height())
	}

	sim := &Simulation{
		cfg:      cfg,
		tiles:    tiles,
		vis:      grid.Map(tiles, func(*domain.Tile) domain.Visibility { return domain.Invisible }),
		entities: entities,
		player:   domain.Player{Pos: cfg.PlayerStart},
		cam:      domain.NewCamera(cfg.CameraZoom),
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "simulation",
		"width":     tiles.Width(),
		"height":    tiles.Height(),
		"entities":  len(entities),
		"start":     cfg.PlayerStart,
	}).Info("World loaded")

	return sim, nil
}

// Boot - полный запуск: разбор файла карты, сборка мира и первый ход,
// чтобы до первого кадра вокруг игрока уже было видно.
func Boot(cfg Config, mapData []byte) (*Simulation, error) {
	labels, err := DecodeMap(mapData)
	if err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}

	sim, err := NewSimulation(cfg, labels)
	if err != nil {
		return nil, fmt.Errorf("load world: %w", err)
	}

	sim.RunTurn()
	return sim, nil
}

// TryToMovePlayer применяет шаг, если он разрешен. Отклоненный шаг ничего не меняет
// и ничего не пишет в лог: это обычный исход, а не ошибка.
func (s *Simulation) TryToMovePlayer(dir domain.Direction) bool {
	res := systems.CalculateMove(s.player.Pos, dir, s.tiles, s.entities)
	if !res.Accepted {
		return false
	}

	s.player.Pos = res.NewPos
	return true
}

// RunTurn - конвейер хода: старение сущностей, сброс видимости, новый обзор.
func (s *Simulation) RunTurn() {
	var removed int
	s.entities, removed = systems.StepEntities(s.entities)

	systems.ResetVisibility(s.vis)
	visible := systems.UpdateVisibility(s.tiles, s.vis, s.player.Pos, s.cfg.VisionRadius)

	s.turn++

	logger.Log.WithFields(logrus.Fields{
		"component": "simulation",
		"turn":      s.turn,
		"player":    s.player.Pos,
		"visible":   visible,
		"removed":   removed,
		"entities":  len(s.entities),
	}).Debug("Turn complete")
}

// Step - одна попытка игрока: ход прогоняется только если шаг принят.
func (s *Simulation) Step(dir domain.Direction) bool {
	if !s.TryToMovePlayer(dir) {
		return false
	}
	s.RunTurn()
	return true
}

func (s *Simulation) ZoomCamera(in bool) {
	if in {
		s.cam.ZoomIn()
	} else {
		s.cam.ZoomOut()
	}
}

func (s *Simulation) PanCamera(dir domain.Direction) {
	s.cam.Pan(dir)
}

// --- Чтение состояния (render.Scene и отладка) ---

func (s *Simulation) Tiles() *grid.Grid[domain.Tile]            { return s.tiles }
func (s *Simulation) Visibility() *grid.Grid[domain.Visibility] { return s.vis }
func (s *Simulation) Camera() domain.Camera                     { return s.cam }
func (s *Simulation) PlayerPos() grid.Coord                     { return s.player.Pos }
func (s *Simulation) Turn() int                                 { return s.turn }
func (s *Simulation) EntityCount() int                          { return len(s.entities) }
func (s *Simulation) Config() Config                            { return s.cfg }

// Entities перечисляет живые сущности в порядке загрузки.
func (s *Simulation) Entities() iter.Seq[domain.DynamicEntity] {
	return slices.Values(s.entities)
}
