package engine

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/engine/handlers"
	"github.com/expenses/snowy/internal/engine/handlers/actions"
	"github.com/expenses/snowy/internal/grid"
	"github.com/expenses/snowy/internal/network"
	"github.com/expenses/snowy/internal/render"
	"github.com/expenses/snowy/pkg/api"
	"github.com/expenses/snowy/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ReplayRecorder сохраняет записанную партию (storage.ReplayService).
type ReplayRecorder interface {
	Save(session *domain.ReplaySession) (string, error)
}

// Snapshot - копия состояния для чтения из других горутин (debug-эндпоинты).
type Snapshot struct {
	Turn       int                    `json:"turn"`
	Width      int                    `json:"width"`
	Height     int                    `json:"height"`
	Player     grid.Coord             `json:"player"`
	Camera     domain.Camera          `json:"camera"`
	Entities   []domain.DynamicEntity `json:"entities"`
	Visibility []string               `json:"visibility"` // построчно: '@' игрок, 'V' видно, 'r' помним, '.' темно
}

type GameService struct {
	sim *Simulation

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc
	buf      *render.BufferRenderer

	replay   domain.ReplaySession
	recorder ReplayRecorder

	latest atomic.Pointer[Snapshot]
	done   chan struct{}
}

// NewService оборачивает уже загруженную симуляцию. recorder может быть nil:
// тогда попытки игрока никуда не пишутся.
func NewService(sim *Simulation, mapChecksum uint32, recorder ReplayRecorder) *GameService {
	s := &GameService{
		sim:         sim,
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
		buf:         render.NewBufferRenderer(),
		replay: domain.ReplaySession{
			Timestamp:   time.Now().Unix(),
			MapChecksum: mapChecksum,
		},
		recorder: recorder,
		done:     make(chan struct{}),
	}

	s.registerHandlers()
	s.storeSnapshot()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	s.handlers[domain.ActionZoom] = handlers.WithPayload(actions.HandleZoom)
	s.handlers[domain.ActionPan] = handlers.WithPayload(actions.HandlePan)
}

// Start запускает цикл в отдельной горутине.
func (s *GameService) Start(ctx context.Context) {
	go s.Run(ctx)
}

// Done закрывается, когда цикл завершился и реплей сохранен.
func (s *GameService) Done() <-chan struct{} {
	return s.done
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Неизвестное действие отбрасывается сразу, до очереди.
func (s *GameService) ProcessCommand(ctx context.Context, externalCmd api.ClientCommand, session string) error {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithFields(logrus.Fields{
			"session": session,
			"action":  externalCmd.Action,
		}).Warn("Unknown action")
		return fmt.Errorf("unknown action %q", externalCmd.Action)
	}

	select {
	case s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Session: session,
		Payload: externalCmd.Payload,
	}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return fmt.Errorf("game service stopped")
	}
}

// --- GAME LOOP ---

// Run - единственная горутина, которая трогает симуляцию.
func (s *GameService) Run(ctx context.Context) {
	defer close(s.done)
	logger.Log.WithField("component", "game_loop").Info("Game loop started")

	for {
		select {
		case cmd := <-s.CommandChan:
			s.executeCommand(cmd)
		case <-ctx.Done():
			logger.Log.WithField("component", "game_loop").Info("Game loop stopping")
			if _, err := s.SaveReplay(); err != nil {
				logger.Log.WithError(err).Error("Failed to save replay")
			}
			return
		}
	}
}

// executeCommand выполняет хендлер и рассылает кадр
func (s *GameService) executeCommand(cmd domain.InternalCommand) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	turnBefore := s.sim.Turn()
	ctx := handlers.Context{World: s.sim, Session: cmd.Session}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"session": cmd.Session,
			"action":  cmd.Action,
		}).WithError(err).Warn("Command failed")

		state := BuildState(s.sim, s.buf, MsgTypeUpdate, false)
		state.Error = err.Error()
		s.Hub.SendTo(cmd.Session, *state)
		return
	}

	// Записываем каждую попытку шага, даже отклоненную
	if cmd.Action.AdvancesTurn() && result.Direction.Valid() {
		s.replay.Record(turnBefore, result.Direction)
	}

	if result.Msg != "" {
		logger.Log.WithFields(logrus.Fields{
			"session": cmd.Session,
			"action":  cmd.Action,
		}).Debug(result.Msg)
	}

	s.storeSnapshot()

	if cmd.Action == domain.ActionInit {
		state := BuildState(s.sim, s.buf, MsgTypeInit, result.Accepted)
		s.Hub.SendTo(cmd.Session, *state)
		return
	}

	state := BuildState(s.sim, s.buf, MsgTypeUpdate, result.Accepted)
	s.Hub.Broadcast(*state)
}

// Snapshot возвращает последнее опубликованное состояние. Безопасно из любой горутины.
func (s *GameService) Snapshot() *Snapshot {
	return s.latest.Load()
}

func (s *GameService) storeSnapshot() {
	s.latest.Store(TakeSnapshot(s.sim))
}

// TakeSnapshot копирует состояние симуляции.
func TakeSnapshot(sim *Simulation) *Snapshot {
	tiles := sim.Tiles()
	vis := sim.Visibility()
	player := sim.PlayerPos()

	rows := make([]strings.Builder, tiles.Height())
	for c, v := range vis.All() {
		ch := byte('.')
		switch {
		case c == player:
			ch = '@'
		case *v == domain.Visible:
			ch = 'V'
		case *v == domain.PreviouslyVisible:
			ch = 'r'
		}
		rows[c.Y].WriteByte(ch)
	}
	visRows := make([]string, len(rows))
	for i := range rows {
		visRows[i] = rows[i].String()
	}

	entities := make([]domain.DynamicEntity, 0, sim.EntityCount())
	for e := range sim.Entities() {
		entities = append(entities, e)
	}

	return &Snapshot{
		Turn:       sim.Turn(),
		Width:      tiles.Width(),
		Height:     tiles.Height(),
		Player:     player,
		Camera:     sim.Camera(),
		Entities:   entities,
		Visibility: visRows,
	}
}

// SaveReplay пишет записанные попытки. Пустая партия не сохраняется.
// Вызывается из Run при остановке; снаружи - только после Done.
func (s *GameService) SaveReplay() (string, error) {
	if s.recorder == nil || len(s.replay.Actions) == 0 {
		return "", nil
	}
	return s.recorder.Save(&s.replay)
}
