package terminal

import (
	"fmt"

	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/engine"
	"github.com/expenses/snowy/pkg/logger"
	"github.com/nsf/termbox-go"
	"github.com/sirupsen/logrus"
)

const helpLine = "numpad/hjklyubn move, 5 or . wait, WASD pan, Z/X zoom, Esc quit"

// App - локальный фронтенд: один поток владеет симуляцией,
// читает клавиатуру и перерисовывает экран после каждой команды.
type App struct {
	Sim    *engine.Simulation
	Replay *domain.ReplaySession // если не nil, сюда пишутся попытки шага

	status string
}

func NewApp(sim *engine.Simulation, replay *domain.ReplaySession) *App {
	return &App{Sim: sim, Replay: replay}
}

// Apply выполняет команду. Возвращает false, если пора выходить.
func (a *App) Apply(cmd Command) bool {
	switch cmd.Kind {
	case CmdQuit:
		return false
	case CmdMove:
		if a.Replay != nil {
			a.Replay.Record(a.Sim.Turn(), cmd.Dir)
		}
		if a.Sim.Step(cmd.Dir) {
			a.status = ""
		} else {
			a.status = fmt.Sprintf("Can't go %s.", cmd.Dir)
		}
	case CmdPan:
		a.Sim.PanCamera(cmd.Dir)
	case CmdZoom:
		a.Sim.ZoomCamera(cmd.ZoomIn)
	}
	return true
}

// StatusLine - строка состояния под картой
func (a *App) StatusLine() string {
	pos := a.Sim.PlayerPos()
	line := fmt.Sprintf("turn %d  pos %d,%d  eggs %d  zoom %.2f",
		a.Sim.Turn(), pos.X, pos.Y, a.Sim.EntityCount(), a.Sim.Camera().Zoom)
	if a.status != "" {
		line += "  " + a.status
	}
	return line
}

// Run захватывает терминал до выхода
func (a *App) Run() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("termbox init: %w", err)
	}
	defer termbox.Close()

	logger.Log.WithFields(logrus.Fields{"component": "terminal"}).Info("Terminal frontend started")

	for {
		a.draw()

		ev := termbox.PollEvent()
		if ev.Type == termbox.EventError {
			return fmt.Errorf("termbox event: %w", ev.Err)
		}
		if ev.Type == termbox.EventResize {
			continue
		}
		if !a.Apply(TranslateKey(ev)) {
			return nil
		}
	}
}

func (a *App) draw() {
	w, h := termbox.Size()
	mapHeight := h - 2
	if mapHeight < 1 {
		mapHeight = 1
	}

	if err := termbox.Clear(ColorDefault, ColorDefault); err != nil {
		logger.Log.WithError(err).Debug("termbox clear failed")
	}

	frame := Compose(a.Sim, w, mapHeight)
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			g := frame.At(x, y)
			termbox.SetCell(x, y, g.Ch, g.Fg, g.Bg)
		}
	}

	drawText(0, h-2, a.StatusLine())
	drawText(0, h-1, helpLine)

	if err := termbox.Flush(); err != nil {
		logger.Log.WithError(err).Debug("termbox flush failed")
	}
}

func drawText(x, y int, s string) {
	for _, c := range s {
		termbox.SetCell(x, y, c, ColorText, ColorDefault)
		x++
	}
}
