package terminal

import (
	"github.com/expenses/snowy/internal/domain"
	"github.com/nsf/termbox-go"
)

// CommandKind - что делать по нажатию
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdMove
	CmdPan
	CmdZoom
	CmdQuit
)

// Command - нажатие, переведенное в действие над миром
type Command struct {
	Kind   CommandKind
	Dir    domain.Direction
	ZoomIn bool
}

// Цифры нумпада и vi-клавиши двигают игрока. '5' и '.' - пропуск хода.
var moveKeys = map[rune]domain.Direction{
	'8': domain.Up, 'k': domain.Up,
	'2': domain.Down, 'j': domain.Down,
	'4': domain.Left, 'h': domain.Left,
	'6': domain.Right, 'l': domain.Right,
	'7': domain.UpLeft, 'y': domain.UpLeft,
	'9': domain.UpRight, 'u': domain.UpRight,
	'1': domain.DownLeft, 'b': domain.DownLeft,
	'3': domain.DownRight, 'n': domain.DownRight,
	'5': domain.StandStill, '.': domain.StandStill,
}

// WASD двигают камеру
var panKeys = map[rune]domain.Direction{
	'w': domain.Up,
	's': domain.Down,
	'a': domain.Left,
	'd': domain.Right,
}

var arrowKeys = map[termbox.Key]domain.Direction{
	termbox.KeyArrowUp:    domain.Up,
	termbox.KeyArrowDown:  domain.Down,
	termbox.KeyArrowLeft:  domain.Left,
	termbox.KeyArrowRight: domain.Right,
}

// TranslateKey переводит событие клавиатуры в команду. Прочие события дают CmdNone.
func TranslateKey(ev termbox.Event) Command {
	if ev.Type != termbox.EventKey {
		return Command{}
	}

	if ev.Ch == 0 {
		switch ev.Key {
		case termbox.KeyEsc, termbox.KeyCtrlC:
			return Command{Kind: CmdQuit}
		case termbox.KeySpace:
			return Command{Kind: CmdMove, Dir: domain.StandStill}
		}
		if dir, ok := arrowKeys[ev.Key]; ok {
			return Command{Kind: CmdMove, Dir: dir}
		}
		return Command{}
	}

	if dir, ok := moveKeys[ev.Ch]; ok {
		return Command{Kind: CmdMove, Dir: dir}
	}
	if dir, ok := panKeys[ev.Ch]; ok {
		return Command{Kind: CmdPan, Dir: dir}
	}

	switch ev.Ch {
	case 'z':
		return Command{Kind: CmdZoom, ZoomIn: true}
	case 'x':
		return Command{Kind: CmdZoom, ZoomIn: false}
	case 'q':
		return Command{Kind: CmdQuit}
	}
	return Command{}
}
