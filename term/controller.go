package term

import (
	"github.com/gdamore/tcell/v2"

	"spinach-snake/game/entity"
	"spinach-snake/game/types"
)

var key2Dir = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

var rune2Dir = map[rune]types.Direction{
	'k': types.Up,
	'w': types.Up,
	'j': types.Down,
	's': types.Down,
	'h': types.Left,
	'a': types.Left,
	'l': types.Right,
	'd': types.Right,
}

// Controller drains the terminal's pending events once per frame. Events are
// read by a background goroutine and handed over on a channel, so the snake
// is only touched from the loop's goroutine.
type Controller struct {
	screen tcell.Screen
	events chan tcell.Event
}

func NewController(s tcell.Screen) *Controller {
	c := &Controller{
		screen: s,
		events: make(chan tcell.Event, 64),
	}
	go c.pump()
	return c
}

func (c *Controller) pump() {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			close(c.events)
			return
		}
		c.events <- ev
	}
}

func (c *Controller) HandleInput(snake *entity.Snake) bool {
	for {
		select {
		case ev, ok := <-c.events:
			if !ok {
				return false
			}
			if !c.handleEvent(ev, snake) {
				return false
			}
		default:
			return true
		}
	}
}

func (c *Controller) handleEvent(ev tcell.Event, snake *entity.Snake) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		c.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			if ev.Rune() == 'q' {
				return false
			}
			if dir, ok := rune2Dir[ev.Rune()]; ok {
				snake.SetDirection(dir)
			}
			return true
		}
		if dir, ok := key2Dir[ev.Key()]; ok {
			snake.SetDirection(dir)
		}
	}
	return true
}
