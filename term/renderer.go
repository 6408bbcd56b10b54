package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"spinach-snake/game/entity"
	"spinach-snake/game/types"
)

const (
	foodRune    = '*'
	spinachRune = '♣'
	bodyRune    = tcell.RuneBlock
	headRune    = tcell.RuneDiamond
	deadRune    = 'X'
)

var (
	defStyle     = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	boxStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	foodStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	spinachStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	bodyStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	headStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	deadStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Renderer draws the board one terminal cell per grid cell, inside a border,
// with a status line below it in place of a window title.
type Renderer struct {
	screen tcell.Screen
	grid   types.Grid
	status string
}

func NewRenderer(s tcell.Screen, grid types.Grid) *Renderer {
	s.SetStyle(defStyle)
	s.HideCursor()
	return &Renderer{
		screen: s,
		grid:   grid,
		status: "Snake",
	}
}

func (r *Renderer) Render(snake *entity.Snake, food, spinach types.Point, showSpinach bool) {
	r.screen.Clear()
	r.drawBox()

	r.drawCell(food, foodRune, foodStyle)
	if showSpinach {
		r.drawCell(spinach, spinachRune, spinachStyle)
	}
	for _, p := range snake.Body {
		r.drawCell(p, bodyRune, bodyStyle)
	}
	if snake.Alive {
		r.drawCell(snake.HeadCell(), headRune, headStyle)
	} else {
		r.drawCell(snake.HeadCell(), deadRune, deadStyle)
	}

	drawText(r.screen, 0, r.grid.Height+2, r.status, defStyle)
	r.screen.Show()
}

func (r *Renderer) UpdateWindowTitle(score, fps int) {
	r.status = fmt.Sprintf("Snake Score: %d FPS: %d", score, fps)
}

// drawCell maps grid cells inside the one-cell border.
func (r *Renderer) drawCell(p types.Point, ch rune, style tcell.Style) {
	r.screen.SetContent(p.X+1, p.Y+1, ch, nil, style)
}

func (r *Renderer) drawBox() {
	x2, y2 := r.grid.Width+1, r.grid.Height+1

	for col := 1; col < x2; col++ {
		r.screen.SetContent(col, 0, tcell.RuneHLine, nil, boxStyle)
		r.screen.SetContent(col, y2, tcell.RuneHLine, nil, boxStyle)
	}
	for row := 1; row < y2; row++ {
		r.screen.SetContent(0, row, tcell.RuneVLine, nil, boxStyle)
		r.screen.SetContent(x2, row, tcell.RuneVLine, nil, boxStyle)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, boxStyle)
	r.screen.SetContent(x2, 0, tcell.RuneURCorner, nil, boxStyle)
	r.screen.SetContent(0, y2, tcell.RuneLLCorner, nil, boxStyle)
	r.screen.SetContent(x2, y2, tcell.RuneLRCorner, nil, boxStyle)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, style)
	}
}
