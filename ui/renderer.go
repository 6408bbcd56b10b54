package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spinach-snake/game/entity"
	"spinach-snake/game/types"
)

var (
	backgroundColor = rl.Color{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	foodColor       = rl.Color{R: 0xFF, G: 0xCC, B: 0x00, A: 0xFF}
	spinachColor    = rl.Color{R: 0x2E, G: 0xB8, B: 0x2E, A: 0xFF}
	bodyColor       = rl.White
	headColor       = rl.Color{R: 0x00, G: 0x7A, B: 0xCC, A: 0xFF}
	deadHeadColor   = rl.Red
)

// Renderer draws the board into a raylib window. The window is opened by
// NewRenderer and closed by Close.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	cellWidth    int32
	cellHeight   int32
}

func NewRenderer(screenWidth, screenHeight int, grid types.Grid) *Renderer {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(screenWidth), int32(screenHeight), "Snake Game")

	return &Renderer{
		screenWidth:  int32(screenWidth),
		screenHeight: int32(screenHeight),
		cellWidth:    int32(screenWidth / grid.Width),
		cellHeight:   int32(screenHeight / grid.Height),
	}
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func (r *Renderer) Render(snake *entity.Snake, food, spinach types.Point, showSpinach bool) {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	r.drawCell(food, foodColor)
	if showSpinach {
		r.drawCell(spinach, spinachColor)
	}

	for _, p := range snake.Body {
		r.drawCell(p, bodyColor)
	}

	head := headColor
	if !snake.Alive {
		head = deadHeadColor
	}
	r.drawCell(snake.HeadCell(), head)

	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		int32(p.X)*r.cellWidth,
		int32(p.Y)*r.cellHeight,
		r.cellWidth, r.cellHeight, color)
}

func (r *Renderer) UpdateWindowTitle(score, fps int) {
	rl.SetWindowTitle(WindowTitle(score, fps))
}

// WindowTitle is the status text shown once per second.
func WindowTitle(score, fps int) string {
	return fmt.Sprintf("Snake Score: %d FPS: %d", score, fps)
}
