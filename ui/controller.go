package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"spinach-snake/game/entity"
	"spinach-snake/game/types"
)

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
}

// Controller reads the raylib keyboard state. raylib refreshes it inside
// EndDrawing, so it must run on the same goroutine as the Renderer.
type Controller struct{}

func NewController() *Controller {
	rl.SetExitKey(rl.KeyEscape)
	return &Controller{}
}

func (c *Controller) HandleInput(snake *entity.Snake) bool {
	if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ) {
		return false
	}

	for key, dir := range keyDirections {
		if rl.IsKeyPressed(key) {
			snake.SetDirection(dir)
		}
	}
	return true
}
