package manager

import (
	"spinach-snake/game/entity"
	"spinach-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// isOutOfGrid catches the sentinel column and row the placement service can
// return.
func (cm *CollisionManager) isOutOfGrid(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks if a position is valid for spawning an item:
// inside the grid and not on the snake.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isOutOfGrid(pos) {
		return false
	}
	return !snake.OccupiesCell(pos.X, pos.Y)
}

// FreeCells counts the cells an item could still be spawned on.
func (cm *CollisionManager) FreeCells(snake *entity.Snake) int {
	occupied := make(map[types.Point]struct{}, len(snake.Body)+1)
	occupied[snake.HeadCell()] = struct{}{}
	for _, part := range snake.Body {
		occupied[part] = struct{}{}
	}
	return cm.grid.Cells() - len(occupied)
}
