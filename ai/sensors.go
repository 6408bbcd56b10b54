package ai

import (
	"spinach-snake/game/entity"
	"spinach-snake/game/types"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// wrappedOffset returns the shortest signed distance from a to b on an axis
// of the given length.
func wrappedOffset(a, b, length int) int {
	d := b - a
	if d > length/2 {
		d -= length
	} else if d < -length/2 {
		d += length
	}
	return d
}

// manhattanDistance measures on the torus.
func manhattanDistance(p1, p2 types.Point, grid types.Grid) int {
	return abs(wrappedOffset(p1.X, p2.X, grid.Width)) + abs(wrappedOffset(p1.Y, p2.Y, grid.Height))
}

// Observe reads the learner's view of the board.
func Observe(grid types.Grid, snake *entity.Snake, food types.Point) State {
	head := snake.HeadCell()

	var dangers [4]bool
	for a := Up; a <= Left; a++ {
		next := grid.Wrap(head.Add(a.Direction().ToPoint()))
		for _, part := range snake.Body {
			if part == next {
				dangers[a] = true
				break
			}
		}
	}

	return State{
		RelativeFoodDir: [2]int{
			sign(wrappedOffset(head.X, food.X, grid.Width)),
			sign(wrappedOffset(head.Y, food.Y, grid.Height)),
		},
		FoodDistance: manhattanDistance(head, food, grid),
		DangerDirs:   dangers,
		Dead:         !snake.Alive,
	}
}
