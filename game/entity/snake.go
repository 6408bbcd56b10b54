package entity

import (
	"math"

	"spinach-snake/game/types"
)

const (
	InitialSpeed = 0.1
	SpeedStep    = 0.02
	MinSpeed     = 0.02
	MinSize      = 1
)

// Snake is the player's segment chain. The head moves continuously; Body holds
// the discretized cells it left behind, oldest first, head excluded.
type Snake struct {
	Direction types.Direction
	Speed     float64
	Size      int
	Alive     bool
	HeadX     float64
	HeadY     float64
	Body      []types.Point

	grid types.Grid
}

func NewSnake(grid types.Grid) *Snake {
	return &Snake{
		Direction: types.Right, // Start moving right
		Speed:     InitialSpeed,
		Size:      1,
		Alive:     true,
		HeadX:     float64(grid.Width / 2),
		HeadY:     float64(grid.Height / 2),
		Body:      make([]types.Point, 0),
		grid:      grid,
	}
}

// Update advances the head by one tick. Once dead it does nothing.
func (s *Snake) Update() {
	if !s.Alive {
		return
	}

	prev := s.HeadCell()
	s.updateHead()
	current := s.HeadCell()

	// Body only moves when the head crosses into a new cell
	if current != prev {
		s.updateBody(current, prev)
	}
}

func (s *Snake) updateHead() {
	switch s.Direction {
	case types.Up:
		s.HeadY -= s.Speed
	case types.Down:
		s.HeadY += s.Speed
	case types.Left:
		s.HeadX -= s.Speed
	case types.Right:
		s.HeadX += s.Speed
	}

	w, h := float64(s.grid.Width), float64(s.grid.Height)
	s.HeadX = math.Mod(s.HeadX+w, w)
	s.HeadY = math.Mod(s.HeadY+h, h)
}

func (s *Snake) updateBody(current, prev types.Point) {
	s.Body = append(s.Body, prev)
	s.Body = s.Body[1:]
	if len(s.Body) == 0 {
		return
	}

	// The cell just left cannot be hit on this tick.
	for _, part := range s.Body[:len(s.Body)-1] {
		if part == current {
			s.Alive = false
			return
		}
	}
}

// HeadCell returns the cell the head currently occupies.
func (s *Snake) HeadCell() types.Point {
	return types.Point{X: int(s.HeadX), Y: int(s.HeadY)}
}

// OccupiesCell reports whether (x, y) is covered by the head or the body.
func (s *Snake) OccupiesCell(x, y int) bool {
	p := types.Point{X: x, Y: y}
	if p == s.HeadCell() {
		return true
	}
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Grow adds a segment. The tail cell is doubled so it stays put for one extra
// body step.
func (s *Snake) Grow() {
	tail := s.HeadCell()
	if len(s.Body) > 0 {
		tail = s.Body[0]
	}
	s.Body = append([]types.Point{tail}, s.Body...)
	s.Size++
}

// Shrink drops the oldest segment, never going below MinSize.
func (s *Snake) Shrink() {
	if s.Size <= MinSize {
		return
	}
	s.Body = s.Body[1:]
	s.Size--
}

// SetDirection changes the heading for the next Update. A straight reversal is
// ignored while the snake has a body.
func (s *Snake) SetDirection(dir types.Direction) {
	if s.Size > 1 && dir == s.Direction.Opposite() {
		return
	}
	s.Direction = dir
}

func (s *Snake) SpeedUp() {
	s.Speed += SpeedStep
}

// SlowDown undoes one SpeedUp, clamped at MinSpeed so the snake keeps moving.
func (s *Snake) SlowDown() {
	s.Speed = math.Max(s.Speed-SpeedStep, MinSpeed)
}
