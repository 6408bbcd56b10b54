package entity

import (
	"math"
	"testing"

	"spinach-snake/game/types"
)

var grid = types.Grid{Width: 32, Height: 32}

// newTestSnake builds a snake heading right whose head sits in the middle of
// cell head, with body cells trailing to the left.
func newTestSnake(head types.Point, size int, speed float64) *Snake {
	s := NewSnake(grid)
	s.HeadX = float64(head.X) + 0.5
	s.HeadY = float64(head.Y) + 0.5
	s.Speed = speed
	s.Size = size
	for i := size - 1; i > 0; i-- {
		s.Body = append(s.Body, types.Point{X: head.X - i, Y: head.Y})
	}
	return s
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(grid)

	if s.HeadCell() != (types.Point{X: 16, Y: 16}) {
		t.Errorf("head = %v, want {16 16}", s.HeadCell())
	}
	if s.Direction != types.Right {
		t.Errorf("direction = %v, want right", s.Direction)
	}
	if s.Size != 1 || len(s.Body) != 0 {
		t.Errorf("size = %d, body = %v; want a lone head", s.Size, s.Body)
	}
	if !s.Alive {
		t.Error("new snake should be alive")
	}
}

func TestUpdateMovesContinuously(t *testing.T) {
	s := NewSnake(grid)

	for i := 0; i < 9; i++ {
		s.Update()
	}
	if s.HeadCell() != (types.Point{X: 16, Y: 16}) {
		t.Fatalf("head left its cell after 0.9 cells of travel: %v", s.HeadCell())
	}

	s.Update()
	s.Update()
	if s.HeadCell() != (types.Point{X: 17, Y: 16}) {
		t.Errorf("head = %v, want {17 16}", s.HeadCell())
	}
}

func TestUpdateWrapsAroundEdges(t *testing.T) {
	tests := []struct {
		name string
		dir  types.Direction
		from types.Point
		want types.Point
	}{
		{"right edge", types.Right, types.Point{X: 31, Y: 5}, types.Point{X: 0, Y: 5}},
		{"left edge", types.Left, types.Point{X: 0, Y: 5}, types.Point{X: 31, Y: 5}},
		{"top edge", types.Up, types.Point{X: 5, Y: 0}, types.Point{X: 5, Y: 31}},
		{"bottom edge", types.Down, types.Point{X: 5, Y: 31}, types.Point{X: 5, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSnake(tt.from, 1, 1.0)
			s.Direction = tt.dir

			s.Update()

			if s.HeadCell() != tt.want {
				t.Errorf("head = %v, want %v", s.HeadCell(), tt.want)
			}
		})
	}
}

func TestBodyFollowsHead(t *testing.T) {
	s := newTestSnake(types.Point{X: 10, Y: 10}, 3, 1.0)

	s.Update()

	want := []types.Point{{X: 9, Y: 10}, {X: 10, Y: 10}}
	if len(s.Body) != len(want) {
		t.Fatalf("body = %v, want %v", s.Body, want)
	}
	for i := range want {
		if s.Body[i] != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, s.Body[i], want[i])
		}
	}
	if s.Size != len(s.Body)+1 {
		t.Errorf("size %d does not match body length %d", s.Size, len(s.Body))
	}
}

func TestSelfCollision(t *testing.T) {
	// Up then Left within one cell folds the head back onto the second segment.
	s := newTestSnake(types.Point{X: 16, Y: 16}, 3, 1.0)

	s.SetDirection(types.Up)
	s.SetDirection(types.Left)
	s.Update()

	if s.Alive {
		t.Fatalf("snake should have died, head %v body %v", s.HeadCell(), s.Body)
	}

	headX, headY := s.HeadX, s.HeadY
	body := append([]types.Point(nil), s.Body...)

	s.Update()

	if s.HeadX != headX || s.HeadY != headY {
		t.Errorf("dead snake moved from (%v,%v) to (%v,%v)", headX, headY, s.HeadX, s.HeadY)
	}
	for i := range body {
		if s.Body[i] != body[i] {
			t.Errorf("dead snake body changed at %d: %v -> %v", i, body[i], s.Body[i])
		}
	}
}

func TestNoCollisionWhenTurning(t *testing.T) {
	s := newTestSnake(types.Point{X: 16, Y: 16}, 4, 1.0)

	for _, dir := range []types.Direction{types.Up, types.Left, types.Left, types.Down} {
		s.SetDirection(dir)
		s.Update()
		if !s.Alive {
			t.Fatalf("snake died turning %v at %v", dir, s.HeadCell())
		}
	}
}

func TestSetDirectionIgnoresReverse(t *testing.T) {
	t.Run("with a body", func(t *testing.T) {
		s := newTestSnake(types.Point{X: 5, Y: 5}, 2, 1.0)
		s.SetDirection(types.Left)
		if s.Direction != types.Right {
			t.Errorf("direction = %v, want right", s.Direction)
		}
	})

	t.Run("lone head", func(t *testing.T) {
		s := newTestSnake(types.Point{X: 5, Y: 5}, 1, 1.0)
		s.SetDirection(types.Left)
		if s.Direction != types.Left {
			t.Errorf("direction = %v, want left", s.Direction)
		}
	})
}

func TestGrowLingersTail(t *testing.T) {
	s := newTestSnake(types.Point{X: 10, Y: 10}, 2, 1.0)

	s.Grow()
	if s.Size != 3 || len(s.Body) != 2 {
		t.Fatalf("size = %d, body = %v after grow", s.Size, s.Body)
	}

	s.Update()
	if s.Body[0] != (types.Point{X: 9, Y: 10}) {
		t.Errorf("tail = %v, want it to stay at {9 10}", s.Body[0])
	}

	s.Update()
	if s.Body[0] != (types.Point{X: 10, Y: 10}) {
		t.Errorf("tail = %v, want {10 10}", s.Body[0])
	}
	if s.Size != len(s.Body)+1 {
		t.Errorf("size %d does not match body length %d", s.Size, len(s.Body))
	}
}

func TestShrink(t *testing.T) {
	s := newTestSnake(types.Point{X: 10, Y: 10}, 3, 1.0)

	s.Shrink()
	if s.Size != 2 || len(s.Body) != 1 || s.Body[0] != (types.Point{X: 9, Y: 10}) {
		t.Errorf("size = %d, body = %v after shrink", s.Size, s.Body)
	}

	s.Shrink()
	s.Shrink()
	if s.Size != MinSize || len(s.Body) != 0 {
		t.Errorf("size = %d, body = %v; want floor at %d", s.Size, s.Body, MinSize)
	}
}

func TestOccupiesCell(t *testing.T) {
	s := newTestSnake(types.Point{X: 10, Y: 10}, 3, 1.0)

	for _, p := range []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}} {
		if !s.OccupiesCell(p.X, p.Y) {
			t.Errorf("OccupiesCell(%v) = false", p)
		}
	}
	if s.OccupiesCell(11, 10) {
		t.Error("OccupiesCell(11,10) = true")
	}
}

func TestSpeedClamp(t *testing.T) {
	s := NewSnake(grid)

	s.SpeedUp()
	if math.Abs(s.Speed-(InitialSpeed+SpeedStep)) > 1e-9 {
		t.Errorf("speed = %v after SpeedUp", s.Speed)
	}

	for i := 0; i < 20; i++ {
		s.SlowDown()
		if s.Speed <= 0 {
			t.Fatalf("speed reached %v", s.Speed)
		}
	}
	if s.Speed != MinSpeed {
		t.Errorf("speed = %v, want clamp at %v", s.Speed, MinSpeed)
	}
}
