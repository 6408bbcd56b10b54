package types

import "testing"

func TestGridContains(t *testing.T) {
	g := Grid{Width: 4, Height: 3}

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{3, 2}, true},
		{Point{4, 0}, false},
		{Point{0, 3}, false},
		{Point{-1, 1}, false},
	}

	for _, tt := range tests {
		if got := g.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 4, Height: 3}

	if got := g.Wrap(Point{-1, 3}); got != (Point{3, 0}) {
		t.Errorf("Wrap(-1,3) = %v, want {3 0}", got)
	}
	if got := g.Wrap(Point{9, -4}); got != (Point{1, 2}) {
		t.Errorf("Wrap(9,-4) = %v, want {1 2}", got)
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double opposite is %v", d, d.Opposite().Opposite())
		}
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("%v: left then right is %v", d, d.TurnLeft().TurnRight())
		}
		if d.TurnRight().TurnRight() != d.Opposite() {
			t.Errorf("%v: two right turns should reverse", d)
		}
		v := d.ToPoint().Add(d.Opposite().ToPoint())
		if v != (Point{}) {
			t.Errorf("%v: vector plus opposite vector = %v", d, v)
		}
	}
}
