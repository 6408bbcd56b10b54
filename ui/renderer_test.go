package ui

import "testing"

func TestWindowTitle(t *testing.T) {
	if got := WindowTitle(12, 59); got != "Snake Score: 12 FPS: 59" {
		t.Errorf("WindowTitle = %q", got)
	}
}
