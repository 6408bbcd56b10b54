package game

import "time"

// Clock is the millisecond tick source and blocking delay the loop paces with.
type Clock interface {
	Ticks() uint64
	Delay(ms uint64)
}

// SystemClock counts monotonic milliseconds since it was created.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Ticks() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

func (c *SystemClock) Delay(ms uint64) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
