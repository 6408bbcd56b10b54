package game

import (
	"github.com/rs/zerolog"

	"spinach-snake/game/entity"
	"spinach-snake/game/types"
)

const titleInterval = 1000 // ms between window title refreshes

// Controller turns pending input into snake steering. It returns false once
// the player asked to quit.
type Controller interface {
	HandleInput(snake *entity.Snake) bool
}

// Renderer draws frames and the once-per-second status text.
type Renderer interface {
	Render(snake *entity.Snake, food, spinach types.Point, showSpinach bool)
	UpdateWindowTitle(score, fps int)
}

// Loop drives a Game at a fixed target frame duration.
type Loop struct {
	game          *Game
	clock         Clock
	frameDuration uint64
	log           zerolog.Logger
}

func NewLoop(g *Game, clock Clock, targetFrameDuration uint64, logger zerolog.Logger) *Loop {
	return &Loop{
		game:          g,
		clock:         clock,
		frameDuration: targetFrameDuration,
		log:           logger.With().Str("component", "loop").Logger(),
	}
}

// Run polls input, updates and renders once per iteration until the
// controller reports a quit request, then returns what it measured.
func (l *Loop) Run(ctrl Controller, renderer Renderer) *FrameStats {
	titleTimestamp := l.clock.Ticks()
	stats := NewFrameStats(titleTimestamp)
	frameCount := 0
	running := true

	l.log.Info().Uint64("frame_ms", l.frameDuration).Msg("Loop started")

	for running {
		frameStart := l.clock.Ticks()

		// Input, Update, Render
		running = ctrl.HandleInput(l.game.Snake)
		l.game.Update()
		spinach, showSpinach := l.game.Spinach()
		renderer.Render(l.game.Snake, l.game.Food(), spinach, showSpinach)

		frameEnd := l.clock.Ticks()

		l.game.ExpireSpinach(frameEnd)

		frameCount++
		frameDuration := frameEnd - frameStart

		if frameEnd-titleTimestamp >= titleInterval {
			renderer.UpdateWindowTitle(l.game.Score(), frameCount)
			stats.AddSample(frameCount)
			frameCount = 0
			titleTimestamp = frameEnd
		}

		// Pad short frames up to the target; long frames are not made up for.
		if frameDuration < l.frameDuration {
			l.clock.Delay(l.frameDuration - frameDuration)
			stats.AddFrame(false)
		} else {
			stats.AddFrame(frameDuration > l.frameDuration)
		}
	}

	stats.Finish(l.clock.Ticks())
	l.log.Info().
		Int("score", l.game.Score()).
		Object("frames", stats).
		Msg("Loop stopped")

	return stats
}
