package ai

import (
	"github.com/rs/zerolog"

	"spinach-snake/game"
	"spinach-snake/game/entity"
	"spinach-snake/game/types"
)

// Autopilot steers the snake with a QLearning agent. It wraps the player's
// controller so quitting keeps working, and only decides when the head
// enters a new cell.
type Autopilot struct {
	inner game.Controller
	game  *game.Game
	agent *QLearning
	log   zerolog.Logger

	lastCell   types.Point
	lastState  State
	lastAction Action
	lastScore  int
	pending    bool
	finished   bool
}

func NewAutopilot(inner game.Controller, g *game.Game, agent *QLearning, logger zerolog.Logger) *Autopilot {
	return &Autopilot{
		inner:     inner,
		game:      g,
		agent:     agent,
		log:       logger.With().Str("component", "autopilot").Logger(),
		lastScore: g.Score(),
	}
}

func (a *Autopilot) HandleInput(snake *entity.Snake) bool {
	if !a.inner.HandleInput(snake) {
		return false
	}

	if !snake.Alive {
		a.finish(snake)
		return true
	}

	cell := snake.HeadCell()
	if a.pending && cell == a.lastCell && a.game.Score() == a.lastScore {
		return true
	}

	state := Observe(a.game.Grid, snake, a.game.Food())
	if a.pending {
		state.Ate = a.game.Score() > a.lastScore
		a.agent.Update(a.lastState, a.lastAction, state)
	}

	action := a.agent.GetAction(state)
	snake.SetDirection(action.Direction())

	a.lastCell = cell
	a.lastState = state
	a.lastAction = action
	a.lastScore = a.game.Score()
	a.pending = true
	return true
}

// finish feeds the fatal transition to the learner once.
func (a *Autopilot) finish(snake *entity.Snake) {
	if a.finished {
		return
	}
	a.finished = true
	if !a.pending {
		return
	}

	state := Observe(a.game.Grid, snake, a.game.Food())
	a.agent.Update(a.lastState, a.lastAction, state)
	a.pending = false

	a.log.Info().
		Int("score", a.game.Score()).
		Float64("total_reward", a.agent.TotalReward).
		Int("states", len(a.agent.QTable)).
		Msg("Autopilot crashed")
}

func (a *Autopilot) Agent() *QLearning {
	return a.agent
}
