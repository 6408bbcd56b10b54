package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/exp/rand"

	"spinach-snake/game/types"
)

const (
	rewardCloser  = 0.5
	rewardFarther = -0.3
	rewardFood    = 1.0
	rewardDanger  = -1.0
)

// State is what the learner sees of the board around the head.
type State struct {
	RelativeFoodDir [2]int  // sign of the shortest wrapped offset to the food (x, y)
	FoodDistance    int     // wrapped Manhattan distance to the food
	DangerDirs      [4]bool // body in the next cell, indexed by Action

	// Transition outcome, not part of the table key.
	Ate  bool
	Dead bool
}

// Action is an absolute heading.
type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

var actionDirections = [...]types.Direction{
	Up:    types.Up,
	Right: types.Right,
	Down:  types.Down,
	Left:  types.Left,
}

func (a Action) Direction() types.Direction {
	return actionDirections[a]
}

type QTable map[string]map[Action]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64

	rng *rand.Rand
}

// NewQLearning returns an empty learner. Seed 0 picks a seed from the clock.
func NewQLearning(seed uint64) *QLearning {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func (q *QLearning) stateKey(s State) string {
	return fmt.Sprintf("%d,%d|%d%d%d%d",
		s.RelativeFoodDir[0], s.RelativeFoodDir[1],
		boolToInt(s.DangerDirs[Up]),
		boolToInt(s.DangerDirs[Right]),
		boolToInt(s.DangerDirs[Down]),
		boolToInt(s.DangerDirs[Left]))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// row returns the action values for key, creating a zeroed row on first use.
func (q *QLearning) row(key string) map[Action]float64 {
	r, ok := q.QTable[key]
	if !ok {
		r = make(map[Action]float64, len(actionDirections))
		for a := Up; a <= Left; a++ {
			r[a] = 0
		}
		q.QTable[key] = r
	}
	return r
}

// GetAction picks an action epsilon-greedily.
func (q *QLearning) GetAction(state State) Action {
	if q.rng.Float64() < q.Epsilon {
		return Action(q.rng.Intn(len(actionDirections)))
	}
	return q.BestAction(state)
}

// BestAction returns the highest valued action. Ties go to the lowest action
// so the choice does not depend on map order.
func (q *QLearning) BestAction(state State) Action {
	r := q.row(q.stateKey(state))

	best := Up
	bestValue := math.Inf(-1)
	for a := Up; a <= Left; a++ {
		if r[a] > bestValue {
			best, bestValue = a, r[a]
		}
	}
	return best
}

// Reward scores the transition from state to next after taking action.
func Reward(state State, action Action, next State) float64 {
	switch {
	case next.Dead:
		return rewardDanger
	case next.Ate:
		return rewardFood
	case state.DangerDirs[action]:
		return rewardDanger
	case next.FoodDistance < state.FoodDistance:
		return rewardCloser
	case next.FoodDistance > state.FoodDistance:
		return rewardFarther
	}
	return 0
}

// Update applies one Q-learning step and returns the reward it used.
func (q *QLearning) Update(state State, action Action, next State) float64 {
	reward := Reward(state, action, next)

	r := q.row(q.stateKey(state))
	maxNextQ := 0.0
	if !next.Dead {
		maxNextQ = math.Inf(-1)
		for _, v := range q.row(q.stateKey(next)) {
			maxNextQ = math.Max(maxNextQ, v)
		}
	}

	current := r[action]
	r[action] = current + q.LearningRate*(reward+q.Discount*maxNextQ-current)
	q.TotalReward += reward

	return reward
}

// SaveQTable writes the table as indented JSON, creating the directory if
// needed.
func (q *QLearning) SaveQTable(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("create q-table dir: %w", err)
	}

	data, err := json.MarshalIndent(q.QTable, "", "  ")
	if err != nil {
		return fmt.Errorf("encode q-table: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write q-table: %w", err)
	}
	return nil
}

// LoadQTable replaces the table with the contents of filename. A missing file
// leaves the table untouched and is not an error.
func (q *QLearning) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read q-table: %w", err)
	}

	table := make(QTable)
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("decode q-table %s: %w", filename, err)
	}
	q.QTable = table
	return nil
}
