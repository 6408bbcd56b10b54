package game

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"spinach-snake/game/entity"
	"spinach-snake/game/manager"
	"spinach-snake/game/types"
)

const (
	SpinachScoreStep = 10   // spinach shows up on every positive multiple of this score
	SpinachLifetime  = 5000 // ms a spinach stays visible when not eaten
)

type Game struct {
	ID    string
	Grid  types.Grid
	Snake *entity.Snake

	food         types.Point
	spinach      types.Point
	drawSpinach  bool
	spinachStart uint64
	score        int

	placement    *manager.PlacementService
	collisionMgr *manager.CollisionManager
	clock        Clock
	log          zerolog.Logger
}

func NewGame(grid types.Grid, placement *manager.PlacementService, clock Clock, logger zerolog.Logger) *Game {
	id := uuid.New().String()

	g := &Game{
		ID:           id,
		Grid:         grid,
		Snake:        entity.NewSnake(grid),
		placement:    placement,
		collisionMgr: manager.NewCollisionManager(grid),
		clock:        clock,
		spinachStart: clock.Ticks(),
		log:          logger.With().Str("game", id).Logger(),
	}
	g.PlaceFood()

	g.log.Info().
		Int("width", grid.Width).
		Int("height", grid.Height).
		Msg("Game created")

	return g
}

// PlaceFood moves the food to a random free cell that is not a visible spinach.
func (g *Game) PlaceFood() {
	g.food = g.placement.Place(func(p types.Point) bool {
		return g.collisionMgr.ValidateSpawnPosition(p, g.Snake) && !g.SpinachCell(p.X, p.Y)
	})
}

// PlaceSpinach moves the spinach to a random free cell other than the food.
func (g *Game) PlaceSpinach() {
	g.spinach = g.placement.Place(func(p types.Point) bool {
		return g.collisionMgr.ValidateSpawnPosition(p, g.Snake) && !g.FoodCell(p.X, p.Y)
	})
}

func (g *Game) FoodCell(x, y int) bool {
	return x == g.food.X && y == g.food.Y
}

// SpinachCell only matches while the spinach is visible.
func (g *Game) SpinachCell(x, y int) bool {
	return g.drawSpinach && x == g.spinach.X && y == g.spinach.Y
}

// Update advances the snake one tick and resolves what its head landed on.
func (g *Game) Update() {
	if !g.Snake.Alive {
		return
	}

	g.Snake.Update()
	if !g.Snake.Alive {
		g.log.Info().
			Int("score", g.score).
			Int("size", g.Snake.Size).
			Msg("Snake bit itself")
		return
	}

	head := g.Snake.HeadCell()

	switch {
	case g.FoodCell(head.X, head.Y):
		g.score++
		g.PlaceFood()
		if g.score%SpinachScoreStep == 0 && g.score > 0 && !g.drawSpinach {
			g.PlaceSpinach()
			g.drawSpinach = true
			g.spinachStart = g.clock.Ticks()
			g.log.Info().
				Int("x", g.spinach.X).
				Int("y", g.spinach.Y).
				Int("score", g.score).
				Msg("Spinach spawned")
		}
		g.Snake.Grow()
		g.Snake.SpeedUp()
		g.log.Debug().
			Int("score", g.score).
			Int("size", g.Snake.Size).
			Float64("speed", g.Snake.Speed).
			Int("free_cells", g.collisionMgr.FreeCells(g.Snake)).
			Msg("Food eaten")

	case g.SpinachCell(head.X, head.Y):
		g.score++
		g.drawSpinach = false
		g.Snake.Shrink()
		g.Snake.SlowDown()
		g.log.Debug().
			Int("score", g.score).
			Int("size", g.Snake.Size).
			Float64("speed", g.Snake.Speed).
			Msg("Spinach eaten")
	}
}

// ExpireSpinach hides the spinach once SpinachLifetime ms have passed since it
// was last stamped. The loop calls it once per frame.
func (g *Game) ExpireSpinach(now uint64) {
	if now < g.spinachStart || now-g.spinachStart < SpinachLifetime {
		return
	}
	if g.drawSpinach {
		g.log.Info().Msg("Spinach wilted")
	}
	g.drawSpinach = false
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Size() int {
	return g.Snake.Size
}

func (g *Game) Food() types.Point {
	return g.food
}

// Spinach returns the spinach cell and whether it is visible.
func (g *Game) Spinach() (types.Point, bool) {
	return g.spinach, g.drawSpinach
}
