package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"spinach-snake/game/types"
)

// PlacementService samples candidate cells for food and spinach. The sampled
// range is inclusive of Width and Height, one column and one row past the
// occupiable grid; callers retry until ValidateSpawnPosition accepts a sample.
type PlacementService struct {
	grid types.Grid
	rng  *rand.Rand
}

// NewPlacementService seeds its own stream. A zero seed picks one from the
// wall clock.
func NewPlacementService(grid types.Grid, seed uint64) *PlacementService {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PlacementService{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Sample returns x in [0, Width] and y in [0, Height].
func (ps *PlacementService) Sample() types.Point {
	return types.Point{
		X: ps.rng.Intn(ps.grid.Width + 1),
		Y: ps.rng.Intn(ps.grid.Height + 1),
	}
}

// Place samples until accept returns true. It does not return on a grid with
// no acceptable cell.
func (ps *PlacementService) Place(accept func(types.Point) bool) types.Point {
	for {
		p := ps.Sample()
		if accept(p) {
			return p
		}
	}
}
